package cobra

import (
	"io"
	"os"

	"github.com/Anthya1104/coercion-quiz/internal/config"
	"github.com/Anthya1104/coercion-quiz/internal/lineui"
	"github.com/Anthya1104/coercion-quiz/internal/logger"
	"github.com/Anthya1104/coercion-quiz/internal/quiz"
	"github.com/Anthya1104/coercion-quiz/internal/session"
	"github.com/Anthya1104/coercion-quiz/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// flags shared by every command
type options struct {
	configPath string
	count      int
	difficulty string
	seed       uint64
	logLevel   string
	noColor    bool
	plain      bool
}

// isTerminal reports whether w is attached to a TTY.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func InitCLI() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "quiz",
		Short: "A type coercion quiz CLI application",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.InitLogger(opts.logLevel)
		},
		Run: func(cmd *cobra.Command, args []string) {
			logrus.Debugf("No subcommand given, showing help")
			_ = cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("Version: %s\n", config.Version)
		},
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a generated quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	playCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colors in the interactive UI")
	playCmd.Flags().BoolVar(&opts.plain, "plain", false, "Use line input even on a terminal")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated quiz set, answers included, as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.IntVarP(&opts.count, "count", "n", quiz.DefaultCount, "Number of questions")
	flags.StringVarP(&opts.difficulty, "difficulty", "d", string(quiz.DefaultDifficulty), "Difficulty tier (easy, medium, hard)")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one from the clock")
	flags.StringVar(&opts.logLevel, "log-level", config.LogLevelInfo, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd, playCmd, generateCmd)
	return rootCmd
}

func ExecuteCmd() error {

	return InitCLI().Execute()

}

// resolveConfig layers explicit flags over the config file over defaults.
// An unknown difficulty given on the command line falls back to the default.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, quiz.Difficulty, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, "", err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("count") {
		cfg.Count = opts.count
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = opts.difficulty
		cfg.Normalize()
		if _, err := cfg.Tier(); err != nil {
			logrus.Warnf("%v. Defaulting to %s.", err, quiz.DefaultDifficulty)
			cfg.Difficulty = string(quiz.DefaultDifficulty)
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	tier, err := cfg.Tier()
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, tier, nil
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, tier, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	ctrl := session.New(quiz.NewGenerator(quiz.NewRand(opts.seed)))
	if err := ctrl.Start(cfg.Count, tier); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.plain || !isTerminal(out) {
		return lineui.Play(ctrl, cmd.InOrStdin(), out)
	}

	// keep log lines off the full screen UI
	sink, err := logger.RedirectToFile(config.LogFilePath)
	if err != nil {
		logrus.Warnf("Cannot open log file %s: %v", config.LogFilePath, err)
	} else {
		defer sink.Close()
	}
	return tui.Run(ctrl, tui.Options{NoColor: opts.noColor}, cmd.InOrStdin(), out)
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	cfg, tier, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	set, err := quiz.GenerateQuizSet(quiz.NewRand(opts.seed), cfg.Count, tier)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(set); err != nil {
		return err
	}
	return enc.Close()
}
