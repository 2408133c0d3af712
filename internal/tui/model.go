package tui

import (
	"io"

	"github.com/Anthya1104/coercion-quiz/internal/quiz"
	"github.com/Anthya1104/coercion-quiz/internal/session"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Model renders a quiz session using Bubble Tea.
type Model struct {
	ctrl     *session.Controller
	progress progress.Model
	styles   styles
	lastErr  string
}

// Options configures the quiz UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a UI model over a started controller.
func NewModel(ctrl *session.Controller, opts Options) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	if opts.NoColor {
		bar = progress.New(progress.WithFillCharacters('#', '-'), progress.WithWidth(40))
	}
	return Model{
		ctrl:     ctrl,
		progress: bar,
		styles:   newStyles(opts.NoColor),
	}
}

// Init has nothing to schedule; the session is already generated.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update maps key presses onto session transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(typed.Width-10, 10), 60)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastErr = ""
	view := m.ctrl.View()

	switch key := msg.String(); key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "1", "2", "3", "4":
		if err := m.ctrl.Select(int(key[0] - '1')); err != nil {
			m.lastErr = err.Error()
		}
	case "left", "h", "p":
		if view.PrevEnabled {
			m.ctrl.Previous()
		}
	case "right", "l", "n":
		if view.NextEnabled {
			m.ctrl.Next()
		}
	case "enter", "s":
		if view.SubmitEnabled {
			if _, err := m.ctrl.Submit(); err != nil {
				m.lastErr = err.Error()
			}
		}
	case "r":
		m.restart(view.Difficulty)
	case "tab":
		m.restart(nextDifficulty(view.Difficulty))
	}
	return m, nil
}

func (m *Model) restart(d quiz.Difficulty) {
	if err := m.ctrl.ChangeDifficulty(d); err != nil {
		logrus.Errorf("Restart failed: %v", err)
		m.lastErr = err.Error()
	}
}

// nextDifficulty cycles easy -> medium -> hard -> easy.
func nextDifficulty(d quiz.Difficulty) quiz.Difficulty {
	for i, tier := range quiz.Difficulties {
		if tier == d {
			return quiz.Difficulties[(i+1)%len(quiz.Difficulties)]
		}
	}
	return quiz.DefaultDifficulty
}

// Run blocks until the user quits the program.
func Run(ctrl *session.Controller, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(ctrl, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
