package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/Anthya1104/coercion-quiz/internal/quiz"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxCount bounds the number of questions in one quiz set.
const MaxCount = 50

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the quiz options supplied by the user.
type Config struct {
	Count      int    `yaml:"count"`
	Difficulty string `yaml:"difficulty"`
}

// Default returns five medium questions.
func Default() Config {
	return Config{
		Count:      quiz.DefaultCount,
		Difficulty: string(quiz.DefaultDifficulty),
	}
}

// Load reads, parses, normalizes, and validates a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML strictly; unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode yaml")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize fills unset fields with defaults and canonicalizes the tier name.
func (c *Config) Normalize() {
	def := Default()
	if c.Count == 0 {
		c.Count = def.Count
	}
	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	if c.Difficulty == "" {
		c.Difficulty = def.Difficulty
	}
}

// Validate rejects non-positive or oversized counts and unknown tiers.
func (c Config) Validate() error {
	if c.Count <= 0 || c.Count > MaxCount {
		return errors.Wrapf(ErrInvalidConfig, "count must be between 1 and %d, got %d", MaxCount, c.Count)
	}
	if _, err := quiz.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	return nil
}

// Tier returns the parsed difficulty.
func (c Config) Tier() (quiz.Difficulty, error) {
	return quiz.ParseDifficulty(c.Difficulty)
}
