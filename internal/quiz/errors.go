package quiz

import (
	"errors"
	"fmt"
)

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// ConfigError reports an unrecognized configuration value.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected one of %v", e.Field, e.Value, Difficulties)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidDifficulty }
