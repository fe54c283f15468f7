// Package config loads the formcheck CLI configuration. Sources are layered:
// built-in defaults, then an optional YAML file, then an optional .env file,
// then FORMCHECK_* environment variables. The merged result is validated
// before use.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure of a loaded configuration.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the CLI configuration.
type Config struct {
	// Renderer selects the front end: "tui" runs the interactive session,
	// "html" and "text" render a snapshot of a scripted form.
	Renderer string `yaml:"renderer" env:"FORMCHECK_RENDERER" validate:"required,oneof=tui html text"`
	// Output is the file snapshots are written to; empty means stdout.
	Output string `yaml:"output" env:"FORMCHECK_OUTPUT"`
	Title  string `yaml:"title" env:"FORMCHECK_TITLE"`

	Submit SubmitConfig  `yaml:"submit" envPrefix:"FORMCHECK_SUBMIT_"`
	Prompt PromptConfig  `yaml:"prompt" envPrefix:"FORMCHECK_PROMPT_"`
	Log    LoggingConfig `yaml:"log" envPrefix:"FORMCHECK_LOG_"`
}

// SubmitConfig selects where validated payloads go.
type SubmitConfig struct {
	// Sink is "log" (structured log line) or "stdout" (JSON document).
	Sink   string `yaml:"sink" env:"SINK" validate:"required,oneof=log stdout"`
	Pretty bool   `yaml:"pretty" env:"PRETTY"`
}

// PromptConfig tunes the interactive session.
type PromptConfig struct {
	MaxAttempts int  `yaml:"max_attempts" env:"MAX_ATTEMPTS" validate:"min=1,max=20"`
	Strict      bool `yaml:"strict" env:"STRICT"`
	Reveal      bool `yaml:"reveal" env:"REVEAL"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"required,oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Renderer: "tui",
		Submit:   SubmitConfig{Sink: "log"},
		Prompt:   PromptConfig{MaxAttempts: 3},
		Log:      LoggingConfig{Level: "info", Format: "text"},
	}
}

var validate = validator.New()

// Validate checks field constraints and reports every violation at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

// SlogLevel maps the configured level name onto slog.Level.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
