package tui

import (
	"io"
	"log/slog"
)

// Theme captures message prefixes the session applies when printing
// feedback. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	InfoPrefix    string
	ErrorPrefix   string
	SuccessPrefix string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{
	InfoPrefix:    "  ",
	ErrorPrefix:   "  ✗ ",
	SuccessPrefix: "✓ ",
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints feedback.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithMaxAttempts bounds how many times the session submits before giving
// up. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithStrictPrompts makes every prompt re-ask until the field validator
// passes, instead of accepting the answer and reporting the problem.
func WithStrictPrompts(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
	}
}

// WithRevealPasswords shows password input in clear text (both the password
// and its confirmation).
func WithRevealPasswords(reveal bool) Option {
	return func(s *Session) {
		s.reveal = reveal
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
