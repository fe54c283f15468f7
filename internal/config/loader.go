package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEnvFile is the dotenv file consulted when none is configured.
const DefaultEnvFile = ".env"

// Loader merges configuration sources.
type Loader struct {
	logger   *slog.Logger
	envFiles []string
	lookup   func() map[string]string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvFiles overrides the dotenv files read before environment parsing.
// Missing files are skipped.
func WithEnvFiles(files ...string) LoaderOption {
	return func(l *Loader) {
		l.envFiles = files
	}
}

// WithEnvironment replaces the process environment as the source of
// FORMCHECK_* overrides.
func WithEnvironment(vars map[string]string) LoaderOption {
	return func(l *Loader) {
		l.lookup = func() map[string]string { return vars }
	}
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger, options ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{
		logger:   logger,
		envFiles: []string{DefaultEnvFile},
	}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load builds the configuration. An empty path skips the YAML layer; a
// missing file at an explicit path is an error.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := LoadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
		l.logger.Debug("Loaded config file", slog.String("path", path))
	}

	for _, file := range l.envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			l.logger.Warn("Failed to load env file", slog.String("path", file), slog.String("error", err.Error()))
			continue
		}
		l.logger.Debug("Loaded env file", slog.String("path", file))
	}

	opts := env.Options{}
	if l.lookup != nil {
		opts.Environment = l.lookup()
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML file over base. Keys absent from the file keep the
// base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
