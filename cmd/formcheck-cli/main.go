package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	formcheck "github.com/goliatone/go-formcheck"
	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/renderers/tui"
	"github.com/goliatone/go-formcheck/pkg/submit"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("formcheck-cli", flag.ContinueOnError)
	var (
		configPath = flags.String("config", "", "YAML config file")
		envFile    = flags.String("env-file", config.DefaultEnvFile, "dotenv file read before FORMCHECK_* variables")
		renderer   = flags.String("renderer", "", "renderer to use (tui, html, text); overrides config")
		output     = flags.String("output", "", "output file for html/text snapshots (stdout if empty)")
		schema     = flags.Bool("schema", false, "print the submit payload schema and exit")

		name     = flags.String("name", "", "full name (html/text)")
		email    = flags.String("email", "", "email address (html/text)")
		password = flags.String("password", "", "password (html/text)")
		confirm  = flags.String("confirm", "", "password confirmation (html/text)")
		phone    = flags.String("phone", "", "phone number, optional (html/text)")
		terms    = flags.Bool("terms", false, "accept the terms (html/text)")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *schema {
		if err := printSchema(stdout); err != nil {
			log.Printf("Failed to encode schema: %v", err)
			return 1
		}
		return 0
	}

	cfg, err := config.NewLoader(nil, config.WithEnvFiles(*envFile)).Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *renderer != "" {
		cfg.Renderer = *renderer
	}
	if *output != "" {
		cfg.Output = *output
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid flags: %v", err)
		return 1
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	submitter, err := newSubmitter(cfg.Submit, logger, stdout)
	if err != nil {
		log.Printf("Failed to configure submitter: %v", err)
		return 1
	}

	if cfg.Renderer == "tui" {
		if err := runSession(ctx, cfg, logger, submitter); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return 130
			}
			log.Printf("Signup failed: %v", err)
			return 1
		}
		return 0
	}

	state := formcheck.State{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Confirm:  *confirm,
		Phone:    *phone,
		Terms:    *terms,
	}
	if err := runSnapshot(ctx, cfg, state, logger, submitter, stdout); err != nil {
		log.Printf("Failed to render form: %v", err)
		return 1
	}
	return 0
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newSubmitter(cfg config.SubmitConfig, logger *slog.Logger, stdout io.Writer) (form.Submitter, error) {
	if cfg.Sink == "stdout" {
		return submit.NewWriter(stdout, submit.WithIndent(cfg.Pretty))
	}
	return submit.NewLog(logger), nil
}

func runSession(ctx context.Context, cfg config.Config, logger *slog.Logger, submitter form.Submitter) error {
	controller := formcheck.NewController(
		form.WithLogger(logger),
		form.WithSubmitter(submitter),
	)
	session, err := tui.NewSession(controller,
		tui.WithMaxAttempts(cfg.Prompt.MaxAttempts),
		tui.WithStrictPrompts(cfg.Prompt.Strict),
		tui.WithRevealPasswords(cfg.Prompt.Reveal),
		tui.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	_, err = session.Run(ctx)
	return err
}

func runSnapshot(ctx context.Context, cfg config.Config, state formcheck.State, logger *slog.Logger, submitter form.Submitter, stdout io.Writer) error {
	registry, err := formcheck.NewRegistry()
	if err != nil {
		return err
	}

	outcome, controller, err := formcheck.Check(ctx, state,
		form.WithLogger(logger),
		form.WithSubmitter(submitter),
	)
	if err != nil {
		return err
	}
	logger.Debug("form checked", slog.Bool("valid", outcome.Valid), slog.Int("invalid_fields", len(outcome.Failed())))

	out, err := registry.Render(ctx, cfg.Renderer, controller.View(), render.RenderOptions{
		Title:      cfg.Title,
		ShowValues: true,
	})
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(cfg.Output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stdout, "Form written to %s\n", cfg.Output)
	return nil
}

func printSchema(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(form.PayloadSchema())
}
