package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

const defaultMaxAttempts = 3

// Session walks a user through the signup form in the terminal. Every answer
// is fed to the controller as an input event, so feedback is the same live
// validation a browser form would show; the session then submits and
// re-prompts only the fields that failed.
type Session struct {
	controller  *form.Controller
	driver      PromptDriver
	out         io.Writer
	maxAttempts int
	strict      bool
	reveal      bool
	theme       Theme
	logger      *slog.Logger
}

// NewSession binds a session to controller. The survey driver is used unless
// WithPromptDriver is supplied.
func NewSession(controller *form.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, errors.New("tui: controller is required")
	}
	s := &Session{
		controller:  controller,
		maxAttempts: defaultMaxAttempts,
		theme:       DefaultTheme,
		logger:      slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver(s.out)
	}
	if s.reveal == s.controller.View().Masked {
		s.controller.ToggleMask()
	}
	return s, nil
}

// Run prompts, submits and retries until the form is accepted, the attempts
// run out (ErrAttemptsExhausted) or the user aborts (ErrAborted). The last
// outcome is always returned.
func (s *Session) Run(ctx context.Context) (form.Outcome, error) {
	if ctx == nil {
		return form.Outcome{}, errors.New("tui: context is required")
	}

	pending := validation.Fields()
	var outcome form.Outcome
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		for _, field := range pending {
			if err := s.promptField(ctx, field); err != nil {
				return outcome, err
			}
		}

		var err error
		outcome, err = s.controller.Submit(ctx)
		view := s.controller.View()
		if err != nil {
			return outcome, err
		}
		if outcome.Valid {
			s.info(ctx, s.theme.SuccessPrefix+view.Message.Text)
			return outcome, nil
		}

		s.info(ctx, s.theme.InfoPrefix+view.Message.Text)
		for _, fm := range render.FieldMessages(view) {
			s.info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, fm.Field.Label(), fm.Message))
		}
		pending = retryFields(outcome)
		s.logger.Debug("signup attempt rejected",
			slog.Int("attempt", attempt),
			slog.Int("invalid_fields", len(pending)),
		)
	}
	return outcome, ErrAttemptsExhausted
}

// retryFields lists the failed fields in form order. A failed password also
// re-asks the confirmation, which has to be typed against the new value.
func retryFields(outcome form.Outcome) []validation.Field {
	failed := make(map[validation.Field]bool)
	for _, res := range outcome.Failed() {
		failed[res.Field] = true
	}
	if failed[validation.FieldPassword] {
		failed[validation.FieldConfirm] = true
	}
	var out []validation.Field
	for _, f := range validation.Fields() {
		if failed[f] {
			out = append(out, f)
		}
	}
	return out
}

func (s *Session) promptField(ctx context.Context, field validation.Field) error {
	state := s.controller.State()
	switch field {
	case validation.FieldName:
		answer, err := s.ask(ctx, field, state.Name, validation.Func(validation.Name))
		if err != nil {
			return err
		}
		s.report(ctx, s.controller.SetName(answer))
	case validation.FieldEmail:
		answer, err := s.ask(ctx, field, state.Email, validation.Func(validation.Email))
		if err != nil {
			return err
		}
		s.report(ctx, s.controller.SetEmail(answer))
	case validation.FieldPassword:
		answer, err := s.askSecret(ctx, field, validation.PasswordFunc())
		if err != nil {
			return err
		}
		pw, confirm := s.controller.SetPassword(answer)
		s.report(ctx, pw)
		s.info(ctx, s.theme.InfoPrefix+StrengthLine(s.controller.View().Strength))
		if s.controller.State().Confirm != "" {
			s.report(ctx, confirm)
		}
	case validation.FieldConfirm:
		current := func() string { return s.controller.State().Password }
		answer, err := s.askSecret(ctx, field, validation.ConfirmFunc(current))
		if err != nil {
			return err
		}
		s.report(ctx, s.controller.SetConfirm(answer))
	case validation.FieldPhone:
		answer, err := s.ask(ctx, field, state.Phone, validation.Func(validation.Phone))
		if err != nil {
			return err
		}
		s.report(ctx, s.controller.SetPhone(answer))
	case validation.FieldTerms:
		accepted, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: field.Label(),
			Default: state.Terms,
		})
		if err != nil {
			return err
		}
		s.report(ctx, s.controller.SetTerms(accepted))
	default:
		return fmt.Errorf("%w: %q", form.ErrUnknownField, field)
	}
	return nil
}

func (s *Session) ask(ctx context.Context, field validation.Field, current string, validate func(string) error) (string, error) {
	cfg := InputConfig{Message: field.Label(), Default: current}
	if s.strict {
		cfg.Validator = validate
	}
	return s.driver.Input(ctx, cfg)
}

// askSecret never offers the previous value as a default.
func (s *Session) askSecret(ctx context.Context, field validation.Field, validate func(string) error) (string, error) {
	cfg := InputConfig{Message: field.Label()}
	if s.strict {
		cfg.Validator = validate
	}
	if s.controller.View().Masked {
		return s.driver.Password(ctx, cfg)
	}
	return s.driver.Input(ctx, cfg)
}

func (s *Session) report(ctx context.Context, res validation.Result) {
	if res.Valid || res.Message == "" {
		return
	}
	s.info(ctx, s.theme.ErrorPrefix+res.Message)
}

func (s *Session) info(ctx context.Context, msg string) {
	if err := s.driver.Info(ctx, msg); err != nil {
		s.logger.Debug("tui: info message dropped", slog.String("error", err.Error()))
	}
}
