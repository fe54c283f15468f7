package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// ErrUnknownField is returned by Input for names outside the form.
var ErrUnknownField = errors.New("form: unknown field")

type fieldDisplay struct {
	message string
	visual  validation.Visual
}

// Controller orchestrates the field validators for one signup form.
type Controller struct {
	state    State
	display  map[validation.Field]fieldDisplay
	strength rules.Strength
	message  FormMessage
	status   Status
	masked   bool

	logger    *slog.Logger
	submitter Submitter
	observers []Observer
}

// Outcome reports the result of a submit.
type Outcome struct {
	Valid   bool
	Results []validation.Result
	// Payload is set only when Valid is true.
	Payload *Payload
}

// Failed returns the results that did not pass, in form order.
func (o Outcome) Failed() []validation.Result {
	var out []validation.Result
	for _, res := range o.Results {
		if !res.Valid {
			out = append(out, res)
		}
	}
	return out
}

// New constructs a Controller in the editing state with masked passwords.
func New(options ...Option) *Controller {
	c := &Controller{
		display: make(map[validation.Field]fieldDisplay, len(validation.Fields())),
		masked:  true,
		logger:  slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// SetName updates the name value and re-validates it.
func (c *Controller) SetName(v string) validation.Result {
	c.state.Name = v
	res := c.apply(validation.Name(v))
	c.notify()
	return res
}

// SetEmail updates the email value and re-validates it.
func (c *Controller) SetEmail(v string) validation.Result {
	c.state.Email = v
	res := c.apply(validation.Email(v))
	c.notify()
	return res
}

// SetPassword updates the password, re-validates it and then re-validates the
// confirmation against the new value. Both results are returned in that
// order.
func (c *Controller) SetPassword(v string) (validation.Result, validation.Result) {
	c.state.Password = v
	pw := c.validatePassword()
	confirm := c.apply(validation.Confirm(c.state.Confirm, c.state.Password))
	c.notify()
	return pw, confirm
}

// SetConfirm updates the confirmation value and re-validates it.
func (c *Controller) SetConfirm(v string) validation.Result {
	c.state.Confirm = v
	res := c.apply(validation.Confirm(v, c.state.Password))
	c.notify()
	return res
}

// SetPhone updates the optional phone value and re-validates it.
func (c *Controller) SetPhone(v string) validation.Result {
	c.state.Phone = v
	res := c.apply(validation.Phone(v))
	c.notify()
	return res
}

// SetTerms updates the terms flag and re-validates it.
func (c *Controller) SetTerms(accepted bool) validation.Result {
	c.state.Terms = accepted
	res := c.apply(validation.Terms(accepted))
	c.notify()
	return res
}

// Input dispatches a raw input event by field name. Terms values are parsed
// with strconv.ParseBool. A password event returns the confirm result as
// well.
func (c *Controller) Input(field validation.Field, value string) ([]validation.Result, error) {
	switch field {
	case validation.FieldName:
		return []validation.Result{c.SetName(value)}, nil
	case validation.FieldEmail:
		return []validation.Result{c.SetEmail(value)}, nil
	case validation.FieldPassword:
		pw, confirm := c.SetPassword(value)
		return []validation.Result{pw, confirm}, nil
	case validation.FieldConfirm:
		return []validation.Result{c.SetConfirm(value)}, nil
	case validation.FieldPhone:
		return []validation.Result{c.SetPhone(value)}, nil
	case validation.FieldTerms:
		accepted, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("form: terms value %q: %w", value, err)
		}
		return []validation.Result{c.SetTerms(accepted)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// Submit validates every field, without stopping at the first failure, and
// either surfaces the aggregate warning or assembles the payload, hands it to
// the submitter and clears the password fields. A submitter error is
// returned wrapped; the form is still considered submitted.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	if ctx == nil {
		return Outcome{}, errors.New("form: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	c.message = FormMessage{}
	results := c.validateAll()

	valid := true
	for _, res := range results {
		valid = valid && res.Valid
	}
	outcome := Outcome{Valid: valid, Results: results}

	if !valid {
		c.fail()
		c.logger.Debug("form submit rejected", slog.Int("invalid_fields", len(outcome.Failed())))
		c.notify()
		return outcome, nil
	}

	payload := PayloadFromState(c.state)
	if err := ValidatePayload(payload); err != nil {
		outcome.Valid = false
		c.fail()
		c.notify()
		return outcome, err
	}

	c.status = StatusSubmitSucceeded
	c.message = FormMessage{Text: MsgSuccess, Tone: ToneSuccess}
	outcome.Payload = &payload

	var submitErr error
	if c.submitter != nil {
		if err := c.submitter.Submit(ctx, payload); err != nil {
			submitErr = fmt.Errorf("form: submit payload: %w", err)
			c.logger.Warn("form submitter failed", slog.String("error", err.Error()))
		}
	}

	c.clearSecrets()
	c.notify()
	return outcome, submitErr
}

// Reset clears every value, message and indicator and returns to editing.
func (c *Controller) Reset() {
	c.state = State{}
	c.display = make(map[validation.Field]fieldDisplay, len(validation.Fields()))
	c.strength = rules.Strength{}
	c.message = FormMessage{}
	c.status = StatusEditing
	c.masked = true
	c.notify()
}

// ToggleMask flips password visibility for both password inputs and reports
// whether they are masked afterwards.
func (c *Controller) ToggleMask() bool {
	c.masked = !c.masked
	c.notify()
	return c.masked
}

// State returns a copy of the current values.
func (c *Controller) State() State {
	return c.state
}

// Status reports the current state machine position.
func (c *Controller) Status() Status {
	return c.status
}

// View returns a snapshot of everything a presenter draws.
func (c *Controller) View() View {
	fields := make(map[validation.Field]FieldView, len(validation.Fields()))
	for _, f := range validation.Fields() {
		d := c.display[f]
		fields[f] = FieldView{Field: f, Message: d.message, Visual: d.visual}
	}
	return View{
		Values:   c.state,
		Fields:   fields,
		Strength: c.strength,
		Message:  c.message,
		Masked:   c.masked,
		Status:   c.status,
	}
}

func (c *Controller) validateAll() []validation.Result {
	return []validation.Result{
		c.apply(validation.Name(c.state.Name)),
		c.apply(validation.Email(c.state.Email)),
		c.validatePassword(),
		c.apply(validation.Confirm(c.state.Confirm, c.state.Password)),
		c.apply(validation.Phone(c.state.Phone)),
		c.apply(validation.Terms(c.state.Terms)),
	}
}

func (c *Controller) validatePassword() validation.Result {
	res, strength := validation.Password(c.state.Password)
	c.strength = strength
	return c.apply(res)
}

func (c *Controller) apply(res validation.Result) validation.Result {
	c.display[res.Field] = fieldDisplay{message: res.Message, visual: res.Visual}
	return res
}

func (c *Controller) fail() {
	c.status = StatusSubmitFailed
	c.message = FormMessage{Text: MsgFixErrors, Tone: ToneWarning}
}

func (c *Controller) clearSecrets() {
	c.state.Password = ""
	c.state.Confirm = ""
	c.strength = rules.Strength{}
	delete(c.display, validation.FieldPassword)
	delete(c.display, validation.FieldConfirm)
}

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	view := c.View()
	for _, observer := range c.observers {
		observer.Notify(view)
	}
}
