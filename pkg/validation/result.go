package validation

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Field names the six inputs of the signup form.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldConfirm  Field = "confirm"
	FieldPhone    Field = "phone"
	FieldTerms    Field = "terms"
)

var fields = []Field{FieldName, FieldEmail, FieldPassword, FieldConfirm, FieldPhone, FieldTerms}

// Fields lists every form field in submit order. The returned slice is a
// copy.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

var fieldLabels = map[Field]string{
	FieldName:     "Full name",
	FieldEmail:    "Email",
	FieldPassword: "Password",
	FieldConfirm:  "Confirm password",
	FieldPhone:    "Phone (optional)",
	FieldTerms:    "I accept the terms and conditions",
}

// Label returns the display label of the field.
func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// Kind classifies a validation failure.
type Kind int

const (
	KindNone Kind = iota
	KindEmptyField
	KindInvalidFormat
	KindMissingRules
	KindMismatch
	KindNotAccepted
)

func (k Kind) String() string {
	switch k {
	case KindEmptyField:
		return "empty_field"
	case KindInvalidFormat:
		return "invalid_format"
	case KindMissingRules:
		return "missing_rules"
	case KindMismatch:
		return "mismatch"
	case KindNotAccepted:
		return "not_accepted"
	default:
		return "none"
	}
}

var (
	// ErrEmptyField signals a required value was left blank.
	ErrEmptyField = errors.New("validation: empty field")
	// ErrInvalidFormat signals a value that does not match its pattern.
	ErrInvalidFormat = errors.New("validation: invalid format")
	// ErrMissingRules signals a password missing one or more composition rules.
	ErrMissingRules = errors.New("validation: missing password rules")
	// ErrMismatch signals a confirmation that differs from the password.
	ErrMismatch = errors.New("validation: mismatch")
	// ErrNotAccepted signals the terms were not accepted.
	ErrNotAccepted = errors.New("validation: not accepted")
)

func (k Kind) sentinel() error {
	switch k {
	case KindEmptyField:
		return ErrEmptyField
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindMissingRules:
		return ErrMissingRules
	case KindMismatch:
		return ErrMismatch
	case KindNotAccepted:
		return ErrNotAccepted
	default:
		return nil
	}
}

// Visual is the three-state indicator a field should display.
type Visual int

const (
	VisualNeutral Visual = iota
	VisualValid
	VisualInvalid
)

func (v Visual) String() string {
	switch v {
	case VisualValid:
		return "valid"
	case VisualInvalid:
		return "invalid"
	default:
		return "neutral"
	}
}

// MarshalText encodes the visual state by name.
func (v Visual) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Result is the outcome of validating one field.
type Result struct {
	Field   Field
	Valid   bool
	Kind    Kind
	Message string
	// Missing lists the failed password rules in evaluation order.
	Missing []rules.RuleID
	Visual  Visual
}

// Err returns a *FieldError describing the failure, or nil when the result is
// valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &FieldError{
		Field:   r.Field,
		Kind:    r.Kind,
		Message: r.Message,
		Missing: append([]rules.RuleID(nil), r.Missing...),
	}
}

// FieldError is the error form of a failed Result. It unwraps to the sentinel
// matching its Kind.
type FieldError struct {
	Field   Field
	Kind    Kind
	Message string
	Missing []rules.RuleID
}

func (e *FieldError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Kind.sentinel()
}

func pass(field Field) Result {
	return Result{Field: field, Valid: true, Visual: VisualValid}
}

func fail(field Field, kind Kind, message string) Result {
	return Result{
		Field:   field,
		Kind:    kind,
		Message: message,
		Visual:  VisualInvalid,
	}
}
