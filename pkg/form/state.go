package form

import (
	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// State holds the raw field values as typed by the user.
type State struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Confirm  string `json:"-"`
	Phone    string `json:"phone"`
	Terms    bool   `json:"terms"`
}

// Public returns the value of a non-secret text field; password, confirm and
// terms yield "".
func (s State) Public(f validation.Field) string {
	switch f {
	case validation.FieldName:
		return s.Name
	case validation.FieldEmail:
		return s.Email
	case validation.FieldPhone:
		return s.Phone
	default:
		return ""
	}
}

// Status is the controller's position in the submit state machine.
type Status int

const (
	StatusEditing Status = iota
	StatusSubmitFailed
	StatusSubmitSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusSubmitFailed:
		return "submit_failed"
	case StatusSubmitSucceeded:
		return "submit_succeeded"
	default:
		return "editing"
	}
}

// SubmitAttempted reports whether the last action was a submit.
func (s Status) SubmitAttempted() bool {
	return s != StatusEditing
}

// Tone colours the aggregate form message.
type Tone int

const (
	ToneNone Tone = iota
	ToneWarning
	ToneSuccess
)

func (t Tone) String() string {
	switch t {
	case ToneWarning:
		return "warning"
	case ToneSuccess:
		return "success"
	default:
		return "none"
	}
}

// Color returns the display color for the tone, empty for ToneNone.
func (t Tone) Color() string {
	switch t {
	case ToneWarning:
		return "#f59e0b"
	case ToneSuccess:
		return "#10b981"
	default:
		return ""
	}
}

// Aggregate form messages.
const (
	MsgFixErrors = "Please fix the errors above before submitting."
	MsgSuccess   = "Success! Form validated, ready to submit to the server."
)

// FormMessage is the single message shown above the submit control.
type FormMessage struct {
	Text string
	Tone Tone
}

// FieldView is what a presenter needs to draw one field.
type FieldView struct {
	Field   validation.Field
	Message string
	Visual  validation.Visual
}

// View is an immutable snapshot of the controller state.
type View struct {
	Values   State
	Fields   map[validation.Field]FieldView
	Strength rules.Strength
	Message  FormMessage
	Masked   bool
	Status   Status
}

// Field returns the view for f, falling back to a neutral entry.
func (v View) Field(f validation.Field) FieldView {
	if fv, ok := v.Fields[f]; ok {
		return fv
	}
	return FieldView{Field: f}
}

// Invalid lists the fields currently showing an invalid indicator, in form
// order.
func (v View) Invalid() []validation.Field {
	var out []validation.Field
	for _, f := range validation.Fields() {
		if v.Field(f).Visual == validation.VisualInvalid {
			out = append(out, f)
		}
	}
	return out
}
