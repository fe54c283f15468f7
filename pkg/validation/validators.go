package validation

import (
	"strings"

	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Messages shown next to each field.
const (
	MsgNameRequired     = "Please enter your full name."
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Enter a valid email address."
	MsgPasswordRequired = "Password is required."
	MsgConfirmRequired  = "Please confirm your password."
	MsgConfirmMismatch  = "Passwords do not match."
	MsgPhoneInvalid     = "Enter a valid phone number."
	MsgTermsRequired    = "You must accept the terms."

	missingPrefix = "Missing: "
)

// Name requires a non-blank full name.
func Name(v string) Result {
	if !rules.NonEmpty(v) {
		return fail(FieldName, KindEmptyField, MsgNameRequired)
	}
	return pass(FieldName)
}

// Email requires a value and checks the trimmed value against the email
// pattern.
func Email(v string) Result {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return fail(FieldEmail, KindEmptyField, MsgEmailRequired)
	}
	if !rules.Email(trimmed) {
		return fail(FieldEmail, KindInvalidFormat, MsgEmailInvalid)
	}
	return pass(FieldEmail)
}

// Password checks every composition rule and always reports the strength of
// pw, whether or not it passes.
func Password(pw string) (Result, rules.Strength) {
	strength := rules.Measure(pw)
	if pw == "" {
		return fail(FieldPassword, KindEmptyField, MsgPasswordRequired), strength
	}

	failed := rules.FailedRules(pw)
	if len(failed) == 0 {
		return pass(FieldPassword), strength
	}

	descriptions := make([]string, 0, len(failed))
	missing := make([]rules.RuleID, 0, len(failed))
	for _, rule := range failed {
		descriptions = append(descriptions, rule.Description)
		missing = append(missing, rule.ID)
	}
	res := fail(FieldPassword, KindMissingRules, missingPrefix+strings.Join(descriptions, ", "))
	res.Missing = missing
	return res, strength
}

// Confirm requires the confirmation to be present and equal to password.
func Confirm(confirm, password string) Result {
	if !rules.Present(confirm) {
		return fail(FieldConfirm, KindEmptyField, MsgConfirmRequired)
	}
	if !rules.Matches(confirm, password) {
		return fail(FieldConfirm, KindMismatch, MsgConfirmMismatch)
	}
	return pass(FieldConfirm)
}

// Phone accepts an empty value with a neutral indicator; anything else must
// match the phone pattern once trimmed.
func Phone(v string) Result {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return Result{Field: FieldPhone, Valid: true, Visual: VisualNeutral}
	}
	if !rules.Phone(trimmed) {
		return fail(FieldPhone, KindInvalidFormat, MsgPhoneInvalid)
	}
	return pass(FieldPhone)
}

// Terms requires the terms flag to be set.
func Terms(accepted bool) Result {
	if !rules.Accepted(accepted) {
		return fail(FieldTerms, KindNotAccepted, MsgTermsRequired)
	}
	return pass(FieldTerms)
}

// Func adapts a single-value validator into the func(string) error shape used
// by prompt libraries.
func Func(validate func(string) Result) func(string) error {
	return func(v string) error {
		if validate == nil {
			return nil
		}
		return validate(v).Err()
	}
}

// PasswordFunc adapts Password to func(string) error.
func PasswordFunc() func(string) error {
	return func(pw string) error {
		res, _ := Password(pw)
		return res.Err()
	}
}

// ConfirmFunc returns a confirm validator bound to the current password.
func ConfirmFunc(password func() string) func(string) error {
	return func(confirm string) error {
		current := ""
		if password != nil {
			current = password()
		}
		return Confirm(confirm, current).Err()
	}
}
