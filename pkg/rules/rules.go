package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the minimum number of characters (runes) a password
// needs to satisfy the length rule.
const MinPasswordLength = 8

// space lists the characters browsers treat as whitespace. RE2's \s is
// ASCII only, so vertical tab and the Unicode space separators are listed
// explicitly.
const space = `\s\v\p{Z}\x{85}\x{FEFF}`

var (
	emailPattern = regexp.MustCompile(`(?i)^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]{2,}$`)
	phonePattern = regexp.MustCompile(`^(?:\+91[` + space + `-]?|0)?[6-9]\d{9}$`)

	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	numberPattern  = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// RuleID identifies a password composition rule.
type RuleID string

const (
	RuleLength  RuleID = "length"
	RuleLower   RuleID = "lower"
	RuleUpper   RuleID = "upper"
	RuleNumber  RuleID = "number"
	RuleSpecial RuleID = "special"
)

// Rule is a weighted password predicate with a human readable description.
type Rule struct {
	ID          RuleID
	Weight      int
	Description string
	Test        func(string) bool
}

var passwordRules = []Rule{
	{
		ID:          RuleLength,
		Weight:      30,
		Description: "At least 8 characters",
		Test: func(pw string) bool {
			return utf8.RuneCountInString(pw) >= MinPasswordLength
		},
	},
	{ID: RuleLower, Weight: 15, Description: "Lowercase letter", Test: lowerPattern.MatchString},
	{ID: RuleUpper, Weight: 15, Description: "Uppercase letter", Test: upperPattern.MatchString},
	{ID: RuleNumber, Weight: 20, Description: "Number", Test: numberPattern.MatchString},
	{ID: RuleSpecial, Weight: 20, Description: "Special character", Test: specialPattern.MatchString},
}

// PasswordRules returns the password rules in their fixed evaluation order
// (length, lower, upper, number, special). The returned slice is a copy.
func PasswordRules() []Rule {
	out := make([]Rule, len(passwordRules))
	copy(out, passwordRules)
	return out
}

// FailedRules lists the rules pw does not satisfy, keeping the fixed order.
func FailedRules(pw string) []Rule {
	var failed []Rule
	for _, rule := range passwordRules {
		if !rule.Test(pw) {
			failed = append(failed, rule)
		}
	}
	return failed
}

// NonEmpty reports whether v has content once surrounding whitespace is
// removed.
func NonEmpty(v string) bool {
	return strings.TrimSpace(v) != ""
}

// Email reports whether v looks like local@domain.tld with a TLD of at least
// two characters. The value is matched as given; callers trim beforehand.
func Email(v string) bool {
	return emailPattern.MatchString(v)
}

// Present reports whether v is non-empty without trimming it.
func Present(v string) bool {
	return v != ""
}

// Matches reports whether confirm equals password exactly.
func Matches(confirm, password string) bool {
	return confirm == password
}

// Phone accepts an empty value (the field is optional) or a ten digit mobile
// number starting with 6-9, optionally prefixed by "+91" (with an optional
// space or dash) or a leading "0".
func Phone(v string) bool {
	if v == "" {
		return true
	}
	return phonePattern.MatchString(v)
}

// Accepted reports whether the terms checkbox is ticked.
func Accepted(b bool) bool {
	return b
}
