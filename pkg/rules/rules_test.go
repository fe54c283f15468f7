package rules_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/rules"
)

func TestEmail(t *testing.T) {
	cases := map[string]bool{
		"user@example.com":       true,
		"USER@EXAMPLE.COM":       true,
		"first.last@sub.co.in":   true,
		"user@.com":              false,
		"user@com":               false,
		"":                       false,
		"user@example.c":         false,
		"us er@example.com":      false,
		"user@@example.com":      false,
		"user@exa mple.com":      false,
		"us\u00a0er@example.com": false,
		"us\ver@example.com":     false,
		"user@exa\u2003mple.com": false,
		"user@example.c\u3000m":  false,
		"us\ufeffer@example.com": false,
	}
	for input, want := range cases {
		if got := rules.Email(input); got != want {
			t.Errorf("Email(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := map[string]bool{
		"":                    true,
		"9876543210":          true,
		"+919876543210":       true,
		"+91 9876543210":      true,
		"+91-9876543210":      true,
		"+91\u00a09876543210": true,
		"+91\u20029876543210": true,
		"09876543210":         true,
		"1234567890":          false,
		"5876543210":          false,
		"987654321":           false,
		"98765432100":         false,
		"+9198765 43210":      false,
		"+1 9876543210":       false,
	}
	for input, want := range cases {
		if got := rules.Phone(input); got != want {
			t.Errorf("Phone(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLengthRuleCountsRunes(t *testing.T) {
	length := rules.PasswordRules()[0]
	if length.Test("😀😀😀😀") {
		t.Fatalf("four emoji are four characters, below the minimum")
	}
	if !length.Test("ééééééé1") {
		t.Fatalf("eight accented characters should satisfy the length rule")
	}
}

func TestNonEmptyAndPresent(t *testing.T) {
	if rules.NonEmpty("   ") {
		t.Fatalf("expected whitespace-only value to be empty")
	}
	if !rules.NonEmpty(" Ada ") {
		t.Fatalf("expected padded value to be non-empty")
	}
	if !rules.Present(" ") {
		t.Fatalf("Present must not trim")
	}
	if rules.Present("") {
		t.Fatalf("expected empty value to be absent")
	}
}

func TestMatches(t *testing.T) {
	if !rules.Matches("Secret#1", "Secret#1") {
		t.Fatalf("expected identical values to match")
	}
	if rules.Matches("secret#1", "Secret#1") {
		t.Fatalf("match must be case sensitive")
	}
	if rules.Matches("Secret#1 ", "Secret#1") {
		t.Fatalf("match must not trim")
	}
}

func TestPasswordRulesOrder(t *testing.T) {
	var ids []rules.RuleID
	total := 0
	for _, rule := range rules.PasswordRules() {
		ids = append(ids, rule.ID)
		total += rule.Weight
	}
	want := []rules.RuleID{rules.RuleLength, rules.RuleLower, rules.RuleUpper, rules.RuleNumber, rules.RuleSpecial}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("rule order mismatch (-want +got):\n%s", diff)
	}
	if total != rules.MaxScore {
		t.Fatalf("weights sum to %d, want %d", total, rules.MaxScore)
	}
}

func TestFailedRules(t *testing.T) {
	tests := []struct {
		password string
		want     []rules.RuleID
	}{
		{password: "", want: []rules.RuleID{rules.RuleLength, rules.RuleLower, rules.RuleUpper, rules.RuleNumber, rules.RuleSpecial}},
		{password: "abc", want: []rules.RuleID{rules.RuleLength, rules.RuleUpper, rules.RuleNumber, rules.RuleSpecial}},
		{password: "abcdefgH1", want: []rules.RuleID{rules.RuleSpecial}},
		{password: "Abcdef1!", want: nil},
		{password: "ÄÖÜäöüß1", want: []rules.RuleID{rules.RuleLower, rules.RuleUpper}},
	}
	for _, tt := range tests {
		var got []rules.RuleID
		for _, rule := range rules.FailedRules(tt.password) {
			got = append(got, rule.ID)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("FailedRules(%q) mismatch (-want +got):\n%s", tt.password, diff)
		}
	}
}
