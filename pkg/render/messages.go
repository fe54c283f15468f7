package render

import (
	"strings"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// FieldMessage pairs a field with the message it currently shows.
type FieldMessage struct {
	Field   validation.Field
	Message string
}

// FieldMessages lists the non-empty field messages of view in form order.
func FieldMessages(view form.View) []FieldMessage {
	var out []FieldMessage
	for _, f := range validation.Fields() {
		msg := strings.TrimSpace(view.Field(f).Message)
		if msg == "" {
			continue
		}
		out = append(out, FieldMessage{Field: f, Message: msg})
	}
	return out
}

// Summary returns every message shown by view, field messages first and the
// aggregate form message last, trimmed and without duplicates.
func Summary(view form.View) []string {
	var messages []string
	for _, fm := range FieldMessages(view) {
		messages = append(messages, fm.Message)
	}
	return MergeMessages(messages, view.Message.Text)
}

// MergeMessages concatenates message slices, trimming whitespace and removing
// duplicates while preserving order.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
