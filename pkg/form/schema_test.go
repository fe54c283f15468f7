package form_test

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-formcheck/pkg/form"
)

func TestValidatePayload(t *testing.T) {
	phone := "9876543210"
	if err := form.ValidatePayload(form.Payload{Name: "Ada", Email: "ada@example.com", Phone: &phone}); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if err := form.ValidatePayload(form.Payload{Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("null phone rejected: %v", err)
	}
	if err := form.ValidatePayload(form.Payload{Email: "ada@example.com"}); err == nil {
		t.Fatalf("expected empty name to violate the contract")
	}
}

func TestPayloadSchemaJSON(t *testing.T) {
	raw, err := json.Marshal(form.PayloadSchema())
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema missing properties: %s", raw)
	}
	for _, name := range []string{"name", "email", "phone"} {
		if _, ok := props[name]; !ok {
			t.Fatalf("schema missing %q property", name)
		}
	}
	if _, ok := props["password"]; ok {
		t.Fatalf("schema must not describe a password")
	}
}
