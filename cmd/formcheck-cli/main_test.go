package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestRunPrintsSchema(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-schema"}, &out); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	var doc map[string]any
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("schema is not JSON: %v\n%s", err, out.String())
	}
	if doc["title"] != "SignupPayload" {
		t.Fatalf("unexpected schema title %v", doc["title"])
	}
}

func TestRunRendersTextSnapshot(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{
		"-env-file", noEnvFile(t),
		"-renderer", "text",
		"-name", "Ada",
		"-email", "ada@example.com",
		"-password", "Abcdef1!",
		"-confirm", "Abcdef1!",
		"-terms",
	}, &out)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), form.MsgSuccess) {
		t.Fatalf("expected success message in output:\n%s", out.String())
	}
}

func TestRunReportsInvalidSnapshot(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-env-file", noEnvFile(t), "-renderer", "text", "-email", "bad"}, &out)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{form.MsgFixErrors, validation.MsgEmailInvalid} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunReturnsExitCodes(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-env-file", noEnvFile(t), "-renderer", "pdf"}, &out); code != 1 {
		t.Fatalf("unknown renderer exit code = %d, want 1", code)
	}
	if code := run([]string{"-no-such-flag"}, &out); code != 2 {
		t.Fatalf("bad flag exit code = %d, want 2", code)
	}
}
