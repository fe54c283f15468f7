package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
)

type stubRenderer struct {
	name string
	got  form.View
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }

func (s *stubRenderer) Render(_ context.Context, view form.View, options render.RenderOptions) ([]byte, error) {
	s.got = view
	return []byte(s.name + ":" + options.Title), nil
}

func TestRegistryRender(t *testing.T) {
	stub := &stubRenderer{name: "stub"}
	reg, err := render.NewRegistry(stub, &stubRenderer{name: "another"})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if diff := cmp.Diff([]string{"another", "stub"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	view := form.New(form.WithState(form.State{Name: "Ada"})).View()
	out, err := reg.Render(context.Background(), "stub", view, render.RenderOptions{Title: "Sign up"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "stub:Sign up" {
		t.Fatalf("unexpected output %q", out)
	}
	if stub.got.Values.Name != "Ada" {
		t.Fatalf("renderer did not receive the view, got %+v", stub.got.Values)
	}
}

func TestRegistryRejectsDuplicatesAndUnknown(t *testing.T) {
	reg, err := render.NewRegistry(&stubRenderer{name: "stub"})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if err := reg.Register(&stubRenderer{name: "stub"}); err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(&stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
	if _, err := render.NewRegistry(&stubRenderer{name: "a"}, &stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate error from constructor")
	}
}
