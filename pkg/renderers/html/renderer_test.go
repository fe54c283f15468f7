package html_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	htmlrenderer "github.com/goliatone/go-formcheck/pkg/renderers/html"
)

func renderView(t *testing.T, view form.View, opts render.RenderOptions, options ...htmlrenderer.Option) string {
	t.Helper()
	r, err := htmlrenderer.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), view, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, out string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(out, part) {
			t.Fatalf("output missing %q:\n%s", part, out)
		}
	}
}

func TestRenderFailedSubmit(t *testing.T) {
	c := form.New()
	c.SetName("Ada")
	c.SetEmail("ada@")
	c.SetPassword("abcdefgH")
	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	out := renderView(t, c.View(), render.RenderOptions{Action: "/signup"})
	assertContains(t, out,
		`id="signupForm"`,
		"Enter a valid email address.",
		"Missing: Number, Special character",
		"Please confirm your password.",
		"You must accept the terms.",
		form.MsgFixErrors,
		`class="is-invalid"`,
		`class="is-valid"`,
		`data-score="60"`,
		`data-tier="medium"`,
		`type="password"`,
		`aria-invalid="true"`,
	)
	if strings.Contains(out, "abcdefgH") {
		t.Fatalf("password value must never be rendered")
	}
}

func TestRenderRevealedPasswordsAndValues(t *testing.T) {
	c := form.New()
	c.SetName("Ada <b>Lovelace</b>")
	c.SetPassword("Secret1!")
	c.ToggleMask()

	out := renderView(t, c.View(), render.RenderOptions{ShowValues: true})
	if strings.Contains(out, `type="password"`) {
		t.Fatalf("revealed passwords should render as text inputs:\n%s", out)
	}
	assertContains(t, out, "Hide", "Ada &lt;b&gt;Lovelace&lt;/b&gt;")
	if strings.Contains(out, "Secret1!") {
		t.Fatalf("password value must never be rendered")
	}
}

func TestRenderHiddenFieldsAndTitle(t *testing.T) {
	opts := render.RenderOptions{Title: "Join us"}.WithHidden(render.CSRFToken("_csrf", "tok"))
	out := renderView(t, form.New().View(), opts)
	assertContains(t, out, "Join us", `name="_csrf"`, `value="tok"`)
}

func TestRenderSanitisesCustomTemplates(t *testing.T) {
	tpl := `<form><script>alert(1)</script><p onclick="x()" class="msg">{{ message.text }}</p></form>`
	c := form.New()
	c.SetTerms(true)
	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	out := renderView(t, c.View(), render.RenderOptions{}, htmlrenderer.WithTemplate(tpl))
	if strings.Contains(out, "<script") || strings.Contains(out, "onclick") {
		t.Fatalf("unsafe markup survived sanitising:\n%s", out)
	}
	assertContains(t, out, form.MsgFixErrors, `class="msg"`)
}

func TestRenderInvalidTemplate(t *testing.T) {
	if _, err := htmlrenderer.New(htmlrenderer.WithTemplate("{% if %}")); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestRendererRegistersByName(t *testing.T) {
	r, err := htmlrenderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	reg, err := render.NewRegistry(r)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if _, err := reg.Render(context.Background(), "html", form.New().View(), render.RenderOptions{}); err != nil {
		t.Fatalf("registry render: %v", err)
	}
	if _, err := reg.Get("pdf"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	if err := reg.Register(r); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}
