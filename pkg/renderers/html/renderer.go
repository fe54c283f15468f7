// Package html renders a form.View as the signup form markup, with field
// messages, visual states and the password strength bar filled in. Output is
// produced by a pongo2 template and then passed through a bluemonday policy
// restricted to form elements.
package html

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

const defaultTitle = "Create your account"

// Option configures the renderer.
type Option func(*config)

type config struct {
	source     string
	classNames map[validation.Visual]string
}

// WithTemplate replaces the embedded template with a pongo2 template source.
func WithTemplate(source string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(source) != "" {
			cfg.source = source
		}
	}
}

// WithClassNames overrides the CSS class emitted for each visual state.
func WithClassNames(classes map[validation.Visual]string) Option {
	return func(cfg *config) {
		for visual, class := range classes {
			cfg.classNames[visual] = strings.TrimSpace(class)
		}
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	tpl        *pongo2.Template
	classNames map[validation.Visual]string
}

var _ render.Renderer = (*Renderer)(nil)

// New compiles the template and returns the renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		classNames: map[validation.Visual]string{
			validation.VisualNeutral: "is-neutral",
			validation.VisualValid:   "is-valid",
			validation.VisualInvalid: "is-invalid",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.source == "" {
		source, err := defaultTemplate()
		if err != nil {
			return nil, fmt.Errorf("html renderer: load template: %w", err)
		}
		cfg.source = source
	}

	tpl, err := pongo2.FromString(cfg.source)
	if err != nil {
		return nil, fmt.Errorf("html renderer: compile template: %w", err)
	}
	return &Renderer{tpl: tpl, classNames: cfg.classNames}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the MIME type of Render output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the template for view.
func (r *Renderer) Render(ctx context.Context, view form.View, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := r.tpl.Execute(r.context(view, opts))
	if err != nil {
		return nil, fmt.Errorf("html renderer: execute template: %w", err)
	}
	return []byte(sanitize(out)), nil
}

func (r *Renderer) context(view form.View, opts render.RenderOptions) pongo2.Context {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}

	fields := make([]map[string]any, 0, len(validation.Fields()))
	for _, f := range validation.Fields() {
		fv := view.Field(f)
		entry := map[string]any{
			"name":    string(f),
			"label":   f.Label(),
			"kind":    inputKind(f, view.Masked),
			"message": fv.Message,
			"visual":  fv.Visual.String(),
			"class":   r.classNames[fv.Visual],
			"invalid": fv.Visual == validation.VisualInvalid,
			"value":   "",
		}
		if opts.ShowValues {
			entry["value"] = view.Values.Public(f)
		}
		if f == validation.FieldTerms {
			entry["checked"] = view.Values.Terms
		}
		fields = append(fields, entry)
	}

	return pongo2.Context{
		"title":         title,
		"action":        opts.Action,
		"hidden_fields": render.SortedHiddenFields(opts.Hidden),
		"fields":        fields,
		"masked":        view.Masked,
		"status":        view.Status.String(),
		"strength": map[string]any{
			"score": view.Strength.Score,
			"tier":  view.Strength.Tier.String(),
			"color": view.Strength.Tier.Color(),
		},
		"message": map[string]any{
			"text":  view.Message.Text,
			"tone":  view.Message.Tone.String(),
			"color": view.Message.Tone.Color(),
		},
	}
}

func inputKind(f validation.Field, masked bool) string {
	switch f {
	case validation.FieldEmail:
		return "email"
	case validation.FieldPhone:
		return "tel"
	case validation.FieldTerms:
		return "checkbox"
	case validation.FieldPassword, validation.FieldConfirm:
		if masked {
			return "password"
		}
		return "text"
	default:
		return "text"
	}
}
