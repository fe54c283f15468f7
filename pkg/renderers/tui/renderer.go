package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

const strengthBarWidth = 20

// Renderer draws a form.View as plain terminal text.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer returns the text renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType reports the MIME type of Render output.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes one line per field, the strength bar and the form message.
func (r *Renderer) Render(ctx context.Context, view form.View, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Create your account"
	}
	fmt.Fprintln(&b, title)

	for _, f := range validation.Fields() {
		fv := view.Field(f)
		fmt.Fprintf(&b, "  %s %s", marker(fv.Visual), f.Label())
		if opts.ShowValues {
			if value := view.Values.Public(f); value != "" {
				fmt.Fprintf(&b, " = %s", value)
			}
		}
		if fv.Message != "" {
			fmt.Fprintf(&b, ": %s", fv.Message)
		}
		b.WriteByte('\n')
		if f == validation.FieldPassword {
			fmt.Fprintf(&b, "    %s\n", StrengthLine(view.Strength))
		}
	}

	if view.Message.Text != "" {
		fmt.Fprintf(&b, "%s %s\n", toneMarker(view.Message.Tone), view.Message.Text)
	}
	return []byte(b.String()), nil
}

// StrengthLine renders a strength bar such as "[############--------] 60% medium".
func StrengthLine(s rules.Strength) string {
	score := s.Score
	if score < 0 {
		score = 0
	}
	if score > rules.MaxScore {
		score = rules.MaxScore
	}
	filled := score * strengthBarWidth / rules.MaxScore
	return fmt.Sprintf("[%s%s] %d%% %s",
		strings.Repeat("#", filled),
		strings.Repeat("-", strengthBarWidth-filled),
		score,
		s.Tier,
	)
}

func marker(v validation.Visual) string {
	switch v {
	case validation.VisualValid:
		return "✓"
	case validation.VisualInvalid:
		return "✗"
	default:
		return "·"
	}
}

func toneMarker(t form.Tone) string {
	switch t {
	case form.ToneSuccess:
		return "✓"
	case form.ToneWarning:
		return "!"
	default:
		return "-"
	}
}
