package render

import (
	"context"

	"github.com/goliatone/go-formcheck/pkg/form"
)

// Renderer converts a form.View snapshot into a byte representation (HTML,
// terminal text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view form.View, options RenderOptions) ([]byte, error)
}
