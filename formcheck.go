package formcheck

import (
	"context"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	htmlrenderer "github.com/goliatone/go-formcheck/pkg/renderers/html"
	"github.com/goliatone/go-formcheck/pkg/renderers/tui"
)

// State aliases form.State for callers that only import the root package.
type State = form.State

// Payload aliases form.Payload.
type Payload = form.Payload

// Outcome aliases form.Outcome.
type Outcome = form.Outcome

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewController exposes the form controller constructor from the top-level
// module.
func NewController(options ...form.Option) *form.Controller {
	return form.New(options...)
}

// NewRegistry returns a renderer registry with the built-in html and text
// renderers registered.
func NewRegistry(htmlOptions ...htmlrenderer.Option) (*render.Registry, error) {
	html, err := htmlrenderer.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, tui.NewRenderer())
}

// Check replays state through a fresh controller as one input event per
// field and submits it. Nothing is sent anywhere unless a submitter option
// is passed. The controller is returned so callers can render its View.
func Check(ctx context.Context, state State, options ...form.Option) (Outcome, *form.Controller, error) {
	c := form.New(options...)
	c.SetName(state.Name)
	c.SetEmail(state.Email)
	c.SetPassword(state.Password)
	c.SetConfirm(state.Confirm)
	c.SetPhone(state.Phone)
	c.SetTerms(state.Terms)
	outcome, err := c.Submit(ctx)
	return outcome, c, err
}
