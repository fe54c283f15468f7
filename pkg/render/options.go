package render

// RenderOptions carry per-render data that is not part of the form state.
type RenderOptions struct {
	// Title is shown above the form. Renderers fall back to their own default.
	Title string
	// Action is the form submission target for markup renderers.
	Action string
	// Hidden fields are emitted as hidden inputs, sorted by name.
	Hidden map[string]string
	// ShowValues echoes the non-secret field values back into the output.
	// Password values are never echoed.
	ShowValues bool
}
