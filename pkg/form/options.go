package form

import (
	"context"
	"log/slog"
)

// Submitter receives the payload of a successful submit. Implementations live
// in pkg/submit.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// Observer is notified with a fresh View after every state change.
type Observer interface {
	Notify(View)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(View)

// Notify calls fn(view).
func (fn ObserverFunc) Notify(view View) {
	if fn != nil {
		fn(view)
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for controller diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSubmitter sets the destination of successful payloads.
func WithSubmitter(submitter Submitter) Option {
	return func(c *Controller) {
		c.submitter = submitter
	}
}

// WithObserver registers an observer. It may be supplied more than once.
func WithObserver(observer Observer) Option {
	return func(c *Controller) {
		if observer != nil {
			c.observers = append(c.observers, observer)
		}
	}
}

// WithState seeds the controller with prefilled values. Nothing is validated
// until the first event.
func WithState(state State) Option {
	return func(c *Controller) {
		c.state = state
	}
}
