// Package form implements the signup form controller. A Controller owns the
// six field values, runs the field validators from pkg/validation on every
// input event, and gates submission on all of them passing. Presentation code
// never receives callbacks from validators directly; it reads View snapshots,
// either by calling Controller.View or by registering an Observer that is
// notified after every state change.
//
// The controller follows a single-threaded event model: one event is handled
// to completion before the next, so a Controller must not be shared between
// goroutines without external synchronisation.
package form
