// Package validation turns the predicates in pkg/rules into per-field
// validators. Each validator returns a Result carrying the pass/fail outcome,
// the failure Kind, the message to show next to the field and the Visual
// state the presentation layer should apply. Failures are values, never
// panics; Result.Err exposes them as errors for callers that prefer errors.Is.
package validation
