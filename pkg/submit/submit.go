// Package submit provides form.Submitter implementations for the submit
// boundary. None of them perform network I/O.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/goliatone/go-formcheck/pkg/form"
)

// Log records each payload through slog.
type Log struct {
	logger *slog.Logger
}

// NewLog returns a Log submitter. A nil logger falls back to slog.Default().
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

// Submit logs the payload at info level.
func (l *Log) Submit(ctx context.Context, payload form.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	attrs := []any{
		slog.String("name", payload.Name),
		slog.String("email", payload.Email),
	}
	if payload.Phone != nil {
		attrs = append(attrs, slog.String("phone", *payload.Phone))
	} else {
		attrs = append(attrs, slog.Any("phone", nil))
	}
	l.logger.InfoContext(ctx, "validated payload", attrs...)
	return nil
}

// Writer encodes each payload as JSON onto an io.Writer, one document per
// submit.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	indent bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithIndent toggles indented JSON output.
func WithIndent(indent bool) WriterOption {
	return func(w *Writer) {
		w.indent = indent
	}
}

// NewWriter returns a Writer submitter targeting out.
func NewWriter(out io.Writer, options ...WriterOption) (*Writer, error) {
	if out == nil {
		return nil, errors.New("submit: writer is required")
	}
	w := &Writer{out: out}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Submit writes the payload.
func (w *Writer) Submit(ctx context.Context, payload form.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	enc := json.NewEncoder(w.out)
	if w.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("submit: encode payload: %w", err)
	}
	return nil
}

// Func adapts a function into a form.Submitter.
type Func func(ctx context.Context, payload form.Payload) error

// Submit calls fn.
func (fn Func) Submit(ctx context.Context, payload form.Payload) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, payload)
}

// Multi fans a payload out to several submitters, stopping at the first
// error.
func Multi(submitters ...form.Submitter) form.Submitter {
	return Func(func(ctx context.Context, payload form.Payload) error {
		for _, s := range submitters {
			if s == nil {
				continue
			}
			if err := s.Submit(ctx, payload); err != nil {
				return err
			}
		}
		return nil
	})
}
