package hint

import (
	"context"
	"fmt"
)

// StylesheetError is the error returned when a stylesheet failed to apply.
// It is surfaced only to the direct caller of LoadStylesheet.
type StylesheetError struct {
	// Path is the stylesheet reference that failed to apply.
	Path string

	// Err is the underlying cause.
	Err error
}

var _ error = (*StylesheetError)(nil)

func (e *StylesheetError) Error() string {
	return fmt.Sprintf("stylesheet %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StylesheetError) Unwrap() error {
	return e.Err
}

// LoadStylesheet registers the stylesheet at path with the environment and
// blocks until it has applied or failed. If a stylesheet with exactly the
// same reference is already registered, it returns immediately without
// registering a new one.
//
// The existence check is not atomic with the registration: concurrent calls
// for the same path may both register it. The environment tolerates
// duplicate references, so this race is accepted rather than locked away.
func (h *Hinter) LoadStylesheet(ctx context.Context, path string) error {
	if h.registrar.HasStylesheet(path) {
		return nil
	}
	if err := h.registrar.ApplyStylesheet(ctx, path); err != nil {
		return &StylesheetError{Path: path, Err: err}
	}
	return nil
}

// LoadStylesheets applies each stylesheet in order.
// The first failure aborts the sequence and is returned.
func (h *Hinter) LoadStylesheets(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		if err := h.LoadStylesheet(ctx, path); err != nil {
			return err
		}
	}
	return nil
}
