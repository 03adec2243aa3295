// Package hinttest provides an in-memory Registrar for testing code that
// issues resource hints.
package hinttest

import (
	"context"
	"slices"
	"sync"

	"github.com/karupanerura/resource-loader/hint"
)

// Registrar is a hint.Registrar that records every registration in memory.
// Because hint registration is fire-and-forget, AwaitHint is the
// synchronization point for asserting on registered hints.
type Registrar struct {
	// HintErr is returned from RegisterHint after recording.
	HintErr error

	// ApplyErr is returned from ApplyStylesheet instead of recording.
	ApplyErr error

	// ApplyGate, if non-nil, blocks ApplyStylesheet until the channel is closed.
	ApplyGate <-chan struct{}

	mu          sync.Mutex
	hints       []hint.Hint
	stylesheets []string
	registered  chan hint.Hint
}

var _ hint.Registrar = (*Registrar)(nil)

// NewRegistrar creates a new recording registrar.
func NewRegistrar() *Registrar {
	return &Registrar{
		registered: make(chan hint.Hint, 64),
	}
}

// RegisterHint records the hint and returns HintErr.
func (r *Registrar) RegisterHint(_ context.Context, h hint.Hint) error {
	r.mu.Lock()
	r.hints = append(r.hints, h)
	r.mu.Unlock()

	select {
	case r.registered <- h:
	default:
	}
	return r.HintErr
}

// AwaitHint blocks until the next hint registration is observed or the
// context is done.
func (r *Registrar) AwaitHint(ctx context.Context) (hint.Hint, error) {
	select {
	case h := <-r.registered:
		return h, nil
	case <-ctx.Done():
		return hint.Hint{}, ctx.Err()
	}
}

// HasStylesheet reports whether a stylesheet with exactly this href has been
// applied.
func (r *Registrar) HasStylesheet(href string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Contains(r.stylesheets, href)
}

// ApplyStylesheet records the stylesheet reference.
// If ApplyGate is set, it blocks until the gate is closed or the context is
// done. If ApplyErr is set, the reference is not recorded and ApplyErr is
// returned.
func (r *Registrar) ApplyStylesheet(ctx context.Context, href string) error {
	if r.ApplyGate != nil {
		select {
		case <-r.ApplyGate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if r.ApplyErr != nil {
		return r.ApplyErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stylesheets = append(r.stylesheets, href)
	return nil
}

// Hints returns a copy of the recorded hints in registration order.
func (r *Registrar) Hints() []hint.Hint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.hints)
}

// Stylesheets returns a copy of the applied stylesheet references in
// application order.
func (r *Registrar) Stylesheets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.stylesheets)
}
