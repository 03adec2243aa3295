package hint

import (
	"context"

	"github.com/sourcegraph/conc/panics"
)

// Relation identifies the relation type of a registered hint.
type Relation string

const (
	RelPreload    Relation = "preload"
	RelPrefetch   Relation = "prefetch"
	RelPreconnect Relation = "preconnect"
	RelStylesheet Relation = "stylesheet"
)

// Kind identifies the resource kind a preload or prefetch hint targets.
type Kind string

const (
	KindNone   Kind = ""
	KindScript Kind = "script"
	KindStyle  Kind = "style"
	KindFont   Kind = "font"
	KindImage  Kind = "image"
	KindFetch  Kind = "fetch"
)

// Hint is a single resource hint to register with the hosting environment.
type Hint struct {
	// Rel is the relation type of the hint.
	Rel Relation

	// As is the resource kind the hint targets.
	// It is empty for relations that do not take a kind (e.g. preconnect).
	As Kind

	// URL names the resource or origin the hint refers to.
	URL string
}

// Registrar is the environment capability for document-level resource hints.
// Implementations must be thread-safe.
type Registrar interface {
	// RegisterHint registers an advisory hint with the environment.
	// The returned error is informational: callers issuing advisory hints
	// are free to discard it.
	RegisterHint(ctx context.Context, hint Hint) error

	// HasStylesheet reports whether a stylesheet with exactly this href is
	// already registered. Comparison is by exact reference, not by resolved
	// content.
	HasStylesheet(href string) bool

	// ApplyStylesheet registers a stylesheet with the environment and blocks
	// until it has finished applying or failed to load.
	ApplyStylesheet(ctx context.Context, href string) error
}

// Hinter issues resource hints through a Registrar.
type Hinter struct {
	registrar Registrar
	context   func() context.Context
}

// NewHinter creates a new Hinter that registers hints with the given registrar.
func NewHinter(registrar Registrar, opts ...Option) *Hinter {
	hinter := &Hinter{
		registrar: registrar,
		context:   context.Background,
	}
	for _, o := range opts {
		o.apply(hinter)
	}
	return hinter
}

// Preload hints that the resource at url will be needed for the current
// navigation. It returns immediately; registration happens in the background
// and its outcome is not surfaced.
func (h *Hinter) Preload(url string, as Kind) {
	h.dispatch(Hint{Rel: RelPreload, As: as, URL: url})
}

// Prefetch hints that the resource at url will likely be needed for a future
// navigation. It returns immediately; registration happens in the background
// and its outcome is not surfaced.
func (h *Hinter) Prefetch(url string, as Kind) {
	h.dispatch(Hint{Rel: RelPrefetch, As: as, URL: url})
}

// Preconnect hints that a connection to origin will likely be needed soon.
// It returns immediately; registration happens in the background and its
// outcome is not surfaced.
func (h *Hinter) Preconnect(origin string) {
	h.dispatch(Hint{Rel: RelPreconnect, URL: origin})
}

// dispatch registers the hint on a background goroutine.
// Errors are dropped and panics in the registrar are contained.
func (h *Hinter) dispatch(hint Hint) {
	ctx := h.context()
	go func() {
		var pc panics.Catcher
		pc.Try(func() {
			_ = h.registrar.RegisterHint(ctx, hint)
		})
	}()
}

// Option is the interface for the options of the Hinter.
type Option interface {
	apply(*Hinter)
}

type optionFunc func(*Hinter)

func (f optionFunc) apply(h *Hinter) {
	f(h)
}

// WithBackgroundContextProvider sets the context provider for background
// hint registrations. The provider must return a new context for each call.
// The default context provider is context.Background.
func WithBackgroundContextProvider(provider func() context.Context) Option {
	return optionFunc(func(h *Hinter) {
		h.context = provider
	})
}
