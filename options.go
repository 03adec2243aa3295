package resourceloader

import (
	"context"
)

// Option is the interface for the options of the Loader.
type Option[V any] interface {
	apply(*Loader[V])
}

type optionFunc[V any] func(*Loader[V])

func (f optionFunc[V]) apply(l *Loader[V]) {
	f(l)
}

// WithBackgroundContextProvider sets the context provider for background
// fetches. The provider must return a new context for each call.
// The default context provider is context.Background.
func WithBackgroundContextProvider[V any](provider func() context.Context) Option[V] {
	return optionFunc[V](func(l *Loader[V]) {
		l.context = provider
	})
}
