package fetch

import (
	"context"
	"errors"
	"fmt"

	resourceloader "github.com/karupanerura/resource-loader"
)

// ErrNotFound is returned by Static for keys it does not contain.
var ErrNotFound = errors.New("resource not found")

// Func is a Fetcher that uses a function to load resources.
type Func[V any] func(ctx context.Context, key string) (V, error)

var _ resourceloader.Fetcher[struct{}] = (Func[struct{}])(nil)

// Fetch calls the function.
func (f Func[V]) Fetch(ctx context.Context, key string) (V, error) {
	return f(ctx, key)
}

// Static is a Fetcher that serves resources from a fixed map.
// Fetching a key that is not in the map fails with ErrNotFound.
type Static[V any] map[string]V

var _ resourceloader.Fetcher[struct{}] = (Static[struct{}])(nil)

// Fetch returns the value stored under key.
func (s Static[V]) Fetch(_ context.Context, key string) (V, error) {
	v, ok := s[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	return v, nil
}

// SilentErrorFetcher is a decorator for a resourceloader.Fetcher that
// silently handles fetch errors. Instead of propagating the error, it calls
// the provided OnError function and returns the Fallback value.
type SilentErrorFetcher[V any] struct {
	// Fetcher is the underlying fetcher that this decorator wraps.
	Fetcher resourceloader.Fetcher[V]

	// OnError is called when the underlying fetch fails.
	OnError func(error)

	// Fallback is the value returned in place of a failed fetch.
	Fallback V
}

var _ resourceloader.Fetcher[struct{}] = (*SilentErrorFetcher[struct{}])(nil)

// Fetch retrieves the resource from the underlying fetcher.
// If the fetch fails and an OnError handler is set, the error is passed to
// the handler. The method itself returns the Fallback value and nil error.
func (s *SilentErrorFetcher[V]) Fetch(ctx context.Context, key string) (V, error) {
	v, err := s.Fetcher.Fetch(ctx, key)
	if err != nil {
		if s.OnError != nil {
			s.OnError(err)
		}
		return s.Fallback, nil
	}
	return v, nil
}
