package ttlstore

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	resourceloader "github.com/karupanerura/resource-loader"
)

// Store is a resourceloader.EntryStore backed by a TTL cache.
// By default entries never expire, matching the loader's core contract; a
// bounded entry lifetime is opt-in through WithTTL.
type Store[V any] struct {
	cache *ttlcache.Cache[string, *resourceloader.Entry[V]]
}

var _ resourceloader.EntryStore[struct{}] = (*Store[struct{}])(nil)

// New creates a new TTL-backed entry store and starts its expiration worker.
// Call Stop when the store is no longer needed.
func New[V any](opts ...Option) *Store[V] {
	options := options{ttl: ttlcache.NoTTL}
	for _, opt := range opts {
		opt.apply(&options)
	}

	cache := ttlcache.New[string, *resourceloader.Entry[V]](
		ttlcache.WithTTL[string, *resourceloader.Entry[V]](options.ttl),
		ttlcache.WithDisableTouchOnHit[string, *resourceloader.Entry[V]](),
	)
	go cache.Start()
	return &Store[V]{cache: cache}
}

// Stop stops the expiration worker.
func (s *Store[V]) Stop() {
	s.cache.Stop()
}

// Get retrieves an entry by its key.
// If the key is not present or its entry has expired, it returns nil.
func (s *Store[V]) Get(_ context.Context, key string) (*resourceloader.Entry[V], error) {
	item := s.cache.Get(key)
	if item == nil {
		return nil, nil
	}
	return item.Value(), nil
}

// Set stores an entry under its key with the store's TTL.
func (s *Store[V]) Set(_ context.Context, entry *resourceloader.Entry[V]) error {
	s.cache.Set(entry.Key, entry, ttlcache.DefaultTTL)
	return nil
}

// Delete removes the entry stored under key, if any.
func (s *Store[V]) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Clear removes all entries.
func (s *Store[V]) Clear(_ context.Context) error {
	s.cache.DeleteAll()
	return nil
}

// Len returns the number of stored entries.
func (s *Store[V]) Len(_ context.Context) (int, error) {
	return s.cache.Len(), nil
}

// Option is the interface for the options of the TTL-backed entry store.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// WithTTL sets the lifetime of stored entries.
// The default is no expiration.
func WithTTL(ttl time.Duration) Option {
	return optionFunc(func(o *options) {
		o.ttl = ttl
	})
}

type options struct {
	ttl time.Duration
}
