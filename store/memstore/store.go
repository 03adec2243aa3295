package memstore

import (
	"context"
	"sync"

	resourceloader "github.com/karupanerura/resource-loader"
)

type bucket[V any] struct {
	m  map[string]*resourceloader.Entry[V]
	mu sync.RWMutex
}

type distributedStore[V any] struct {
	buckets []*bucket[V]
	options options
}

// NewInMemoryStore creates a new in-memory entry store.
// The store can be distributed across multiple buckets for improved
// performance under concurrent access; a hash function distributes the keys
// across the buckets. Entries are kept until explicitly deleted or cleared:
// the store never evicts entries based on time or memory pressure.
func NewInMemoryStore[V any](opts ...Option) resourceloader.EntryStore[V] {
	options := defaultOptions()
	for _, opt := range opts {
		opt.apply(&options)
	}

	if options.bucketsSize == 1 {
		return &singleStore[V]{
			bucket: bucket[V]{m: map[string]*resourceloader.Entry[V]{}},
		}
	}

	buckets := make([]*bucket[V], options.bucketsSize)
	for i := range buckets {
		buckets[i] = &bucket[V]{m: map[string]*resourceloader.Entry[V]{}}
	}

	return &distributedStore[V]{
		buckets: buckets,
		options: options,
	}
}

var _ resourceloader.EntryStore[struct{}] = (*distributedStore[struct{}])(nil)

// resolveBucket returns the bucket that corresponds to the given key.
func (s *distributedStore[V]) resolveBucket(key string) *bucket[V] {
	index := s.options.hashKey(key) % len(s.buckets)
	if index < 0 {
		index *= -1
	}
	return s.buckets[index]
}

func (s *distributedStore[V]) Get(_ context.Context, key string) (*resourceloader.Entry[V], error) {
	bucket := s.resolveBucket(key)
	bucket.mu.RLock()
	defer bucket.mu.RUnlock()

	if v, ok := bucket.m[key]; ok {
		return v, nil
	}
	return nil, nil
}

func (s *distributedStore[V]) Set(_ context.Context, entry *resourceloader.Entry[V]) error {
	bucket := s.resolveBucket(entry.Key)
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	bucket.m[entry.Key] = entry
	return nil
}

func (s *distributedStore[V]) Delete(_ context.Context, key string) error {
	bucket := s.resolveBucket(key)
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	delete(bucket.m, key)
	return nil
}

func (s *distributedStore[V]) Clear(_ context.Context) error {
	for _, bucket := range s.buckets {
		bucket.mu.Lock()
		bucket.m = map[string]*resourceloader.Entry[V]{}
		bucket.mu.Unlock()
	}
	return nil
}

func (s *distributedStore[V]) Len(_ context.Context) (int, error) {
	var n int
	for _, bucket := range s.buckets {
		bucket.mu.RLock()
		n += len(bucket.m)
		bucket.mu.RUnlock()
	}
	return n, nil
}

type singleStore[V any] struct {
	bucket[V]
}

var _ resourceloader.EntryStore[struct{}] = (*singleStore[struct{}])(nil)

func (s *singleStore[V]) Get(_ context.Context, key string) (*resourceloader.Entry[V], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.m[key]; ok {
		return v, nil
	}
	return nil, nil
}

func (s *singleStore[V]) Set(_ context.Context, entry *resourceloader.Entry[V]) error {
	s.bucket.mu.Lock()
	defer s.bucket.mu.Unlock()

	s.bucket.m[entry.Key] = entry
	return nil
}

func (s *singleStore[V]) Delete(_ context.Context, key string) error {
	s.bucket.mu.Lock()
	defer s.bucket.mu.Unlock()

	delete(s.bucket.m, key)
	return nil
}

func (s *singleStore[V]) Clear(_ context.Context) error {
	s.bucket.mu.Lock()
	defer s.bucket.mu.Unlock()

	s.bucket.m = map[string]*resourceloader.Entry[V]{}
	return nil
}

func (s *singleStore[V]) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.m), nil
}
