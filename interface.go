package resourceloader

import (
	"context"
)

// Entry is a resolved resource.
type Entry[V any] struct {
	// Key is the resource key of the entry.
	// Keys are compared by exact string equality; the loader performs no
	// normalization (trailing slashes, relative resolution, etc.).
	Key string

	// Value is the loaded result associated with the key.
	// It is opaque to the loader: whatever the fetcher returned.
	Value V
}

// Fetcher is an interface for the environment capability that begins an
// asynchronous fetch or import of a named resource.
type Fetcher[V any] interface {
	// Fetch loads the resource named by key.
	// It returns the loaded value, or an error if the load failed.
	// Fetch is called at most once per key per failure-free cycle; the
	// loader shares the outcome among all callers that joined the attempt.
	Fetch(ctx context.Context, key string) (V, error)
}

// EntryStore is an interface for a resolved-entry storage backend.
// Implementations must be thread-safe.
type EntryStore[V any] interface {
	// Get retrieves an entry by its key.
	// If the key is not present, it returns nil as the Entry and no error.
	Get(ctx context.Context, key string) (*Entry[V], error)

	// Set stores an entry under its key.
	// If the key already exists, it overwrites the existing entry.
	Set(ctx context.Context, entry *Entry[V]) error

	// Delete removes the entry stored under key, if any.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Len returns the number of stored entries.
	Len(ctx context.Context) (int, error)
}
