package store

import (
	"context"

	resourceloader "github.com/karupanerura/resource-loader"
)

var _ resourceloader.EntryStore[struct{}] = (*FunctionsStore[struct{}])(nil)

// FunctionsStore is a resourceloader.EntryStore implementation that uses
// functions to perform the storage operations.
type FunctionsStore[V any] struct {
	// GetFunc retrieves an entry by its key.
	// If the key is not present, it should return nil as the Entry and no error.
	GetFunc func(context.Context, string) (*resourceloader.Entry[V], error)

	// SetFunc stores an entry under its key, overwriting any existing entry.
	SetFunc func(context.Context, *resourceloader.Entry[V]) error

	// DeleteFunc removes the entry stored under key, if any.
	DeleteFunc func(context.Context, string) error

	// ClearFunc removes all entries.
	ClearFunc func(context.Context) error

	// LenFunc returns the number of stored entries.
	LenFunc func(context.Context) (int, error)
}

// Get calls the GetFunc function to retrieve the entry for the given key.
func (s *FunctionsStore[V]) Get(ctx context.Context, key string) (*resourceloader.Entry[V], error) {
	return s.GetFunc(ctx, key)
}

// Set calls the SetFunc function to store the given entry.
func (s *FunctionsStore[V]) Set(ctx context.Context, entry *resourceloader.Entry[V]) error {
	return s.SetFunc(ctx, entry)
}

// Delete calls the DeleteFunc function to remove the entry for the given key.
func (s *FunctionsStore[V]) Delete(ctx context.Context, key string) error {
	return s.DeleteFunc(ctx, key)
}

// Clear calls the ClearFunc function to remove all entries.
func (s *FunctionsStore[V]) Clear(ctx context.Context) error {
	return s.ClearFunc(ctx)
}

// Len calls the LenFunc function to count the stored entries.
func (s *FunctionsStore[V]) Len(ctx context.Context) (int, error) {
	return s.LenFunc(ctx)
}
