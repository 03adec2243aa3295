package memstore_test

import (
	"testing"

	resourceloader "github.com/karupanerura/resource-loader"
	"github.com/karupanerura/resource-loader/store/memstore"
	"github.com/karupanerura/resource-loader/store/storetest"
)

func TestInMemoryStore(t *testing.T) {
	t.Parallel()

	storetest.TestEntryStore(t, func() (resourceloader.EntryStore[string], func()) {
		return memstore.NewInMemoryStore[string](), func() {}
	})
}

func TestInMemoryStore_SingleBucket(t *testing.T) {
	t.Parallel()

	storetest.TestEntryStore(t, func() (resourceloader.EntryStore[string], func()) {
		return memstore.NewInMemoryStore[string](memstore.WithBucketsSize(1)), func() {}
	})
}

func TestInMemoryStore_CustomKeyHash(t *testing.T) {
	t.Parallel()

	storetest.TestEntryStore(t, func() (resourceloader.EntryStore[string], func()) {
		store := memstore.NewInMemoryStore[string](
			memstore.WithBucketsSize(4),
			memstore.WithKeyHash(func(key string) int {
				// deliberately negative to exercise bucket index normalization
				return -len(key)
			}),
		)
		return store, func() {}
	})
}

func TestWithBucketsSize_Invalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-natural buckets size")
		}
	}()
	memstore.WithBucketsSize(0)
}
