// Package storetest provides generic test cases for entry store implementations.
package storetest

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	resourceloader "github.com/karupanerura/resource-loader"
	"golang.org/x/sync/errgroup"
)

// TestEntryStore runs the conformance suite against an entry store implementation.
// The provider must return a fresh empty store and a release function.
func TestEntryStore(t *testing.T, provider func() (resourceloader.EntryStore[string], func())) {
	t.Run("GetMissingKey", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		entry, err := store.Get(t.Context(), "never-requested")
		if err != nil {
			t.Fatal(err)
		}
		if entry != nil {
			t.Errorf("expected nil entry for missing key, got: %+v", entry)
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		want := &resourceloader.Entry[string]{Key: "pages/login", Value: "login module"}
		if err := store.Set(t.Context(), want); err != nil {
			t.Fatal(err)
		}

		got, err := store.Get(t.Context(), "pages/login")
		if err != nil {
			t.Fatal(err)
		}
		if df := cmp.Diff(want, got); df != "" {
			t.Errorf("entry diff=%s", df)
		}
	})

	t.Run("SetOverwritesExistingEntry", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		if err := store.Set(t.Context(), &resourceloader.Entry[string]{Key: "theme.css", Value: "v1"}); err != nil {
			t.Fatal(err)
		}
		if err := store.Set(t.Context(), &resourceloader.Entry[string]{Key: "theme.css", Value: "v2"}); err != nil {
			t.Fatal(err)
		}

		got, err := store.Get(t.Context(), "theme.css")
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Value != "v2" {
			t.Errorf("expected overwritten entry, got: %+v", got)
		}

		n, err := store.Len(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("expected 1 entry after overwrite, got: %d", n)
		}
	})

	t.Run("ExactKeyEquality", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		if err := store.Set(t.Context(), &resourceloader.Entry[string]{Key: "assets/app", Value: "app"}); err != nil {
			t.Fatal(err)
		}

		got, err := store.Get(t.Context(), "assets/app/")
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("keys must not be normalized, got: %+v", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		if err := store.Set(t.Context(), &resourceloader.Entry[string]{Key: "pages/login", Value: "login module"}); err != nil {
			t.Fatal(err)
		}
		if err := store.Delete(t.Context(), "pages/login"); err != nil {
			t.Fatal(err)
		}

		got, err := store.Get(t.Context(), "pages/login")
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("expected nil entry after delete, got: %+v", got)
		}

		// deleting an absent key is not an error
		if err := store.Delete(t.Context(), "pages/login"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		for i := range 10 {
			entry := &resourceloader.Entry[string]{
				Key:   fmt.Sprintf("chunks/%d.js", i),
				Value: fmt.Sprintf("chunk %d", i),
			}
			if err := store.Set(t.Context(), entry); err != nil {
				t.Fatal(err)
			}
		}
		if err := store.Clear(t.Context()); err != nil {
			t.Fatal(err)
		}

		n, err := store.Len(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Errorf("expected empty store after clear, got: %d entries", n)
		}
		for i := range 10 {
			got, err := store.Get(t.Context(), fmt.Sprintf("chunks/%d.js", i))
			if err != nil {
				t.Fatal(err)
			}
			if got != nil {
				t.Errorf("expected nil entry after clear, got: %+v", got)
			}
		}
	})

	t.Run("Len", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		n, err := store.Len(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Errorf("expected empty store, got: %d entries", n)
		}

		for i := range 5 {
			entry := &resourceloader.Entry[string]{
				Key:   fmt.Sprintf("chunks/%d.js", i),
				Value: fmt.Sprintf("chunk %d", i),
			}
			if err := store.Set(t.Context(), entry); err != nil {
				t.Fatal(err)
			}
		}

		n, err = store.Len(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if n != 5 {
			t.Errorf("expected 5 entries, got: %d", n)
		}
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		t.Parallel()

		store, release := provider()
		defer release()

		var eg errgroup.Group
		for i := range 64 {
			key := fmt.Sprintf("chunks/%d.js", i%8)
			value := fmt.Sprintf("chunk %d", i)
			eg.Go(func() error {
				if err := store.Set(t.Context(), &resourceloader.Entry[string]{Key: key, Value: value}); err != nil {
					return err
				}
				if _, err := store.Get(t.Context(), key); err != nil {
					return err
				}
				_, err := store.Len(t.Context())
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}

		n, err := store.Len(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if n != 8 {
			t.Errorf("expected 8 entries, got: %d", n)
		}
	})
}
