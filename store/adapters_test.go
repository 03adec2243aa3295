package store_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	resourceloader "github.com/karupanerura/resource-loader"
	"github.com/karupanerura/resource-loader/store"
)

func TestFunctionsStore(t *testing.T) {
	t.Parallel()

	var ops []string
	fs := &store.FunctionsStore[string]{
		GetFunc: func(_ context.Context, key string) (*resourceloader.Entry[string], error) {
			ops = append(ops, "get:"+key)
			return &resourceloader.Entry[string]{Key: key, Value: "value"}, nil
		},
		SetFunc: func(_ context.Context, entry *resourceloader.Entry[string]) error {
			ops = append(ops, "set:"+entry.Key)
			return nil
		},
		DeleteFunc: func(_ context.Context, key string) error {
			ops = append(ops, "delete:"+key)
			return nil
		},
		ClearFunc: func(_ context.Context) error {
			ops = append(ops, "clear")
			return nil
		},
		LenFunc: func(_ context.Context) (int, error) {
			ops = append(ops, "len")
			return 1, nil
		},
	}

	entry, err := fs.Get(t.Context(), "a")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Value != "value" {
		t.Errorf("unexpected value: %q", entry.Value)
	}
	if err := fs.Set(t.Context(), &resourceloader.Entry[string]{Key: "b", Value: "value"}); err != nil {
		t.Fatal(err)
	}
	if err := fs.Delete(t.Context(), "a"); err != nil {
		t.Fatal(err)
	}
	if err := fs.Clear(t.Context()); err != nil {
		t.Fatal(err)
	}
	if n, err := fs.Len(t.Context()); err != nil || n != 1 {
		t.Errorf("unexpected len result: %d, %v", n, err)
	}

	want := []string{"get:a", "set:b", "delete:a", "clear", "len"}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("unexpected operations (-want +got):\n%s", diff)
	}
}
