package resourceloader_test

import (
	"errors"
	"testing"

	resourceloader "github.com/karupanerura/resource-loader"
)

func TestLoadError(t *testing.T) {
	t.Parallel()

	cause := errors.New("network error")
	err := &resourceloader.LoadError{Key: "pages/login", Err: cause}

	if got := err.Error(); got != `load "pages/login": network error` {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
}
