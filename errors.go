package resourceloader

import (
	"fmt"
)

// LoadError is the error delivered when the underlying fetch for a resource
// key fails. Every caller that joined the failed attempt receives it.
// The failed key is not cached: a subsequent Load starts a fresh attempt.
type LoadError struct {
	// Key is the resource key whose load failed.
	Key string

	// Err is the underlying cause.
	Err error
}

var _ error = (*LoadError)(nil)

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}
