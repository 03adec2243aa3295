// Package ttlstore provides a resourceloader.EntryStore implementation
// backed by github.com/jellydator/ttlcache.
//
// It is intended for embedders that want resolved entries to age out after a
// fixed lifetime instead of living until explicitly unloaded. Without the
// WithTTL option the store behaves like a plain in-memory store with no
// expiration.
package ttlstore
