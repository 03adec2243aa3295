// Package store provides adapters and errors for the
// resourceloader.EntryStore interface.
//
// Concrete storage backends live in subpackages:
//   - memstore: bucketed in-memory storage with no eviction
//   - ttlstore: in-memory storage with optional time-bounded entries
//
// The storetest subpackage provides a generic conformance suite for
// EntryStore implementations.
package store
