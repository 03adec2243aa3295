// Package memstore provides a bucketed in-memory implementation of the
// resourceloader.EntryStore interface.
//
// Keys are distributed across buckets by a hash function to reduce lock
// contention under concurrent access. The store holds entries until they are
// explicitly deleted or cleared; it has no expiration or eviction policy.
package memstore
