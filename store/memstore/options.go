package memstore

import (
	"hash/fnv"
	"io"
)

// DefaultBucketsSize is the default number of buckets in the store.
var DefaultBucketsSize = 256

// Option is the interface for the options of the in-memory entry store.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// WithKeyHash sets the key hash function used to distribute keys across buckets.
func WithKeyHash(f func(string) int) Option {
	return optionFunc(func(o *options) {
		o.hashKey = f
	})
}

// WithBucketsSize sets the number of buckets in the store.
// The number of buckets must be a natural number.
func WithBucketsSize(bucketsSize int) Option {
	if bucketsSize <= 0 {
		panic("bucketsSize must be natural number")
	}
	return optionFunc(func(o *options) {
		o.bucketsSize = bucketsSize
	})
}

type options struct {
	hashKey     func(string) int
	bucketsSize int
}

func defaultOptions() options {
	return options{
		hashKey:     defaultKeyHash,
		bucketsSize: DefaultBucketsSize,
	}
}

// defaultKeyHash hashes the key with FNV-1a.
func defaultKeyHash(key string) int {
	h := fnv.New64a()
	_, _ = io.WriteString(h, key)
	return int(h.Sum64())
}
