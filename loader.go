package resourceloader

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/karupanerura/resource-loader/internal/panicutil"
)

var errGoexit = errors.New("runtime.Goexit is called")

// Loader deduplicates concurrent and repeated load requests for the same
// resource key. A key is fetched at most once per failure-free cycle: callers
// that request a key while a fetch for it is in flight join that attempt and
// observe its outcome, and a successfully loaded entry is served from the
// store until it is explicitly unloaded. The loader never evicts entries on
// its own.
type Loader[V any] struct {
	store   EntryStore[V]
	fetcher Fetcher[V]
	context func() context.Context

	mu       sync.Mutex
	inflight map[string]*flight[V]
}

// NewLoader creates a new Loader that resolves keys with the given fetcher
// and keeps resolved entries in the given store.
func NewLoader[V any](store EntryStore[V], fetcher Fetcher[V], opts ...Option[V]) *Loader[V] {
	loader := &Loader[V]{
		store:    store,
		fetcher:  fetcher,
		context:  context.Background,
		inflight: map[string]*flight[V]{},
	}
	for _, o := range opts {
		o.apply(loader)
	}
	return loader
}

type either[L any, R any] struct {
	L L
	R R
}

// flight is the bookkeeping for one in-flight fetch attempt.
// It owns its waiter list so that ClearCache can drop the tracking map
// without stranding callers that already joined the attempt.
type flight[V any] struct {
	waiters []chan either[error, V]
}

// Load returns the resource for the given key.
// If the key has a resolved entry, it is returned without new work.
// If a fetch for the key is in flight, the caller joins it and observes the
// outcome of that one attempt. Otherwise a new background fetch starts.
// On failure every joined caller receives a *LoadError and the key reverts
// to absent, so a later Load retries with a fresh fetch.
// Cancelling ctx releases only this caller; the underlying fetch runs to
// completion regardless.
func (l *Loader[V]) Load(ctx context.Context, key string) (V, error) {
	var zero V
	if entry, err := l.store.Get(ctx, key); err != nil {
		return zero, err
	} else if entry != nil {
		return entry.Value, nil
	}

	ch := l.join(key)
	select {
	case e := <-ch:
		if e.L != nil {
			if e.L == errGoexit {
				runtime.Goexit()
			}
			return zero, e.L
		}
		return e.R, nil
	case <-ctx.Done():
		go func() {
			<-ch
		}()
		return zero, ctx.Err()
	}
}

// LoadMulti returns the resources for the given keys, in key order.
// Each missing key joins or starts its own fetch attempt; duplicate keys in
// one call share a single attempt. If any attempt fails, LoadMulti waits for
// the remaining attempts and returns the last error observed.
func (l *Loader[V]) LoadMulti(ctx context.Context, keys []string) ([]V, error) {
	values := make([]V, len(keys))
	channels := make([]chan either[error, V], len(keys))
	for i, key := range keys {
		if entry, err := l.store.Get(ctx, key); err != nil {
			return nil, err
		} else if entry != nil {
			values[i] = entry.Value
			continue
		}
		channels[i] = l.join(key)
	}

	var lastErr error
	for i, ch := range channels {
		if ch == nil {
			continue
		}
		select {
		case e := <-ch:
			if e.L != nil {
				lastErr = e.L
				if e.L == errGoexit {
					runtime.Goexit()
				}
				continue
			}
			values[i] = e.R
		case <-ctx.Done():
			rest := channels[i:]
			go func() {
				for _, ch := range rest {
					if ch != nil {
						<-ch
					}
				}
			}()
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return values, nil
}

// join registers a waiter for the key and returns a channel to receive the
// outcome. The first waiter for a key starts the background fetch.
func (l *Loader[V]) join(key string) chan either[error, V] {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan either[error, V], 1)
	f, ok := l.inflight[key]
	if !ok {
		f = &flight[V]{}
		l.inflight[key] = f
		go l.fetchAndStore(l.context(), key, f)
	}
	f.waiters = append(f.waiters, ch)
	return ch
}

// fetchAndStore fetches a resource and stores the resolved entry.
func (l *Loader[V]) fetchAndStore(ctx context.Context, key string, f *flight[V]) {
	dds := panicutil.DoubleDeferSandwich{
		OnGoexit: func() {
			l.fail(key, f, errGoexit)
		},
	}

	var value V
	if err := dds.Invoke(func() (err error) {
		value, err = l.fetcher.Fetch(ctx, key)
		return
	}); err != nil {
		l.fail(key, f, &LoadError{Key: key, Err: err})
		return
	}

	if err := l.store.Set(ctx, &Entry[V]{Key: key, Value: value}); err != nil {
		l.fail(key, f, err)
		return
	}
	l.complete(key, f, value)
}

// complete sends the resolved value to the attempt's waiters.
// All waiters receive the same value.
func (l *Loader[V]) complete(key string, f *flight[V], value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inflight[key] == f {
		delete(l.inflight, key)
	}
	for _, ch := range f.waiters {
		ch <- either[error, V]{R: value}
		close(ch)
	}
	f.waiters = nil
}

// fail sends an error to the attempt's waiters.
func (l *Loader[V]) fail(key string, f *flight[V], err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inflight[key] == f {
		delete(l.inflight, key)
	}
	for _, ch := range f.waiters {
		ch <- either[error, V]{L: err}
		close(ch)
	}
	f.waiters = nil
}

// IsLoaded reports whether the key has a resolved entry.
// In-flight and never-requested keys report false.
func (l *Loader[V]) IsLoaded(ctx context.Context, key string) (bool, error) {
	entry, err := l.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return entry != nil, nil
}

// Unload removes the key's resolved entry, if any.
// An in-flight fetch for the key is unaffected: once it completes it still
// stores its entry unless another Unload runs after it.
func (l *Loader[V]) Unload(ctx context.Context, key string) error {
	return l.store.Delete(ctx, key)
}

// ClearCache removes all resolved entries and all in-flight tracking.
// It does not cancel already-started fetches: callers that joined before the
// clear still receive the outcome, and a fetch that resolves after the clear
// still stores a fresh entry.
func (l *Loader[V]) ClearCache(ctx context.Context) error {
	l.mu.Lock()
	l.inflight = map[string]*flight[V]{}
	l.mu.Unlock()
	return l.store.Clear(ctx)
}

// Count returns the number of resolved entries.
func (l *Loader[V]) Count(ctx context.Context) (int, error) {
	return l.store.Len(ctx)
}
