package registry

import (
	"io"
	"sync"

	"github.com/fishy/errbatch"
	"github.com/fishy/rowlock"

	"github.com/fishy/objectpool"
)

// Make sure *Registry satisfies io.Closer.
var _ io.Closer = (*Registry[any])(nil)

// Factory defines a type of function used to create the pool for a
// name on its first use.
type Factory[T any] func(name string) *objectpool.Pool[T]

// Registry is a thread-safe set of named object pools.
type Registry[T any] struct {
	factory Factory[T]
	locks   *rowlock.RowLock
	pools   sync.Map
}

// New creates a new Registry with the given Factory.
//
// The factory must not be nil.
//
// The factory should not block.
// It blocks other lookups of the same name.
func New[T any](factory Factory[T]) *Registry[T] {
	return &Registry[T]{
		factory: factory,
		locks:   rowlock.NewRowLock(rowlock.MutexNewLocker),
	}
}

// Pool returns the pool for the given name.
//
// If this is a new name,
// the pool will be created by the Factory specified in New.
// Later lookups of the same name return the same pool.
func (r *Registry[T]) Pool(name string) *objectpool.Pool[T] {
	if p, ok := r.pools.Load(name); ok {
		return p.(*objectpool.Pool[T])
	}

	r.locks.Lock(name)
	defer r.locks.Unlock(name)
	// Another goroutine could have created the pool while we were
	// waiting for the row lock.
	if p, ok := r.pools.Load(name); ok {
		return p.(*objectpool.Pool[T])
	}
	p := r.factory(name)
	r.pools.Store(name, p)
	return p
}

// Names returns the names of all pools currently in the registry.
//
// The order of the names is undefined.
func (r *Registry[T]) Names() []string {
	var names []string
	r.pools.Range(func(key, value any) bool {
		names = append(names, key.(string))
		return true
	})
	return names
}

// Close closes every pool in the registry and empties the registry.
//
// Errors from individual pools are batched and compiled into the
// returned error.
//
// The registry is still usable after Close returns.
func (r *Registry[T]) Close() error {
	var ret errbatch.ErrBatch
	r.pools.Range(func(key, value any) bool {
		ret.Add(value.(*objectpool.Pool[T]).Close())
		r.pools.Delete(key)
		return true
	})
	return ret.Compile()
}
