package objectpool

import (
	"io"
	"sync"

	"github.com/fishy/errbatch"
)

// Make sure *Pool satisfies io.Closer.
var _ io.Closer = (*Pool[any])(nil)

type node[T any] struct {
	item *T
	next *node[T]
}

// Pool is a thread-safe object pool.
//
// It's implemented as a linked list of nodes with the most recently
// pushed handle at the head, so Pop always returns the newest
// still-pooled object.
//
// The pool owns every handle currently stored in it.
// Pop transfers ownership of a handle to the caller,
// and Push transfers it back.
// While an object is popped out, the pool holds no reference to it.
//
// In most cases, there's no need to prefill the pool.
type Pool[T any] struct {
	opts   Options[T]
	locker sync.Locker
	head   *node[T]
	size   int
}

// New creates a new empty pool with the given capacity and default
// options.
//
// The capacity is advisory:
// it's reported back by Capacity but Push never checks against it.
// Use NewWithOptions with SetEnforceCapacity to change that.
//
// The capacity is not validated.
// Zero or negative values are accepted and simply reported back.
func New[T any](capacity int) *Pool[T] {
	return NewWithOptions[T](NewDefaultOptions[T](capacity).Build())
}

// NewWithOptions creates a new empty pool with the given options.
func NewWithOptions[T any](opts Options[T]) *Pool[T] {
	return &Pool[T]{
		opts:   opts,
		locker: new(sync.Mutex),
	}
}

// Capacity returns the declared capacity of the pool.
//
// It's fixed at construction, so no lock is needed.
func (p *Pool[T]) Capacity() int {
	return p.opts.GetCapacity()
}

// Count returns the current number of objects stored in the pool.
func (p *Pool[T]) Count() int {
	p.locker.Lock()
	defer p.locker.Unlock()
	return p.size
}

// Pop removes and returns the most recently pushed object,
// transferring its ownership to the caller.
//
// It doesn't block if the pool is empty.
// Instead, it returns EmptyPoolError and leaves the pool unchanged.
func (p *Pool[T]) Pop() (*T, error) {
	p.locker.Lock()
	defer p.locker.Unlock()
	if p.head == nil {
		return nil, new(EmptyPoolError)
	}
	ret := p.head
	p.head = ret.next
	p.size--
	return ret.item, nil
}

// Push puts an object on top of the pool,
// transferring its ownership from the caller to the pool.
//
// If item is nil, it returns NilItemError without touching the pool.
// The nil check happens before any locking.
//
// If capacity enforcement is turned on and the pool is full,
// it returns FullPoolError and leaves the pool unchanged.
//
// No membership check is performed:
// pushing an object the pool never issued is accepted silently,
// and it's the caller's responsibility to never push the same handle
// twice without popping it in between.
func (p *Pool[T]) Push(item *T) error {
	if item == nil {
		return new(NilItemError)
	}
	p.locker.Lock()
	defer p.locker.Unlock()
	if p.opts.GetEnforceCapacity() && p.size >= p.opts.GetCapacity() {
		return &FullPoolError{Capacity: p.opts.GetCapacity()}
	}
	p.head = &node[T]{
		item: item,
		next: p.head,
	}
	p.size++
	return nil
}

// Close releases every object still owned by the pool.
//
// Each still-pooled object is released exactly once,
// through the Releaser set in options if any,
// or through its own Close function if the pooled type implements
// io.Closer.
// Objects popped out before Close are never touched:
// their lifetime is the borrower's responsibility.
//
// Release errors are batched and compiled into the returned error.
//
// The pool is empty but still usable after Close returns,
// so Close can also be used to drain a pool mid-life.
//
// Releasers run outside the pool lock.
func (p *Pool[T]) Close() error {
	p.locker.Lock()
	head := p.head
	p.head = nil
	p.size = 0
	p.locker.Unlock()

	releaser := p.opts.GetReleaser()
	var ret errbatch.ErrBatch
	for n := head; n != nil; n = n.next {
		if releaser != nil {
			ret.Add(releaser(n.item))
			continue
		}
		if closer, ok := any(n.item).(io.Closer); ok {
			ret.Add(closer.Close())
		}
	}
	return ret.Compile()
}
