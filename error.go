package objectpool

import (
	"fmt"
)

// Make sure all error types satisfy error interface.
var (
	_ error = (*EmptyPoolError)(nil)
	_ error = (*NilItemError)(nil)
	_ error = (*FullPoolError)(nil)
)

// EmptyPoolError is the error returned by Pop when the pool holds no
// objects.
type EmptyPoolError struct{}

func (err *EmptyPoolError) Error() string {
	return "objectpool: pool is empty"
}

// IsEmptyPoolError checks whether a given error is EmptyPoolError.
func IsEmptyPoolError(err error) bool {
	_, ok := err.(*EmptyPoolError)
	return ok
}

// NilItemError is the error returned by Push when given a nil handle.
type NilItemError struct{}

func (err *NilItemError) Error() string {
	return "objectpool: cannot push nil into the pool"
}

// IsNilItemError checks whether a given error is NilItemError.
func IsNilItemError(err error) bool {
	_, ok := err.(*NilItemError)
	return ok
}

// FullPoolError is the error returned by Push when capacity enforcement
// is turned on and the pool already holds Capacity objects.
type FullPoolError struct {
	Capacity int
}

func (err *FullPoolError) Error() string {
	return fmt.Sprintf("objectpool: pool is full (capacity %d)", err.Capacity)
}

// IsFullPoolError checks whether a given error is FullPoolError.
func IsFullPoolError(err error) bool {
	_, ok := err.(*FullPoolError)
	return ok
}
