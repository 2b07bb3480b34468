package memutils

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/pkg/errors"
)

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

var (
	// ErrNotInitialized marks faults raised when a frame allocator is used before its range was bound
	ErrNotInitialized error = errors.New("frame allocator has not been initialized")
	// ErrAlreadyInitialized marks faults raised when a frame allocator's range is bound a second time
	ErrAlreadyInitialized error = errors.New("frame allocator has already been initialized")
	// ErrInvalidRange marks faults raised when a frame range ends before it starts
	ErrInvalidRange error = errors.New("invalid frame range")
	// ErrNotAllocated marks faults raised when a frame that was never handed out is returned
	ErrNotAllocated error = errors.New("frame has not been allocated")
	// ErrDoubleFree marks faults raised when a frame that is already in the recycle pool is returned again
	ErrDoubleFree error = errors.New("frame has already been freed")
	// ErrOwnedByHandle marks faults raised when a frame owned by a live Frame handle is freed by number
	ErrOwnedByHandle error = errors.New("frame is owned by a live handle")
	// ErrDoubleRelease marks faults raised when a Frame handle is released twice
	ErrDoubleRelease error = errors.New("frame handle has already been released")
	// ErrNoBackingMemory marks faults raised when physical memory cannot supply a page for a managed frame
	ErrNoBackingMemory error = errors.New("frame has no backing memory")
	// ErrReentrantAccess marks faults raised when exclusive access is requested while it is already held
	ErrReentrantAccess error = errors.New("exclusive access is already held")
)

// Fault builds an invariant-violation error. The result is an assertion failure, matches sentinel
// under errors.Is, and records the caller's source location.
func Fault(sentinel error, format string, args ...interface{}) error {
	err := cerrors.NewWithDepthf(1, format, args...)
	return cerrors.WithAssertionFailure(cerrors.Mark(err, sentinel))
}
