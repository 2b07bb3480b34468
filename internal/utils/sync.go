package utils

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

// OptionalMutex is an exclusive lock that can either be backed by a real mutex or by a plain
// flag. Both forms refuse to wait: TryLock reports whether the lock was free.
type OptionalMutex struct {
	Mutex    sync.Mutex
	UseMutex bool

	held bool
}

func (m *OptionalMutex) TryLock() bool {
	if m.UseMutex {
		return m.Mutex.TryLock()
	}

	if m.held {
		return false
	}
	m.held = true
	return true
}

func (m *OptionalMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
		return
	}

	m.held = false
}

// ExclusiveCell wraps a value that must only be mutated by one owner at a time. Requesting
// access while a guard is outstanding is not waited on: it is reported as a fatal violation.
type ExclusiveCell[T any] struct {
	lock        OptionalMutex
	value       T
	onViolation func(err error)
}

// NewExclusiveCell takes ownership of value. When useMutex is false, the cell only tracks
// re-entrancy with a flag and must not be shared between goroutines. onViolation is called
// with the fault when the single-owner rule is broken; it is not expected to return, and the
// cell panics if it does. A nil onViolation panics immediately.
func NewExclusiveCell[T any](value T, useMutex bool, onViolation func(err error)) *ExclusiveCell[T] {
	return &ExclusiveCell[T]{
		lock:        OptionalMutex{UseMutex: useMutex},
		value:       value,
		onViolation: onViolation,
	}
}

// Acquire returns a guard granting mutable access to the wrapped value until Release is called.
func (c *ExclusiveCell[T]) Acquire() *ExclusiveGuard[T] {
	if !c.lock.TryLock() {
		c.violation(memutils.Fault(memutils.ErrReentrantAccess, "exclusive access requested while another guard is outstanding"))
	}

	return &ExclusiveGuard[T]{cell: c}
}

func (c *ExclusiveCell[T]) violation(err error) {
	if c.onViolation != nil {
		c.onViolation(err)
	}
	panic(err)
}

// ExclusiveGuard is a scoped view of an ExclusiveCell's value
type ExclusiveGuard[T any] struct {
	cell     *ExclusiveCell[T]
	released bool
}

// Value returns a pointer to the wrapped value. It must not be retained after Release.
func (g *ExclusiveGuard[T]) Value() *T {
	if g.released {
		g.cell.violation(errors.AssertionFailedf("exclusive guard used after release"))
	}
	return &g.cell.value
}

func (g *ExclusiveGuard[T]) Release() {
	if g.released {
		g.cell.violation(errors.AssertionFailedf("exclusive guard released twice"))
	}
	g.released = true
	g.cell.lock.Unlock()
}
