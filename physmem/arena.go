// Package physmem provides the byte-level view of physical memory that frame handles read and
// write through. An Arena stands in for a machine's RAM: it maps a window of physical addresses
// onto a host memory region.
package physmem

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

// Arena is a contiguous window of physical memory starting at a page-aligned base address.
type Arena struct {
	base     uint64
	pageSize int
	data     []byte
	release  func([]byte) error
}

// New reserves size bytes of physical memory starting at base. Both base and size must be
// multiples of pageSize, which must be a power of two.
func New(base uint64, size int, pageSize int) (*Arena, error) {
	if err := memutils.CheckPow2(pageSize, "pageSize"); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, errors.Newf("arena size must be positive, got %d", size)
	}
	if memutils.AlignDown(base, uint64(pageSize)) != base {
		return nil, errors.Newf("arena base %#x is not aligned to %d bytes", base, pageSize)
	}
	if memutils.AlignDown(size, pageSize) != size {
		return nil, errors.Newf("arena size %d is not a multiple of %d bytes", size, pageSize)
	}

	data, release, err := reserve(size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reserve %d bytes of physical memory", size)
	}

	return &Arena{
		base:     base,
		pageSize: pageSize,
		data:     data,
		release:  release,
	}, nil
}

// Base is the first physical address in the arena
func (a *Arena) Base() uint64 { return a.base }

// End is the physical address one past the last byte in the arena
func (a *Arena) End() uint64 { return a.base + uint64(len(a.data)) }

func (a *Arena) PageSize() int { return a.pageSize }

// PageBytes returns the page whose physical page number is ppn. Writes through the returned
// slice are writes to physical memory. The page must lie entirely within the arena.
func (a *Arena) PageBytes(ppn uint64) []byte {
	if a.data == nil {
		panic("attempting to access a page in an arena that has been closed")
	}

	addr := ppn * uint64(a.pageSize)
	if addr < a.base || addr+uint64(a.pageSize) > a.End() {
		panic(fmt.Sprintf("physical page %#x lies outside arena [%#x, %#x)", ppn, a.base, a.End()))
	}

	offset := int(addr - a.base)
	return a.data[offset : offset+a.pageSize : offset+a.pageSize]
}

// Close returns the arena's backing memory to the host. Page slices obtained from the arena
// must not be used afterward.
func (a *Arena) Close() error {
	if a.data == nil {
		return nil
	}

	err := a.release(a.data)
	a.data = nil
	return err
}
