package framealloc

import (
	"fmt"

	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

const (
	// PageSizeBits is the number of address bits covered by the offset within a page
	PageSizeBits = 12
	// PageSize is the size in bytes of a single physical frame
	PageSize = 1 << PageSizeBits
)

// PhysAddr is a byte address in physical memory
type PhysAddr uint64

// PhysPageNum identifies a page-aligned physical frame, in units of whole pages
type PhysPageNum uint64

// Floor returns the frame containing the address
func (a PhysAddr) Floor() PhysPageNum {
	return PhysPageNum(memutils.AlignDown(uint64(a), PageSize) >> PageSizeBits)
}

// Ceil returns the first frame that starts at or after the address
func (a PhysAddr) Ceil() PhysPageNum {
	return PhysPageNum(memutils.AlignUp(uint64(a), PageSize) >> PageSizeBits)
}

// PageOffset returns the offset of the address within its frame
func (a PhysAddr) PageOffset() int {
	return int(uint64(a) & (PageSize - 1))
}

// Aligned reports whether the address is the first byte of a frame
func (a PhysAddr) Aligned() bool {
	return a.PageOffset() == 0
}

func (a PhysAddr) String() string {
	return fmt.Sprintf("PA:%#x", uint64(a))
}

// Addr returns the physical address of the first byte in the frame
func (n PhysPageNum) Addr() PhysAddr {
	return PhysAddr(uint64(n) << PageSizeBits)
}

func (n PhysPageNum) String() string {
	return fmt.Sprintf("PPN:%#x", uint64(n))
}
