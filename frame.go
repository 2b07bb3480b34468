package framealloc

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

type frameState byte

const (
	frameLive frameState = iota
	frameMoved
	frameReleased
)

var frameStateMapping = map[frameState]string{
	frameLive:     "frameLive",
	frameMoved:    "frameMoved",
	frameReleased: "frameReleased",
}

func (s frameState) String() string {
	return frameStateMapping[s]
}

// Frame is the sole owner of one allocated physical frame. The frame is returned to its allocator
// exactly once, by Release. A Frame must not be copied; use Move to hand ownership to another
// holder.
//
// A Frame is not safe for concurrent use.
type Frame struct {
	ppn       PhysPageNum
	handleID  uint64
	allocator *Allocator
	data      []byte
	state     frameState
}

// newFrame wraps a frame that the allocator has already zero-filled and registered to handleID
func newFrame(allocator *Allocator, ppn PhysPageNum, handleID uint64, data []byte) *Frame {
	f := &Frame{
		ppn:       ppn,
		handleID:  handleID,
		allocator: allocator,
		data:      data,
		state:     frameLive,
	}
	trackFrame(f)
	return f
}

// PPN returns the physical page number of the owned frame
func (f *Frame) PPN() PhysPageNum { return f.ppn }

// Addr returns the physical address of the first byte of the owned frame
func (f *Frame) Addr() PhysAddr { return f.ppn.Addr() }

// Bytes returns the contents of the frame. Writes through the slice are writes to physical
// memory. The slice must not be used after the Frame is released or moved.
func (f *Frame) Bytes() []byte {
	f.checkLive("access")
	return f.data
}

// Move transfers ownership of the frame to a new Frame. The receiver becomes inert: releasing it
// does nothing.
func (f *Frame) Move() *Frame {
	f.checkLive("move")

	moved := &Frame{
		ppn:       f.ppn,
		handleID:  f.handleID,
		allocator: f.allocator,
		data:      f.data,
		state:     frameLive,
	}
	f.state = frameMoved
	f.data = nil
	untrackFrame(f)
	trackFrame(moved)

	return moved
}

// Release returns the frame to its allocator. Releasing a Frame that has been moved from does
// nothing; releasing a Frame twice is a fault.
func (f *Frame) Release() {
	switch f.state {
	case frameMoved:
		return
	case frameReleased:
		f.allocator.fault(memutils.Fault(memutils.ErrDoubleRelease, "%s was released twice", f))
	}

	data := f.data
	f.state = frameReleased
	f.data = nil
	untrackFrame(f)

	f.allocator.releaseFrame(f.ppn, f.handleID, data)
}

// IsLive reports whether the Frame still owns its frame
func (f *Frame) IsLive() bool { return f.state == frameLive }

func (f *Frame) String() string {
	return fmt.Sprintf("Frame:PPN=%#x", uint64(f.ppn))
}

func (f *Frame) checkLive(operation string) {
	if f.state == frameLive {
		return
	}

	if f.state == frameReleased {
		f.allocator.fault(memutils.Fault(memutils.ErrDoubleRelease, "attempted to %s %s after it was %s", operation, f, f.state))
	}
	f.allocator.fault(errors.AssertionFailedf("attempted to %s %s after it was %s", operation, f, f.state))
}
