package framealloc

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
	"golang.org/x/exp/slog"
)

// frameAllocator is the kernel-wide allocator. It manages no frames until InitFrameAllocator
// binds it to the memory that follows the kernel image.
var frameAllocator = newAllocator(nil, nil, CreateOptions{})

// InitFrameAllocator binds the kernel-wide allocator to the frames between the end of the kernel
// image and the end of physical memory. kernelEnd is rounded up and memoryEnd is rounded down to
// whole frames. It must be called exactly once, before FrameAlloc or FrameDealloc.
//
// logger may be nil, and faultHandler may be nil to panic on faults.
func InitFrameAllocator(logger *slog.Logger, memory PhysicalMemory, faultHandler FaultHandler, kernelEnd, memoryEnd PhysAddr) error {
	if memory == nil {
		return errors.New("a frame allocator requires physical memory to back its frames")
	}

	guard := frameAllocator.state.Acquire()
	if guard.Value().frames.initialized {
		guard.Release()
		frameAllocator.fault(memutils.Fault(memutils.ErrAlreadyInitialized, "the kernel frame allocator was initialized twice"))
	}

	if logger != nil {
		frameAllocator.logger = logger
	}
	if faultHandler != nil {
		frameAllocator.faultHandler = faultHandler
	}
	frameAllocator.memory = memory
	guard.Release()

	frameAllocator.Init(kernelEnd.Ceil(), memoryEnd.Floor())
	return nil
}

// FrameAllocator returns the kernel-wide allocator
func FrameAllocator() *Allocator {
	return frameAllocator
}

// FrameAlloc hands out a zero-filled frame from the kernel-wide allocator. It returns false when
// physical memory is exhausted.
func FrameAlloc() (*Frame, bool) {
	return frameAllocator.Alloc()
}

// FrameDealloc returns a frame obtained from the kernel-wide allocator's AllocPPN
func FrameDealloc(ppn PhysPageNum) {
	frameAllocator.Dealloc(ppn)
}
