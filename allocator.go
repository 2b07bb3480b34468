package framealloc

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/arsenal/framealloc/internal/utils"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
	"golang.org/x/exp/slog"
)

const liveHandlesInitialSize = 64

// allocatorState is everything an Allocator mutates. It is only reachable through the
// Allocator's exclusive cell.
type allocatorState struct {
	frames stackFrameAllocator

	// liveHandles maps each frame owned by a Frame handle to that handle's id
	liveHandles  *swiss.Map[PhysPageNum, uint64]
	nextHandleID uint64

	counters memutils.DetailedStatistics
}

func (s *allocatorState) Validate() error {
	err := s.frames.Validate()
	if err != nil {
		return err
	}

	if s.counters.LiveFrames != s.frames.liveCount() {
		return errors.Newf("the allocator counted %d live frames but its range holds %d", s.counters.LiveFrames, s.frames.liveCount())
	}

	if s.liveHandles.Count() > s.frames.liveCount() {
		return errors.Newf("there are %d live frame handles but only %d live frames", s.liveHandles.Count(), s.frames.liveCount())
	}

	s.liveHandles.Iter(func(ppn PhysPageNum, _ uint64) bool {
		if s.frames.isRecycled(ppn) {
			err = errors.Newf("frame %s is owned by a live handle but is also in the recycle pool", ppn)
			return true
		}
		return false
	})
	return err
}

func newAllocatorCell(useMutex bool, onViolation func(err error)) *utils.ExclusiveCell[allocatorState] {
	return utils.NewExclusiveCell(allocatorState{
		frames:      newStackFrameAllocator(),
		liveHandles: swiss.NewMap[PhysPageNum, uint64](liveHandlesInitialSize),
	}, useMutex, onViolation)
}

// Allocator is a physical frame allocator. Frames are handed out from a fixed range; freed frames
// are reused before any untouched frame is handed out.
//
// Every operation runs with exclusive access to the allocator's state. Calling back into the
// allocator while an operation is in flight, or from two goroutines at once, is reported to the
// FaultHandler rather than waited on.
type Allocator struct {
	logger       *slog.Logger
	memory       PhysicalMemory
	faultHandler FaultHandler
	createFlags  CreateFlags

	state *utils.ExclusiveCell[allocatorState]
}

// fault reports an invariant violation. It never returns.
func (a *Allocator) fault(err error) {
	a.faultHandler.Fault(err)
	panic(err)
}

// Init binds the range of frames [start, end) that the allocator manages. It must be called
// exactly once, before any frame is allocated or freed.
func (a *Allocator) Init(start, end PhysPageNum) {
	guard := a.state.Acquire()
	defer guard.Release()
	state := guard.Value()

	if err := state.frames.init(start, end); err != nil {
		a.fault(err)
	}

	a.logger.Info("frame allocator initialized",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("frames", int(end-start)),
		slog.Bool("debugChecks", memutils.DebugEnabled),
	)
}

// Alloc hands out a single zero-filled frame. It returns false when every frame is in use. The
// frame returns to the allocator when the handle's Release method is called.
func (a *Allocator) Alloc() (*Frame, bool) {
	ppn, handleID, data, ok := a.alloc(true)
	if !ok {
		return nil, false
	}

	return newFrame(a, ppn, handleID, data), true
}

// AllocPPN hands out a single frame without a Frame handle. The frame is not zero-filled, and the
// caller is responsible for returning it with Dealloc. It returns false when every frame is in use.
func (a *Allocator) AllocPPN() (PhysPageNum, bool) {
	ppn, _, _, ok := a.alloc(false)
	return ppn, ok
}

func (a *Allocator) alloc(withHandle bool) (PhysPageNum, uint64, []byte, bool) {
	guard := a.state.Acquire()
	defer guard.Release()
	state := guard.Value()

	if !state.frames.initialized {
		a.fault(memutils.Fault(memutils.ErrNotInitialized, "frame allocated before the allocator was initialized"))
	}

	ppn, ok := state.frames.alloc()
	if !ok {
		state.counters.AddExhaustion()
		a.logger.Debug("Allocator::Alloc exhausted", slog.Int("liveFrames", state.counters.LiveFrames))
		return 0, 0, nil, false
	}

	var data []byte
	if withHandle {
		var err error
		data, err = a.pageBytes(ppn)
		if err != nil {
			// Return the frame so the allocator stays consistent if the fault is recovered
			if deallocErr := state.frames.dealloc(ppn); deallocErr != nil {
				a.fault(deallocErr)
			}
			a.fault(err)
		}
		clear(data)
	}
	state.counters.AddAllocation()

	var handleID uint64
	if withHandle {
		if state.liveHandles.Has(ppn) {
			a.fault(errors.AssertionFailedf("frame %s was handed out while a live handle still owns it", ppn))
		}

		state.nextHandleID++
		handleID = state.nextHandleID
		state.liveHandles.Put(ppn, handleID)
	}

	a.logger.Debug("Allocator::Alloc", slog.String("ppn", ppn.String()), slog.Bool("handle", withHandle))
	memutils.DebugValidate(state)
	return ppn, handleID, data, true
}

// pageBytes fetches a frame's contents from physical memory. A window that does not cover the
// frame is reported as an error rather than escaping as a panic.
func (a *Allocator) pageBytes(ppn PhysPageNum) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = memutils.Fault(memutils.ErrNoBackingMemory, "physical memory has no page for frame %s: %v", ppn, r)
		}
	}()

	data = a.memory.PageBytes(uint64(ppn))
	if len(data) != PageSize {
		return nil, memutils.Fault(memutils.ErrNoBackingMemory, "physical memory returned %d bytes for frame %s, expected %d", len(data), ppn, PageSize)
	}
	return data, nil
}

// Dealloc returns a frame obtained from AllocPPN. Returning a frame that was never handed out,
// one that has already been returned, or one that is owned by a live Frame handle is a fault.
func (a *Allocator) Dealloc(ppn PhysPageNum) {
	guard := a.state.Acquire()
	defer guard.Release()
	state := guard.Value()

	if !state.frames.initialized {
		a.fault(memutils.Fault(memutils.ErrNotInitialized, "frame %s freed before the allocator was initialized", ppn))
	}

	if handleID, owned := state.liveHandles.Get(ppn); owned {
		a.fault(memutils.Fault(memutils.ErrOwnedByHandle, "frame %s is owned by live handle %d", ppn, handleID))
	}

	a.dealloc(state, ppn)
}

// releaseFrame returns a frame on behalf of its Frame handle. The page is poisoned only once the
// handle's ownership has been confirmed.
func (a *Allocator) releaseFrame(ppn PhysPageNum, handleID uint64, data []byte) {
	guard := a.state.Acquire()
	defer guard.Release()
	state := guard.Value()

	ownerID, owned := state.liveHandles.Get(ppn)
	if !owned || ownerID != handleID {
		a.fault(memutils.Fault(memutils.ErrNotAllocated, "frame %s is not owned by handle %d", ppn, handleID))
	}
	state.liveHandles.Delete(ppn)
	memutils.DebugFillPattern(data)

	a.dealloc(state, ppn)
}

func (a *Allocator) dealloc(state *allocatorState, ppn PhysPageNum) {
	if err := state.frames.dealloc(ppn); err != nil {
		a.fault(err)
	}
	state.counters.AddDeallocation()

	a.logger.Debug("Allocator::Dealloc", slog.String("ppn", ppn.String()))
	memutils.DebugValidate(state)
}

// Validate performs internal consistency checks on the allocator's state. When the allocator is
// functioning correctly it should not be possible for this method to return an error.
func (a *Allocator) Validate() error {
	guard := a.state.Acquire()
	defer guard.Release()

	return guard.Value().Validate()
}

// Destroy reports every frame that is still owned by a live Frame handle. It returns an error if
// there are any.
func (a *Allocator) Destroy() error {
	guard := a.state.Acquire()
	defer guard.Release()
	state := guard.Value()

	if state.liveHandles.Count() == 0 {
		return nil
	}

	state.liveHandles.Iter(func(ppn PhysPageNum, handleID uint64) bool {
		a.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED FRAME] frame handle was never released",
			slog.String("ppn", ppn.String()),
			slog.Uint64("handle", handleID),
		)
		return false
	})

	return errors.Newf("%d frame handles were not released before the allocator was destroyed", state.liveHandles.Count())
}

func (a *Allocator) logLeakedFrame(ppn PhysPageNum, handleID uint64) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, "[LEAKED FRAME] frame handle was garbage collected without being released",
		slog.String("ppn", ppn.String()),
		slog.Uint64("handle", handleID),
	)
}
