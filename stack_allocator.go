package framealloc

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

const recycledSetInitialSize = 64

// stackFrameAllocator hands out frames from [start, end). Frames below current have been handed
// out at least once; freed frames are kept on a stack and reused before current advances.
type stackFrameAllocator struct {
	initialized bool

	start   PhysPageNum
	current PhysPageNum
	end     PhysPageNum

	recycled    []PhysPageNum
	recycledSet *swiss.Map[PhysPageNum, struct{}]
}

func newStackFrameAllocator() stackFrameAllocator {
	return stackFrameAllocator{
		recycledSet: swiss.NewMap[PhysPageNum, struct{}](recycledSetInitialSize),
	}
}

func (s *stackFrameAllocator) init(start, end PhysPageNum) error {
	if s.initialized {
		return memutils.Fault(memutils.ErrAlreadyInitialized, "frame allocator already manages [%s, %s)", s.start, s.end)
	}
	if start > end {
		return memutils.Fault(memutils.ErrInvalidRange, "frame range start %s is after end %s", start, end)
	}

	s.initialized = true
	s.start = start
	s.current = start
	s.end = end
	return nil
}

// alloc returns false when every frame in the range is in use
func (s *stackFrameAllocator) alloc() (PhysPageNum, bool) {
	if len(s.recycled) > 0 {
		ppn := s.recycled[len(s.recycled)-1]
		s.recycled = s.recycled[:len(s.recycled)-1]
		s.recycledSet.Delete(ppn)
		return ppn, true
	}

	if s.current == s.end {
		return 0, false
	}

	ppn := s.current
	s.current++
	return ppn, true
}

func (s *stackFrameAllocator) dealloc(ppn PhysPageNum) error {
	if ppn >= s.current || ppn < s.start {
		return memutils.Fault(memutils.ErrNotAllocated, "frame %s has not been allocated", ppn)
	}
	if s.recycledSet.Has(ppn) {
		return memutils.Fault(memutils.ErrDoubleFree, "frame %s has already been freed", ppn)
	}

	s.recycled = append(s.recycled, ppn)
	s.recycledSet.Put(ppn, struct{}{})
	return nil
}

func (s *stackFrameAllocator) isRecycled(ppn PhysPageNum) bool {
	return s.recycledSet.Has(ppn)
}

// liveCount is the number of frames that have been handed out and not yet returned
func (s *stackFrameAllocator) liveCount() int {
	return int(s.current-s.start) - len(s.recycled)
}

func (s *stackFrameAllocator) addStatistics(stats *memutils.Statistics) {
	stats.TotalFrames += int(s.end - s.start)
	stats.LiveFrames += s.liveCount()
	stats.RecycledFrames += len(s.recycled)
	stats.UntouchedFrames += int(s.end - s.current)
}

func (s *stackFrameAllocator) Validate() error {
	if !s.initialized {
		if s.start != 0 || s.current != 0 || s.end != 0 || len(s.recycled) != 0 {
			return errors.New("an uninitialized frame allocator has a non-empty range")
		}
		return nil
	}

	if s.start > s.current || s.current > s.end {
		return errors.Newf("frontier %s lies outside the managed range [%s, %s)", s.current, s.start, s.end)
	}

	if len(s.recycled) != s.recycledSet.Count() {
		return errors.Newf("the recycle stack holds %d frames but the recycle set holds %d", len(s.recycled), s.recycledSet.Count())
	}

	seen := make(map[PhysPageNum]struct{}, len(s.recycled))
	for _, ppn := range s.recycled {
		if ppn < s.start || ppn >= s.current {
			return errors.Newf("recycled frame %s lies outside the allocated range [%s, %s)", ppn, s.start, s.current)
		}
		if _, duplicate := seen[ppn]; duplicate {
			return errors.Newf("recycled frame %s appears more than once", ppn)
		}
		if !s.recycledSet.Has(ppn) {
			return errors.Newf("recycled frame %s is missing from the recycle set", ppn)
		}
		seen[ppn] = struct{}{}
	}

	return nil
}
