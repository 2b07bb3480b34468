package framealloc

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

const selfTestFrames = 5

// FrameAllocatorTest allocates a handful of frames, releases them, and allocates again, printing
// every frame to out. The second round must be served entirely from the frames released by the
// first.
func FrameAllocatorTest(allocator *Allocator, out io.Writer) error {
	frames := make([]*Frame, 0, selfTestFrames)
	firstRound := make(map[PhysPageNum]struct{}, selfTestFrames)

	for i := 0; i < selfTestFrames; i++ {
		frame, ok := allocator.Alloc()
		if !ok {
			releaseAll(frames)
			return errors.Newf("frame allocator exhausted after %d frames", i)
		}
		_, _ = fmt.Fprintln(out, frame)
		frames = append(frames, frame)
		firstRound[frame.PPN()] = struct{}{}
	}
	releaseAll(frames)
	frames = frames[:0]

	for i := 0; i < selfTestFrames; i++ {
		frame, ok := allocator.Alloc()
		if !ok {
			releaseAll(frames)
			return errors.Newf("frame allocator exhausted after %d reallocated frames", i)
		}
		_, _ = fmt.Fprintln(out, frame)
		frames = append(frames, frame)

		if _, reused := firstRound[frame.PPN()]; !reused {
			releaseAll(frames)
			return errors.Newf("%s was not recycled from the first round", frame)
		}
	}
	releaseAll(frames)

	_, _ = fmt.Fprintln(out, "frame_allocator_test passed!")
	return nil
}

func releaseAll(frames []*Frame) {
	for _, frame := range frames {
		frame.Release()
	}
}
