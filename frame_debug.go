//go:build debug_frame_alloc

package framealloc

import "runtime"

// trackFrame arranges for a Frame that is garbage collected while it still owns its frame to be
// reported as leaked. The frame itself cannot be reclaimed: nothing can prove its contents are
// no longer referenced.
func trackFrame(f *Frame) {
	runtime.SetFinalizer(f, func(leaked *Frame) {
		if leaked.state == frameLive {
			leaked.allocator.logLeakedFrame(leaked.ppn, leaked.handleID)
		}
	})
}

func untrackFrame(f *Frame) {
	runtime.SetFinalizer(f, nil)
}
