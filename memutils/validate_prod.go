//go:build !debug_frame_alloc

package memutils

const (
	// DebugEnabled reports whether the module was built with the debug_frame_alloc build tag
	DebugEnabled bool = false
	// ReleasedFramePattern is written across every page that is returned to a frame allocator
	// so that reads through a stale handle are easy to spot
	ReleasedFramePattern uint8 = 0xEF
)

// DebugFillPattern overwrites data with ReleasedFramePattern.
// This method no-ops unless the debug_frame_alloc build tag is present.
func DebugFillPattern(data []byte) {
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_frame_alloc build tag is present
func DebugValidate(validatable Validatable) {
}
