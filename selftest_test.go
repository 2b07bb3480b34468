package framealloc_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc"
)

func TestFrameAllocatorTest(t *testing.T) {
	allocator := readyAllocator(t, AllocatorSetup{Start: 0x80220, End: 0x80230})

	var out bytes.Buffer
	require.NoError(t, framealloc.FrameAllocatorTest(allocator, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 11)
	for _, line := range lines[:10] {
		require.Regexp(t, `^Frame:PPN=0x8022[0-4]$`, line)
	}
	require.Equal(t, "frame_allocator_test passed!", lines[10])
	require.NoError(t, allocator.Destroy())
}

func TestFrameAllocatorTestExhausted(t *testing.T) {
	allocator := readyAllocator(t, AllocatorSetup{Start: 0x80220, End: 0x80223})

	var out bytes.Buffer
	err := framealloc.FrameAllocatorTest(allocator, &out)
	require.EqualError(t, err, "frame allocator exhausted after 3 frames")

	// Frames handed out before the failure were returned
	require.NoError(t, allocator.Destroy())
}
