package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc"
)

// runCommand executes framectl with args, capturing the machine console
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	stdout = &out
	exit = func(code int) {
		t.Fatalf("machine shut down with code %d", code)
	}
	t.Cleanup(func() {
		verbose = false
		kernelEnd = uint64(framealloc.KernelBase + 0x20_0000)
		memoryEnd = uint64(framealloc.MemoryEnd)
		statsFrames, statsRelease, statsDetailed = 16, 4, false
	})

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSelftestCommand(t *testing.T) {
	out, err := runCommand(t, "selftest")
	require.NoError(t, err)

	require.Contains(t, out, "frame allocator initialized")
	require.Contains(t, out, "Frame:PPN=0x80400")
	require.True(t, strings.HasSuffix(out, "frame_allocator_test passed!\n"), out)
}

func TestStatsCommand(t *testing.T) {
	out, err := runCommand(t, "stats", "--frames", "6", "--release", "2", "--memory-end", "0x80410000", "--detailed")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.JSONEq(t, `{
		"Flags": "None",
		"Range": {"Start": "PPN:0x80400", "Current": "PPN:0x80406", "End": "PPN:0x80410"},
		"Statistics": {
			"TotalFrames": 16,
			"LiveFrames": 4,
			"RecycledFrames": 2,
			"UntouchedFrames": 10,
			"AllocCalls": 6,
			"DeallocCalls": 2,
			"Exhaustions": 0,
			"PeakLiveFrames": 6
		},
		"Recycled": ["PPN:0x80400", "PPN:0x80401"],
		"LiveHandles": [
			{"PPN": "PPN:0x80402", "Handle": 3},
			{"PPN": "PPN:0x80403", "Handle": 4},
			{"PPN": "PPN:0x80404", "Handle": 5},
			{"PPN": "PPN:0x80405", "Handle": 6}
		]
	}`, lines[len(lines)-1])
}

func TestStatsCommandRejectsOverRelease(t *testing.T) {
	_, err := runCommand(t, "stats", "--frames", "2", "--release", "3")
	require.EqualError(t, err, "cannot release 3 of 2 frames")
}

func TestExhaustCommand(t *testing.T) {
	out, err := runCommand(t, "exhaust", "--kernel-end", "0x80400800", "--memory-end", "0x80420000")
	require.NoError(t, err)

	require.Contains(t, out, "allocated 31 of 31 frames before exhaustion")
}

func TestKernelEndOutsideMemory(t *testing.T) {
	_, err := runCommand(t, "exhaust", "--kernel-end", "0x80900000")
	require.ErrorContains(t, err, "must lie between")
}
