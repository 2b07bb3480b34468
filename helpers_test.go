package framealloc_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc"
	"github.com/vkngwrapper/arsenal/framealloc/physmem"
	"golang.org/x/exp/slog"
)

type AllocatorSetup struct {
	Start   framealloc.PhysPageNum
	End     framealloc.PhysPageNum
	Logger  *slog.Logger
	Options framealloc.CreateOptions
}

func readyAllocator(t *testing.T, setup AllocatorSetup) *framealloc.Allocator {
	t.Helper()

	pages := int(setup.End - setup.Start)
	if pages < 1 {
		pages = 1
	}
	arena, err := physmem.New(uint64(setup.Start.Addr()), pages*framealloc.PageSize, framealloc.PageSize)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, arena.Close())
	})

	allocator, err := framealloc.New(setup.Logger, arena, setup.Options)
	require.NoError(t, err)
	allocator.Init(setup.Start, setup.End)

	return allocator
}

// requireFault runs fn, which must fault through the default PanicFaultHandler, and returns the fault
func requireFault(t *testing.T, target error, fn func()) error {
	t.Helper()

	var fault error
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a fault")

			var ok bool
			fault, ok = r.(error)
			require.True(t, ok, "expected the fault to be an error, got %v", r)
		}()
		fn()
	}()

	require.True(t, errors.Is(fault, target), "expected %v, got %+v", target, fault)
	require.True(t, errors.IsAssertionFailure(fault))
	return fault
}
