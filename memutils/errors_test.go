package memutils_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

func TestFaultIsMarkedAssertionFailure(t *testing.T) {
	err := memutils.Fault(memutils.ErrDoubleFree, "frame %s has already been freed", "PPN:0x30")

	require.True(t, errors.IsAssertionFailure(err))
	require.True(t, errors.Is(err, memutils.ErrDoubleFree))
	require.False(t, errors.Is(err, memutils.ErrNotAllocated))
	require.Equal(t, "frame PPN:0x30 has already been freed", err.Error())
}

func TestFaultRecordsCallerSource(t *testing.T) {
	err := memutils.Fault(memutils.ErrInvalidRange, "frame range start %d is after end %d", 4, 2)

	file, line, _, ok := errors.GetOneLineSource(err)
	require.True(t, ok)
	require.True(t, strings.HasSuffix(file, "errors_test.go"), file)
	require.Greater(t, line, 0)
}
