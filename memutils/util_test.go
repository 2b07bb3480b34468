package memutils_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(uint64(4096), "page size"))
	require.NoError(t, memutils.CheckPow2(1, "one"))

	err := memutils.CheckPow2(uint64(4095), "page size")
	require.Error(t, err)
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
	require.Contains(t, err.Error(), "page size is 4095")

	err = memutils.CheckPow2(0, "zero")
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint64(0), memutils.AlignUp(uint64(0), 4096))
	require.Equal(t, uint64(4096), memutils.AlignUp(uint64(1), 4096))
	require.Equal(t, uint64(4096), memutils.AlignUp(uint64(4096), 4096))
	require.Equal(t, uint64(0x80201000), memutils.AlignUp(uint64(0x80200001), 4096))
	require.Equal(t, 16, memutils.AlignUp(9, 8))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, uint64(0), memutils.AlignDown(uint64(4095), 4096))
	require.Equal(t, uint64(4096), memutils.AlignDown(uint64(4096), 4096))
	require.Equal(t, uint64(0x80800000), memutils.AlignDown(uint64(0x80800fff), 4096))
	require.Equal(t, 8, memutils.AlignDown(15, 8))
}
