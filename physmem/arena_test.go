package physmem_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
	"github.com/vkngwrapper/arsenal/framealloc/physmem"
)

func TestArenaPageBytes(t *testing.T) {
	arena, err := physmem.New(0x80000, 4*4096, 4096)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, arena.Close())
	}()

	require.Equal(t, uint64(0x80000), arena.Base())
	require.Equal(t, uint64(0x84000), arena.End())

	first := arena.PageBytes(0x80)
	last := arena.PageBytes(0x83)
	require.Len(t, first, 4096)
	require.Len(t, last, 4096)

	first[0] = 0xAB
	last[4095] = 0xCD
	require.Equal(t, uint8(0xAB), arena.PageBytes(0x80)[0])
	require.Equal(t, uint8(0xCD), arena.PageBytes(0x83)[4095])

	// Pages do not overlap and cannot be grown into a neighbor
	require.Equal(t, uint8(0), arena.PageBytes(0x81)[0])
	require.Equal(t, 4096, cap(first))
}

func TestArenaPageOutOfRange(t *testing.T) {
	arena, err := physmem.New(0x80000, 2*4096, 4096)
	require.NoError(t, err)
	defer arena.Close()

	require.Panics(t, func() { arena.PageBytes(0x7F) })
	require.Panics(t, func() { arena.PageBytes(0x82) })
}

func TestArenaClosed(t *testing.T) {
	arena, err := physmem.New(0, 4096, 4096)
	require.NoError(t, err)

	require.NoError(t, arena.Close())
	require.NoError(t, arena.Close())
	require.Panics(t, func() { arena.PageBytes(0) })
}

func TestArenaInvalidParameters(t *testing.T) {
	_, err := physmem.New(0, 4096, 3000)
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))

	_, err = physmem.New(0x80001, 4096, 4096)
	require.ErrorContains(t, err, "not aligned")

	_, err = physmem.New(0, 4000, 4096)
	require.ErrorContains(t, err, "not a multiple")

	_, err = physmem.New(0, 0, 4096)
	require.ErrorContains(t, err, "must be positive")
}
