package framealloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc"
)

func TestPhysAddrRounding(t *testing.T) {
	require.Equal(t, framealloc.PhysPageNum(0x80200), framealloc.PhysAddr(0x80200000).Floor())
	require.Equal(t, framealloc.PhysPageNum(0x80200), framealloc.PhysAddr(0x80200000).Ceil())
	require.Equal(t, framealloc.PhysPageNum(0x80200), framealloc.PhysAddr(0x80200fff).Floor())
	require.Equal(t, framealloc.PhysPageNum(0x80201), framealloc.PhysAddr(0x80200001).Ceil())
	require.Equal(t, framealloc.PhysPageNum(0), framealloc.PhysAddr(0).Ceil())
}

func TestPhysAddrOffset(t *testing.T) {
	require.Equal(t, 0x123, framealloc.PhysAddr(0x80200123).PageOffset())
	require.False(t, framealloc.PhysAddr(0x80200123).Aligned())
	require.True(t, framealloc.PhysAddr(0x80200000).Aligned())
}

func TestPhysPageNumAddr(t *testing.T) {
	require.Equal(t, framealloc.PhysAddr(0x80800000), framealloc.PhysPageNum(0x80800).Addr())
	require.Equal(t, framealloc.MemoryEnd.Floor().Addr(), framealloc.MemoryEnd)
}

func TestAddressStrings(t *testing.T) {
	require.Equal(t, "PA:0x80200000", framealloc.KernelBase.String())
	require.Equal(t, "PPN:0x80200", framealloc.KernelBase.Floor().String())
}
