package memutils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

func TestDetailedStatisticsCounters(t *testing.T) {
	var stats memutils.DetailedStatistics
	stats.Clear()

	stats.AddAllocation()
	stats.AddAllocation()
	stats.AddDeallocation()
	stats.AddAllocation()
	stats.AddExhaustion()

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			LiveFrames: 2,
		},
		AllocCalls:     4,
		DeallocCalls:   1,
		Exhaustions:    1,
		PeakLiveFrames: 2,
	}, stats)
}

func TestAddDetailedStatistics(t *testing.T) {
	first := memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			TotalFrames:     10,
			LiveFrames:      3,
			RecycledFrames:  2,
			UntouchedFrames: 5,
		},
		AllocCalls:     6,
		DeallocCalls:   3,
		PeakLiveFrames: 4,
	}
	second := memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			TotalFrames:     4,
			LiveFrames:      4,
			RecycledFrames:  0,
			UntouchedFrames: 0,
		},
		AllocCalls:     5,
		Exhaustions:    1,
		PeakLiveFrames: 4,
	}

	first.AddDetailedStatistics(&second)
	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			TotalFrames:     14,
			LiveFrames:      7,
			RecycledFrames:  2,
			UntouchedFrames: 5,
		},
		AllocCalls:     11,
		DeallocCalls:   3,
		Exhaustions:    1,
		PeakLiveFrames: 4,
	}, first)
	require.Equal(t, 7, first.FreeFrames())

	first.Clear()
	require.Equal(t, memutils.DetailedStatistics{}, first)
}
