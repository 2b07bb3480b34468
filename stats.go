package framealloc

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
	"golang.org/x/exp/slices"
)

// CalculateStatistics sums the allocator's current frame partition and lifetime counters into stats
func (a *Allocator) CalculateStatistics(stats *memutils.DetailedStatistics) {
	guard := a.state.Acquire()
	defer guard.Release()

	guard.Value().addStatistics(stats)
}

func (s *allocatorState) addStatistics(stats *memutils.DetailedStatistics) {
	var current memutils.DetailedStatistics
	s.frames.addStatistics(&current.Statistics)
	current.AllocCalls = s.counters.AllocCalls
	current.DeallocCalls = s.counters.DeallocCalls
	current.Exhaustions = s.counters.Exhaustions
	current.PeakLiveFrames = s.counters.PeakLiveFrames

	stats.AddDetailedStatistics(&current)
}

// BuildStatsString returns a JSON document describing the allocator's range and statistics. When
// detailedMap is true, the recycled frames and the frames owned by live handles are listed too.
func (a *Allocator) BuildStatsString(detailedMap bool) string {
	guard := a.state.Acquire()
	defer guard.Release()
	state := guard.Value()

	var stats memutils.DetailedStatistics
	state.addStatistics(&stats)

	writer := jwriter.NewWriter()

	obj := writer.Object()
	obj.Name("Flags").String(a.createFlags.String())

	rangeObj := obj.Name("Range").Object()
	rangeObj.Name("Start").String(state.frames.start.String())
	rangeObj.Name("Current").String(state.frames.current.String())
	rangeObj.Name("End").String(state.frames.end.String())
	rangeObj.End()

	statsObj := obj.Name("Statistics").Object()
	printStatistics(&statsObj, &stats)
	statsObj.End()

	if detailedMap {
		recycled := slices.Clone(state.frames.recycled)
		slices.Sort(recycled)

		recycledArr := obj.Name("Recycled").Array()
		for _, ppn := range recycled {
			recycledArr.String(ppn.String())
		}
		recycledArr.End()

		type liveHandle struct {
			ppn      PhysPageNum
			handleID uint64
		}
		handles := make([]liveHandle, 0, state.liveHandles.Count())
		state.liveHandles.Iter(func(ppn PhysPageNum, handleID uint64) bool {
			handles = append(handles, liveHandle{ppn: ppn, handleID: handleID})
			return false
		})
		slices.SortFunc(handles, func(left, right liveHandle) bool {
			return left.ppn < right.ppn
		})

		handlesArr := obj.Name("LiveHandles").Array()
		for _, handle := range handles {
			handleObj := handlesArr.Object()
			handleObj.Name("PPN").String(handle.ppn.String())
			handleObj.Name("Handle").Int(int(handle.handleID))
			handleObj.End()
		}
		handlesArr.End()
	}

	obj.End()

	return string(writer.Bytes())
}

func printStatistics(json *jwriter.ObjectState, stats *memutils.DetailedStatistics) {
	json.Name("TotalFrames").Int(stats.TotalFrames)
	json.Name("LiveFrames").Int(stats.LiveFrames)
	json.Name("RecycledFrames").Int(stats.RecycledFrames)
	json.Name("UntouchedFrames").Int(stats.UntouchedFrames)
	json.Name("AllocCalls").Int(stats.AllocCalls)
	json.Name("DeallocCalls").Int(stats.DeallocCalls)
	json.Name("Exhaustions").Int(stats.Exhaustions)
	json.Name("PeakLiveFrames").Int(stats.PeakLiveFrames)
}
