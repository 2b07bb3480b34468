package memutils

// Statistics is a point-in-time partition of the frames managed by an allocator. For an initialized
// allocator, TotalFrames == LiveFrames + RecycledFrames + UntouchedFrames.
type Statistics struct {
	// TotalFrames is the number of frames in the managed range
	TotalFrames int
	// LiveFrames is the number of frames currently handed out
	LiveFrames int
	// RecycledFrames is the number of frames that were freed and are waiting to be reused
	RecycledFrames int
	// UntouchedFrames is the number of frames beyond the allocation frontier
	UntouchedFrames int
}

func (s *Statistics) Clear() {
	s.TotalFrames = 0
	s.LiveFrames = 0
	s.RecycledFrames = 0
	s.UntouchedFrames = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.TotalFrames += other.TotalFrames
	s.LiveFrames += other.LiveFrames
	s.RecycledFrames += other.RecycledFrames
	s.UntouchedFrames += other.UntouchedFrames
}

// FreeFrames is the number of frames an allocator could still hand out
func (s *Statistics) FreeFrames() int {
	return s.RecycledFrames + s.UntouchedFrames
}

// DetailedStatistics extends Statistics with counters accumulated over the allocator's lifetime
type DetailedStatistics struct {
	Statistics
	AllocCalls     int
	DeallocCalls   int
	Exhaustions    int
	PeakLiveFrames int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.AllocCalls = 0
	s.DeallocCalls = 0
	s.Exhaustions = 0
	s.PeakLiveFrames = 0
}

// AddAllocation records a successful allocation and updates the live-frame high water mark
func (s *DetailedStatistics) AddAllocation() {
	s.AllocCalls++
	s.LiveFrames++

	if s.LiveFrames > s.PeakLiveFrames {
		s.PeakLiveFrames = s.LiveFrames
	}
}

// AddExhaustion records an allocation attempt that found no free frame
func (s *DetailedStatistics) AddExhaustion() {
	s.AllocCalls++
	s.Exhaustions++
}

// AddDeallocation records a frame returning to the recycle pool
func (s *DetailedStatistics) AddDeallocation() {
	s.DeallocCalls++
	s.LiveFrames--
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.AllocCalls += other.AllocCalls
	s.DeallocCalls += other.DeallocCalls
	s.Exhaustions += other.Exhaustions

	if other.PeakLiveFrames > s.PeakLiveFrames {
		s.PeakLiveFrames = other.PeakLiveFrames
	}
}
