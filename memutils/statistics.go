package memutils

const maxUintptr = ^uintptr(0)

type Statistics struct {
	RegionCount int
	RegionBytes uintptr
}

func (s *Statistics) Clear() {
	s.RegionCount = 0
	s.RegionBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.RegionCount += other.RegionCount
	s.RegionBytes += other.RegionBytes
}

type DetailedStatistics struct {
	Statistics
	RegionSizeMin uintptr
	RegionSizeMax uintptr
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.RegionSizeMin = maxUintptr
	s.RegionSizeMax = 0
}

func (s *DetailedStatistics) AddRegion(size uintptr) {
	s.RegionCount++
	s.RegionBytes += size

	if size < s.RegionSizeMin {
		s.RegionSizeMin = size
	}

	if size > s.RegionSizeMax {
		s.RegionSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)

	if other.RegionSizeMin < s.RegionSizeMin {
		s.RegionSizeMin = other.RegionSizeMin
	}

	if other.RegionSizeMax > s.RegionSizeMax {
		s.RegionSizeMax = other.RegionSizeMax
	}
}
