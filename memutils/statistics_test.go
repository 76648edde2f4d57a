package memutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailedStatisticsClear(t *testing.T) {
	var stats DetailedStatistics
	stats.AddRegion(4096)
	stats.Clear()

	require.Equal(t, 0, stats.RegionCount)
	require.Equal(t, uintptr(0), stats.RegionBytes)
	require.Equal(t, maxUintptr, stats.RegionSizeMin)
	require.Equal(t, uintptr(0), stats.RegionSizeMax)
}

func TestAddRegion(t *testing.T) {
	var stats DetailedStatistics
	stats.Clear()

	stats.AddRegion(4096)
	stats.AddRegion(65536)
	stats.AddRegion(8192)

	require.Equal(t, 3, stats.RegionCount)
	require.Equal(t, uintptr(77824), stats.RegionBytes)
	require.Equal(t, uintptr(4096), stats.RegionSizeMin)
	require.Equal(t, uintptr(65536), stats.RegionSizeMax)
}

func TestAddStatistics(t *testing.T) {
	first := Statistics{RegionCount: 2, RegionBytes: 8192}
	second := Statistics{RegionCount: 1, RegionBytes: 4096}

	first.AddStatistics(&second)

	require.Equal(t, 3, first.RegionCount)
	require.Equal(t, uintptr(12288), first.RegionBytes)
}

func TestAddDetailedStatistics(t *testing.T) {
	var first DetailedStatistics
	first.Clear()
	first.AddRegion(8192)

	var second DetailedStatistics
	second.Clear()
	second.AddRegion(4096)
	second.AddRegion(131072)

	first.AddDetailedStatistics(&second)

	require.Equal(t, 3, first.RegionCount)
	require.Equal(t, uintptr(143360), first.RegionBytes)
	require.Equal(t, uintptr(4096), first.RegionSizeMin)
	require.Equal(t, uintptr(131072), first.RegionSizeMax)
}

func TestAddDetailedStatisticsEmptyOther(t *testing.T) {
	var first DetailedStatistics
	first.Clear()
	first.AddRegion(8192)

	var second DetailedStatistics
	second.Clear()

	first.AddDetailedStatistics(&second)

	require.Equal(t, 1, first.RegionCount)
	require.Equal(t, uintptr(8192), first.RegionSizeMin)
	require.Equal(t, uintptr(8192), first.RegionSizeMax)
}
