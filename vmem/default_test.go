package vmem

import (
	"testing"

	"github.com/cmahlke/vmcore/memutils"
	mock_platform "github.com/cmahlke/vmcore/platform/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCurrentPlatformCreatesDefault(t *testing.T) {
	SetPlatform(nil)

	first := CurrentPlatform()
	require.NotNil(t, first)
	require.Same(t, first, CurrentPlatform())
}

func TestSetPlatformOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)

	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	require.Same(t, mockPlatform, CurrentPlatform())
}

func TestDefaultPageAllocatorIsPinned(t *testing.T) {
	first := DefaultPageAllocator()
	require.NotNil(t, first)
	require.Equal(t, first, DefaultPageAllocator())

	// Registering a platform after the first resolution must not rebind the
	// default allocator; the mock's PageAllocator method is never called.
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	require.Equal(t, first, DefaultPageAllocator())
}

func TestDefaultAllocatorPassthroughs(t *testing.T) {
	allocatePageSize := AllocatePageSize()
	commitPageSize := CommitPageSize()

	require.True(t, memutils.IsPow2(allocatePageSize))
	require.True(t, memutils.IsPow2(commitPageSize))
	require.GreaterOrEqual(t, allocatePageSize, commitPageSize)

	SetRandomMmapSeed(42)
	first := GetRandomMmapAddr()
	second := GetRandomMmapAddr()

	SetRandomMmapSeed(42)
	require.Equal(t, first, GetRandomMmapAddr())
	require.Equal(t, second, GetRandomMmapAddr())

	require.True(t, memutils.IsAligned(uintptr(first), allocatePageSize))
}
