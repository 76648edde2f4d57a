package vmem

import (
	"testing"
	"unsafe"

	mock_platform "github.com/cmahlke/vmcore/platform/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMallocRoundTrip(t *testing.T) {
	buffer := Malloc(100)
	require.Len(t, buffer, 100)

	// The buffer is writable and zeroed.
	for _, b := range buffer {
		require.Equal(t, byte(0), b)
	}
	buffer[0] = 0xab
	buffer[99] = 0xcd

	Free(buffer)
}

func TestMallocZeroAndNil(t *testing.T) {
	require.Nil(t, Malloc(0))

	Free(nil)
	Free([]byte{})

	require.Panics(t, func() {
		Malloc(-1)
	})
}

func TestAlignedMalloc(t *testing.T) {
	buffer := AlignedMalloc(100, 65536)
	require.Len(t, buffer, 100)
	require.True(t, uintptr(unsafe.Pointer(&buffer[0]))%65536 == 0)

	buffer[0] = 0xab
	AlignedFree(buffer)
}

func TestAlignedMallocSmallAlignment(t *testing.T) {
	alignment := int(unsafe.Sizeof(uintptr(0)))

	buffer := AlignedMalloc(4096, alignment)
	require.Len(t, buffer, 4096)
	require.True(t, uintptr(unsafe.Pointer(&buffer[0]))%uintptr(alignment) == 0)

	AlignedFree(buffer)
}

func TestAlignedMallocPreconditions(t *testing.T) {
	require.Panics(t, func() {
		// Not a power of two.
		AlignedMalloc(100, 48)
	})
	require.Panics(t, func() {
		// Below the pointer width.
		AlignedMalloc(100, 2)
	})
	require.Panics(t, func() {
		AlignedMalloc(-1, 16)
	})

	require.Nil(t, AlignedMalloc(0, 16))
	AlignedFree(nil)
}

func TestMallocExhaustionIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	heapAlloc = func(size int) []byte {
		return nil
	}
	defer func() {
		heapAlloc = osHeapAlloc
	}()

	mockPlatform.EXPECT().OnCriticalMemoryPressure(uintptr(100)).Return(true)
	mockPlatform.EXPECT().FatalProcessOutOfMemory("vmem.Malloc", gomock.Any())

	// A conforming Platform never returns from its fatal path; the facade
	// panics when one does rather than handing back a nil buffer.
	require.PanicsWithValue(t,
		"the registered Platform returned from FatalProcessOutOfMemory",
		func() {
			Malloc(100)
		})
}

func TestAlignedMallocExhaustionIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	heapAlignedAlloc = func(size, alignment int) []byte {
		return nil
	}
	defer func() {
		heapAlignedAlloc = osHeapAlignedAlloc
	}()

	mockPlatform.EXPECT().OnCriticalMemoryPressure(uintptr(4096)).Return(true)
	mockPlatform.EXPECT().FatalProcessOutOfMemory("vmem.AlignedMalloc", gomock.Any())

	require.PanicsWithValue(t,
		"the registered Platform returned from FatalProcessOutOfMemory",
		func() {
			AlignedMalloc(4096, 65536)
		})
}

func TestMallocRecoversAfterPressure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	failures := 1
	heapAlloc = func(size int) []byte {
		if failures > 0 {
			failures--
			return nil
		}
		return osHeapAlloc(size)
	}
	defer func() {
		heapAlloc = osHeapAlloc
	}()

	mockPlatform.EXPECT().OnCriticalMemoryPressure(uintptr(256)).Return(true)

	buffer := Malloc(256)
	require.Len(t, buffer, 256)
	Free(buffer)
}
