package vmem

import (
	"testing"

	mock_platform "github.com/cmahlke/vmcore/platform/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	attempts := 0
	success := allocWithRetry(4096, func() bool {
		attempts++
		return true
	})

	require.True(t, success)
	require.Equal(t, 1, attempts)
}

func TestRetrySucceedsAfterOnePressureNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	mockPlatform.EXPECT().OnCriticalMemoryPressure(uintptr(4096)).Return(true).Times(1)

	attempts := 0
	success := allocWithRetry(4096, func() bool {
		attempts++
		return attempts > 1
	})

	require.True(t, success)
	require.Equal(t, 2, attempts)
}

func TestRetryExhaustsAfterTwoAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	// Pressure is only worth signaling while a retry remains, so a full
	// exhaustion produces exactly one notification.
	mockPlatform.EXPECT().OnCriticalMemoryPressure(uintptr(65536)).Return(true).Times(1)

	attempts := 0
	success := allocWithRetry(65536, func() bool {
		attempts++
		return false
	})

	require.False(t, success)
	require.Equal(t, 2, attempts)
}

func TestRetryFallsBackToUnsizedNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlatform := mock_platform.NewMockPlatform(ctrl)
	SetPlatform(mockPlatform)
	defer SetPlatform(nil)

	gomock.InOrder(
		mockPlatform.EXPECT().OnCriticalMemoryPressure(uintptr(8192)).Return(false),
		mockPlatform.EXPECT().OnCriticalMemoryPressureUnsized(),
	)

	success := allocWithRetry(8192, func() bool {
		return false
	})

	require.False(t, success)
}
