package memutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var alignUpTestCases = map[string]struct {
	Value     uintptr
	Alignment uintptr
	Expected  uintptr
}{
	"Already Aligned": {
		Value:     8192,
		Alignment: 4096,
		Expected:  8192,
	},
	"Rounds To Next Boundary": {
		Value:     4097,
		Alignment: 4096,
		Expected:  8192,
	},
	"Zero Stays Zero": {
		Value:     0,
		Alignment: 4096,
		Expected:  0,
	},
	"One Byte Over": {
		Value:     1,
		Alignment: 65536,
		Expected:  65536,
	},
	"Alignment One Is Identity": {
		Value:     12345,
		Alignment: 1,
		Expected:  12345,
	},
}

func TestAlignUp(t *testing.T) {
	for testName, testCase := range alignUpTestCases {
		t.Run(testName, func(t *testing.T) {
			require.Equal(t, testCase.Expected, AlignUp(testCase.Value, testCase.Alignment))
		})
	}
}

var alignDownTestCases = map[string]struct {
	Value     uintptr
	Alignment uintptr
	Expected  uintptr
}{
	"Already Aligned": {
		Value:     8192,
		Alignment: 4096,
		Expected:  8192,
	},
	"Rounds To Previous Boundary": {
		Value:     8191,
		Alignment: 4096,
		Expected:  4096,
	},
	"Below First Boundary": {
		Value:     4095,
		Alignment: 4096,
		Expected:  0,
	},
}

func TestAlignDown(t *testing.T) {
	for testName, testCase := range alignDownTestCases {
		t.Run(testName, func(t *testing.T) {
			require.Equal(t, testCase.Expected, AlignDown(testCase.Value, testCase.Alignment))
		})
	}
}

func TestIsAligned(t *testing.T) {
	require.True(t, IsAligned(uintptr(8192), 4096))
	require.True(t, IsAligned(uintptr(0), 4096))
	require.False(t, IsAligned(uintptr(8193), 4096))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(uintptr(1), "alignment"))
	require.NoError(t, CheckPow2(uintptr(65536), "alignment"))

	err := CheckPow2(uintptr(0), "alignment")
	require.ErrorIs(t, err, PowerOfTwoError)

	err = CheckPow2(uintptr(48), "alignment")
	require.ErrorIs(t, err, PowerOfTwoError)
	require.ErrorContains(t, err, "alignment is 48")
}

func TestIsPow2(t *testing.T) {
	require.True(t, IsPow2(uintptr(4096)))
	require.False(t, IsPow2(uintptr(0)))
	require.False(t, IsPow2(uintptr(3)))
}
