//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package platform

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestSetPermissionsCommitsReservedPages(t *testing.T) {
	allocator := NewPageAllocator()
	pageSize := allocator.AllocatePageSize()

	// A fresh reservation carries no access rights; granting ReadWrite makes
	// the pages usable.
	address := allocator.AllocatePages(NullAddress, 2*pageSize, pageSize, NoAccess)
	require.NotEqual(t, NullAddress, address)

	require.True(t, allocator.SetPermissions(address, pageSize, ReadWrite))

	region := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), pageSize)
	region[0] = 0xab
	region[pageSize-1] = 0xcd
	require.Equal(t, byte(0xab), region[0])

	require.True(t, allocator.SetPermissions(address, pageSize, NoAccess))
	require.True(t, allocator.FreePages(address, 2*pageSize))
}

func TestReleasePagesKeepsHeadMapped(t *testing.T) {
	allocator := NewPageAllocator()
	pageSize := allocator.AllocatePageSize()

	address := allocator.AllocatePages(NullAddress, 4*pageSize, pageSize, ReadWrite)
	require.NotEqual(t, NullAddress, address)

	head := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), 2*pageSize)
	head[0] = 0x11

	require.True(t, allocator.ReleasePages(address, 4*pageSize, 2*pageSize))

	// The head stays intact and writable after the tail is gone.
	require.Equal(t, byte(0x11), head[0])
	head[2*pageSize-1] = 0x22

	require.True(t, allocator.FreePages(address, 2*pageSize))
}
