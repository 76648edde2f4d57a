//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package platform

import (
	"github.com/cmahlke/vmcore/memutils"
	"golang.org/x/sys/unix"
	"os"
	"unsafe"
)

type osPageAllocator struct {
	addressHints
	pageSize uintptr
}

var _ PageAllocator = &osPageAllocator{}

// NewPageAllocator returns a PageAllocator backed by anonymous private
// mappings from the host kernel.
func NewPageAllocator() PageAllocator {
	a := &osPageAllocator{
		pageSize: uintptr(os.Getpagesize()),
	}
	a.Init(a.pageSize)

	return a
}

func (a *osPageAllocator) AllocatePageSize() uintptr {
	return a.pageSize
}

func (a *osPageAllocator) CommitPageSize() uintptr {
	return a.pageSize
}

func protFlags(access Permission) int {
	switch access {
	case NoAccess:
		return unix.PROT_NONE
	case Read:
		return unix.PROT_READ
	case ReadWrite:
		return unix.PROT_READ | unix.PROT_WRITE
	case ReadExecute:
		return unix.PROT_READ | unix.PROT_EXEC
	case ReadWriteExecute:
		return unix.PROT_READ | unix.PROT_WRITE | unix.PROT_EXEC
	}

	panic("unknown memory permission")
}

func (a *osPageAllocator) AllocatePages(hint Address, size, alignment uintptr, access Permission) Address {
	memutils.DebugCheckPow2(alignment, "alignment")

	// Over-map by the worst-case misalignment, then unmap the padding around
	// the aligned region. The kernel only guarantees page alignment.
	requestSize := size
	if alignment > a.pageSize {
		requestSize += alignment - a.pageSize
	}

	alignedHint := memutils.AlignDown(uintptr(hint), alignment)
	base, err := unix.MmapPtr(-1, 0, unsafe.Pointer(alignedHint), requestSize,
		protFlags(access), unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return NullAddress
	}

	baseAddr := uintptr(base)
	alignedAddr := memutils.AlignUp(baseAddr, alignment)
	if alignedAddr != baseAddr {
		prefixSize := alignedAddr - baseAddr
		if err = unix.MunmapPtr(base, prefixSize); err != nil {
			panic("failed to unmap alignment padding pages: " + err.Error())
		}
		requestSize -= prefixSize
	}
	if requestSize != size {
		suffixSize := requestSize - size
		if err = unix.MunmapPtr(unsafe.Pointer(alignedAddr+size), suffixSize); err != nil {
			panic("failed to unmap alignment padding pages: " + err.Error())
		}
	}

	return Address(alignedAddr)
}

func (a *osPageAllocator) FreePages(address Address, size uintptr) bool {
	return unix.MunmapPtr(unsafe.Pointer(uintptr(address)), size) == nil
}

func (a *osPageAllocator) ReleasePages(address Address, size, newSize uintptr) bool {
	return unix.MunmapPtr(unsafe.Pointer(uintptr(address)+newSize), size-newSize) == nil
}

func (a *osPageAllocator) SetPermissions(address Address, size uintptr, access Permission) bool {
	region := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), size)
	if unix.Mprotect(region, protFlags(access)) != nil {
		return false
	}

	if access == NoAccess {
		// Advisory: the pages cannot be touched until their permissions
		// change again, so the kernel is free to reclaim them.
		_ = unix.Madvise(region, unix.MADV_DONTNEED)
	}

	return true
}
