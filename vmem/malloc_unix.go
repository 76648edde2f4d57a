//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package vmem

import (
	"github.com/cmahlke/vmcore/memutils"
	"golang.org/x/sys/unix"
	"os"
	"unsafe"
)

// Heap buffers come from anonymous mappings rather than the Go heap: the
// buffers handed out by this package routinely outlive any Go reference to
// them, and mapping them directly keeps the garbage collector out of the
// ownership story.

func osHeapAlloc(size int) []byte {
	base, err := unix.MmapPtr(-1, 0, nil, uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil
	}

	return unsafe.Slice((*byte)(base), size)
}

func osHeapAlignedAlloc(size, alignment int) []byte {
	pageSize := uintptr(os.Getpagesize())
	if uintptr(alignment) <= pageSize {
		// Mappings are always page aligned.
		return osHeapAlloc(size)
	}

	requestSize := uintptr(size) + uintptr(alignment) - pageSize
	base, err := unix.MmapPtr(-1, 0, nil, requestSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil
	}

	baseAddr := uintptr(base)
	alignedAddr := memutils.AlignUp(baseAddr, uintptr(alignment))
	if alignedAddr != baseAddr {
		if err = unix.MunmapPtr(base, alignedAddr-baseAddr); err != nil {
			panic("failed to unmap alignment padding pages: " + err.Error())
		}
	}

	// The tail can only be trimmed back to the first page boundary past the
	// buffer.
	usedEnd := memutils.AlignUp(alignedAddr+uintptr(size), pageSize)
	mappingEnd := baseAddr + requestSize
	if usedEnd < mappingEnd {
		if err = unix.MunmapPtr(unsafe.Pointer(usedEnd), mappingEnd-usedEnd); err != nil {
			panic("failed to unmap alignment padding pages: " + err.Error())
		}
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(alignedAddr)), size)
}

func osHeapFree(buffer []byte) {
	if err := unix.MunmapPtr(unsafe.Pointer(&buffer[0]), uintptr(len(buffer))); err != nil {
		panic("failed to unmap a heap buffer: " + err.Error())
	}
}

func osHeapAlignedFree(buffer []byte) {
	osHeapFree(buffer)
}
