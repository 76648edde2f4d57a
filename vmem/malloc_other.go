//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd

package vmem

import (
	"github.com/cmahlke/vmcore/memutils"
	"unsafe"
)

// Hosts without mmap hand out ordinary Go allocations. The free paths become
// no-ops; the garbage collector reclaims a buffer once the last reference to
// it drops.

func osHeapAlloc(size int) []byte {
	return make([]byte, size)
}

func osHeapAlignedAlloc(size, alignment int) []byte {
	buffer := make([]byte, size+alignment)
	baseAddr := uintptr(unsafe.Pointer(&buffer[0]))
	offset := int(memutils.AlignUp(baseAddr, uintptr(alignment)) - baseAddr)

	return buffer[offset : offset+size : offset+size]
}

func osHeapFree(buffer []byte) {
}

func osHeapAlignedFree(buffer []byte) {
}
