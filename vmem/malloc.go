package vmem

import (
	"github.com/cmahlke/vmcore/memutils"
)

// The heap primitives are package variables so allocation failure, which the
// Go heap cannot produce on demand, can be exercised in tests.
var (
	heapAlloc        = osHeapAlloc
	heapAlignedAlloc = osHeapAlignedAlloc
	heapFree         = osHeapFree
	heapAlignedFree  = osHeapAlignedFree
)

// minimumAlignment is the smallest alignment AlignedMalloc accepts. Aligning
// below the width of a pointer is never meaningful.
const minimumAlignment = 4 << (^uintptr(0) >> 63)

// Malloc allocates a zeroed buffer of the provided size, retrying with a
// critical memory pressure notification when the underlying allocation
// fails. If every attempt fails, the registered Platform's fatal
// out-of-memory path is invoked: Malloc never returns a short buffer.
// Malloc(0) returns nil.
//
// The returned slice must be released with Free and must not be resliced
// before it is.
func Malloc(size int) []byte {
	if size < 0 {
		panic("the allocation size cannot be negative")
	}
	if size == 0 {
		return nil
	}

	var buffer []byte
	allocated := allocWithRetry(uintptr(size), func() bool {
		buffer = heapAlloc(size)
		return buffer != nil
	})
	if !allocated {
		fatalProcessOutOfMemory("vmem.Malloc")
	}

	return buffer
}

// Free releases a buffer returned by Malloc. Nil and empty buffers are safe
// no-ops.
func Free(buffer []byte) {
	if len(buffer) == 0 {
		return
	}

	heapFree(buffer)
}

// AlignedMalloc is Malloc with a caller-chosen base address alignment. The
// alignment must be a power of two and at least the width of a pointer;
// anything else panics.
//
// The returned slice must be released with AlignedFree.
func AlignedMalloc(size, alignment int) []byte {
	if size < 0 {
		panic("the allocation size cannot be negative")
	}
	if alignment < int(minimumAlignment) || !memutils.IsPow2(uint(alignment)) {
		panic("the alignment must be a power of two no smaller than the pointer width")
	}
	if size == 0 {
		return nil
	}

	var buffer []byte
	allocated := allocWithRetry(uintptr(size), func() bool {
		buffer = heapAlignedAlloc(size, alignment)
		return buffer != nil
	})
	if !allocated {
		fatalProcessOutOfMemory("vmem.AlignedMalloc")
	}

	return buffer
}

// AlignedFree releases a buffer returned by AlignedMalloc. Nil and empty
// buffers are safe no-ops.
func AlignedFree(buffer []byte) {
	if len(buffer) == 0 {
		return
	}

	heapAlignedFree(buffer)
}
