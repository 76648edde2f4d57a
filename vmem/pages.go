package vmem

import (
	"github.com/cmahlke/vmcore/memutils"
	"github.com/cmahlke/vmcore/platform"
)

// AllocatePages allocates a page-granular region from the provided allocator
// with the process-wide retry policy: a failed attempt raises critical memory
// pressure and is retried once before NullAddress is returned. The hint must
// be aligned to the requested alignment, the size must be a multiple of the
// allocator's allocation granularity, and the alignment must be a power of
// two no smaller than that granularity.
//
// Regions allocated from the default page allocator are registered with the
// current LeakTracker.
func AllocatePages(pageAllocator platform.PageAllocator, hint platform.Address, size, alignment uintptr, access platform.Permission) platform.Address {
	if pageAllocator == nil {
		panic("pageAllocator cannot be nil")
	}
	allocatePageSize := pageAllocator.AllocatePageSize()
	if alignment < allocatePageSize || !memutils.IsPow2(alignment) {
		panic("the alignment must be a power of two no smaller than the allocation granularity")
	}
	if !memutils.IsAligned(uintptr(hint), alignment) {
		panic("the hint must be aligned to the requested alignment")
	}
	if !memutils.IsAligned(size, allocatePageSize) {
		panic("the size must be a multiple of the allocation granularity")
	}

	// The pressure length is the worst-case request: misaligned placement
	// can cost up to alignment-allocatePageSize extra bytes.
	requestSize := size + alignment - allocatePageSize

	var address platform.Address
	allocWithRetry(requestSize, func() bool {
		address = pageAllocator.AllocatePages(hint, size, alignment, access)
		return address != platform.NullAddress
	})

	if address != platform.NullAddress {
		registerRootRegion(pageAllocator, address, size)
	}
	return address
}

// AllocatePage allocates a single read-write page of the allocator's
// allocation granularity and returns its address and size, or NullAddress
// and zero on failure.
func AllocatePage(pageAllocator platform.PageAllocator, hint platform.Address) (platform.Address, uintptr) {
	if pageAllocator == nil {
		panic("pageAllocator cannot be nil")
	}

	pageSize := pageAllocator.AllocatePageSize()
	address := AllocatePages(pageAllocator, hint, pageSize, pageSize, platform.ReadWrite)
	if address == platform.NullAddress {
		return platform.NullAddress, 0
	}

	return address, pageSize
}

// FreePages returns a region allocated by AllocatePages to the provided
// allocator. The size must be the size the region was allocated with,
// rounded up to the allocation granularity if the region was since shrunk by
// ReleasePages. Freeing never retries.
func FreePages(pageAllocator platform.PageAllocator, address platform.Address, size uintptr) bool {
	if pageAllocator == nil {
		panic("pageAllocator cannot be nil")
	}
	if !memutils.IsAligned(size, pageAllocator.AllocatePageSize()) {
		panic("the size must be a multiple of the allocation granularity")
	}

	freed := pageAllocator.FreePages(address, size)
	if freed {
		unregisterRootRegion(pageAllocator, address, size)
	}
	return freed
}

// ReleasePages gives the tail of an allocated region back to the provided
// allocator, shrinking it from size to newSize. The new size must be
// strictly smaller than the current one.
func ReleasePages(pageAllocator platform.PageAllocator, address platform.Address, size, newSize uintptr) bool {
	if pageAllocator == nil {
		panic("pageAllocator cannot be nil")
	}
	if newSize >= size {
		panic("the new size must be strictly smaller than the current size")
	}

	released := pageAllocator.ReleasePages(address, size, newSize)
	if released {
		moveRootRegion(pageAllocator, address, size, newSize)
	}
	return released
}

// SetPermissions changes the access rights of a page-granular region through
// the provided allocator. Permission changes never retry: on failure the
// caller decides whether the memory behind the region is expendable.
func SetPermissions(pageAllocator platform.PageAllocator, address platform.Address, size uintptr, access platform.Permission) bool {
	if pageAllocator == nil {
		panic("pageAllocator cannot be nil")
	}

	return pageAllocator.SetPermissions(address, size, access)
}
