package platform

// Platform is the embedding process's view of the memory subsystem: it hands
// out the PageAllocator used for page-granular mappings and receives
// notifications when allocations are about to fail.
type Platform interface {
	// PageAllocator returns the allocator used for page-granular address
	// space operations. It must always return the same allocator.
	PageAllocator() PageAllocator

	// OnCriticalMemoryPressure signals that an allocation of the provided
	// length is about to fail permanently. The platform may attempt to free
	// memory and should return true if a retry might succeed.
	OnCriticalMemoryPressure(length uintptr) bool
	// OnCriticalMemoryPressureUnsized signals allocation pressure when the
	// needed amount is not known.
	OnCriticalMemoryPressureUnsized()

	// FatalProcessOutOfMemory reports an unrecoverable allocation failure
	// and must not return. The location identifies the failing operation.
	FatalProcessOutOfMemory(location, message string)
}
