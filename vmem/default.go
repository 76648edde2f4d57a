package vmem

import (
	"github.com/cmahlke/vmcore/platform"
	"golang.org/x/exp/slog"
	"sync"
)

var (
	platformMutex      sync.RWMutex
	registeredPlatform platform.Platform

	defaultAllocatorOnce sync.Once
	defaultAllocator     platform.PageAllocator
)

// SetPlatform registers the Platform that allocation pressure and failures
// are reported through. Passing nil restores the default platform. The
// default page allocator binds to whichever platform is registered the first
// time it is resolved and is not rebound by later SetPlatform calls.
func SetPlatform(p platform.Platform) {
	platformMutex.Lock()
	defer platformMutex.Unlock()

	registeredPlatform = p
}

// CurrentPlatform returns the registered Platform, creating a DefaultPlatform
// on first use if none has been registered.
func CurrentPlatform() platform.Platform {
	platformMutex.RLock()
	p := registeredPlatform
	platformMutex.RUnlock()
	if p != nil {
		return p
	}

	platformMutex.Lock()
	defer platformMutex.Unlock()

	if registeredPlatform == nil {
		registeredPlatform = platform.NewDefaultPlatform(slog.Default(), platform.DefaultPlatformOptions{})
	}
	return registeredPlatform
}

// DefaultPageAllocator returns the process-wide page allocator: the one the
// registered Platform supplies, or an operating-system-backed allocator when
// the platform does not supply one. The result is resolved once and then
// pinned for the life of the process.
func DefaultPageAllocator() platform.PageAllocator {
	defaultAllocatorOnce.Do(func() {
		defaultAllocator = CurrentPlatform().PageAllocator()
		if defaultAllocator == nil {
			defaultAllocator = platform.NewPageAllocator()
		}
	})

	return defaultAllocator
}

// AllocatePageSize returns the allocation granularity of the default page
// allocator.
func AllocatePageSize() uintptr {
	return DefaultPageAllocator().AllocatePageSize()
}

// CommitPageSize returns the commit granularity of the default page
// allocator.
func CommitPageSize() uintptr {
	return DefaultPageAllocator().CommitPageSize()
}

// SetRandomMmapSeed reseeds the default page allocator's address
// randomization.
func SetRandomMmapSeed(seed int64) {
	DefaultPageAllocator().SetRandomMmapSeed(seed)
}

// GetRandomMmapAddr returns a randomized placement hint from the default page
// allocator.
func GetRandomMmapAddr() platform.Address {
	return DefaultPageAllocator().GetRandomMmapAddr()
}
