package vmem

import (
	"context"
	"fmt"
	"github.com/cmahlke/vmcore/memutils"
	"github.com/cmahlke/vmcore/platform"
	"github.com/cmahlke/vmcore/vmem/internal/utils"
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
	"sync"
)

// LeakTracker receives the root regions allocated and freed through the
// default page allocator, so leak-checking tools can treat live regions as
// reachability roots. Implementations must be safe for concurrent use if the
// allocations they observe are concurrent.
type LeakTracker interface {
	RegisterRootRegion(address platform.Address, size uintptr)
	UnregisterRootRegion(address platform.Address, size uintptr)
}

var (
	leakTrackerMutex sync.RWMutex
	leakTracker      LeakTracker
)

// SetLeakTracker registers the tracker that observes default-allocator root
// regions. Passing nil, the initial state, disables the instrumentation.
func SetLeakTracker(tracker LeakTracker) {
	leakTrackerMutex.Lock()
	defer leakTrackerMutex.Unlock()

	leakTracker = tracker
}

// CurrentLeakTracker returns the registered tracker, or nil when leak
// instrumentation is disabled.
func CurrentLeakTracker() LeakTracker {
	leakTrackerMutex.RLock()
	defer leakTrackerMutex.RUnlock()

	return leakTracker
}

// Root regions are only interesting to leak checkers when they come from the
// process-wide allocator; regions from caller-provided allocators are the
// caller's to track.
func registerRootRegion(pageAllocator platform.PageAllocator, address platform.Address, size uintptr) {
	tracker := CurrentLeakTracker()
	if tracker == nil || pageAllocator != DefaultPageAllocator() {
		return
	}

	tracker.RegisterRootRegion(address, size)
}

func unregisterRootRegion(pageAllocator platform.PageAllocator, address platform.Address, size uintptr) {
	tracker := CurrentLeakTracker()
	if tracker == nil || pageAllocator != DefaultPageAllocator() {
		return
	}

	tracker.UnregisterRootRegion(address, size)
}

func moveRootRegion(pageAllocator platform.PageAllocator, address platform.Address, size, newSize uintptr) {
	tracker := CurrentLeakTracker()
	if tracker == nil || pageAllocator != DefaultPageAllocator() {
		return
	}

	tracker.UnregisterRootRegion(address, size)
	tracker.RegisterRootRegion(address, newSize)
}

// RootRegionTracker is a LeakTracker that keeps the live root regions in an
// address-keyed map, for embedders that want leak reporting without an
// external checker.
type RootRegionTracker struct {
	logger *slog.Logger
	mutex  utils.OptionalRWMutex

	regions     *swiss.Map[platform.Address, uintptr]
	regionBytes uintptr
}

var _ LeakTracker = &RootRegionTracker{}

// NewRootRegionTracker creates a new RootRegionTracker
//
// logger - The logger that leaked regions will be written to by CheckEmpty.
// When nil, slog.Default() is used
//
// useMutex - Whether the tracker synchronizes itself. Pass false only when
// all allocations it observes come from a single goroutine
func NewRootRegionTracker(logger *slog.Logger, useMutex bool) *RootRegionTracker {
	if logger == nil {
		logger = slog.Default()
	}

	return &RootRegionTracker{
		logger:  logger,
		mutex:   utils.OptionalRWMutex{UseMutex: useMutex},
		regions: swiss.NewMap[platform.Address, uintptr](8),
	}
}

func (t *RootRegionTracker) RegisterRootRegion(address platform.Address, size uintptr) {
	t.mutex.Lock()
	t.registerRegion(address, size)
	t.mutex.Unlock()

	memutils.DebugValidate(t)
}

func (t *RootRegionTracker) UnregisterRootRegion(address platform.Address, size uintptr) {
	t.mutex.Lock()
	t.unregisterRegion(address)
	t.mutex.Unlock()

	memutils.DebugValidate(t)
}

func (t *RootRegionTracker) registerRegion(address platform.Address, size uintptr) {
	// Re-registering an address replaces the old region.
	if previousSize, exists := t.regions.Get(address); exists {
		t.regionBytes -= previousSize
	}

	t.regions.Put(address, size)
	t.regionBytes += size
}

func (t *RootRegionTracker) unregisterRegion(address platform.Address) {
	registeredSize, exists := t.regions.Get(address)
	if !exists {
		return
	}

	t.regions.Delete(address)
	t.regionBytes -= registeredSize
}

func (t *RootRegionTracker) Validate() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	declaredBytes := t.regionBytes
	actualBytes := uintptr(0)
	t.regions.Iter(func(address platform.Address, size uintptr) bool {
		actualBytes += size
		return false
	})

	if declaredBytes != actualBytes {
		return errors.Errorf("the tracked number of root region bytes (%d) does not match the actual number of bytes (%d)", declaredBytes, actualBytes)
	}

	return nil
}

func (t *RootRegionTracker) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.regions.Count() == 0
}

func (t *RootRegionTracker) RegionCount() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.regions.Count()
}

func (t *RootRegionTracker) RegionBytes() uintptr {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.regionBytes
}

func (t *RootRegionTracker) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	t.regions.Iter(func(address platform.Address, size uintptr) bool {
		stats.AddRegion(size)
		return false
	})
}

func (t *RootRegionTracker) BuildStatsString(writer *jwriter.Writer) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	s := writer.Array()
	defer s.End()

	t.regions.Iter(func(address platform.Address, size uintptr) bool {
		o := s.Object()
		o.Name("Address").String(fmt.Sprintf("0x%x", uintptr(address)))
		o.Name("Size").Int(int(size))
		o.End()
		return false
	})
}

// CheckEmpty logs every region that is still registered and returns an error
// if there were any. It is intended for shutdown paths, where a live root
// region means someone leaked a reservation.
func (t *RootRegionTracker) CheckEmpty() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if t.regions.Count() == 0 {
		return nil
	}

	t.regions.Iter(func(address platform.Address, size uintptr) bool {
		t.logger.LogAttrs(context.Background(), slog.LevelError, "[LEAKED REGION] root region was never freed",
			slog.String("address", fmt.Sprintf("0x%x", uintptr(address))),
			slog.Uint64("size", uint64(size)),
		)
		return false
	})

	return errors.New("some root regions were not freed before the tracker was checked")
}
