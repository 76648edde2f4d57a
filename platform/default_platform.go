package platform

import (
	"context"
	"golang.org/x/exp/slog"
	"os"
	"runtime/debug"
)

// DefaultPlatformOptions contains optional settings when creating a DefaultPlatform
type DefaultPlatformOptions struct {
	// PageAllocator is the allocator the platform will hand out. When nil, an
	// allocator backed by the host operating system is created
	PageAllocator PageAllocator

	// DisablePressureGC prevents the platform from forcing a garbage collection
	// cycle when it is notified of critical memory pressure. The forced
	// collection returns unused Go heap to the operating system, which gives
	// failed page allocations a chance to succeed on retry
	DisablePressureGC bool
}

// DefaultPlatform is a Platform with reasonable behavior for code that lives in
// an ordinary host process: critical memory pressure forces a garbage collection
// cycle, and fatal out-of-memory failures log and terminate the process.
type DefaultPlatform struct {
	logger            *slog.Logger
	pageAllocator     PageAllocator
	disablePressureGC bool
}

var _ Platform = &DefaultPlatform{}

// NewDefaultPlatform creates a new DefaultPlatform
//
// logger - The logger that pressure and out-of-memory events will be written
// to. When nil, slog.Default() is used
//
// options - Optional parameters: it is valid to leave all the fields blank
func NewDefaultPlatform(logger *slog.Logger, options DefaultPlatformOptions) *DefaultPlatform {
	if logger == nil {
		logger = slog.Default()
	}

	pageAllocator := options.PageAllocator
	if pageAllocator == nil {
		pageAllocator = NewPageAllocator()
	}

	return &DefaultPlatform{
		logger:            logger,
		pageAllocator:     pageAllocator,
		disablePressureGC: options.DisablePressureGC,
	}
}

func (p *DefaultPlatform) PageAllocator() PageAllocator {
	return p.pageAllocator
}

func (p *DefaultPlatform) OnCriticalMemoryPressure(length uintptr) bool {
	p.logger.LogAttrs(context.Background(), slog.LevelWarn, "critical memory pressure",
		slog.Uint64("length", uint64(length)))

	return p.relievePressure()
}

func (p *DefaultPlatform) OnCriticalMemoryPressureUnsized() {
	p.logger.LogAttrs(context.Background(), slog.LevelWarn, "critical memory pressure")

	p.relievePressure()
}

func (p *DefaultPlatform) relievePressure() bool {
	if p.disablePressureGC {
		return false
	}

	// FreeOSMemory forces a collection and immediately returns as much of the
	// freed heap to the operating system as possible.
	debug.FreeOSMemory()
	return true
}

func (p *DefaultPlatform) FatalProcessOutOfMemory(location, message string) {
	p.logger.LogAttrs(context.Background(), slog.LevelError, "fatal process out of memory",
		slog.String("location", location),
		slog.String("message", message))

	os.Exit(2)
}
