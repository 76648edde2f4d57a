//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !windows

package platform

import (
	"github.com/cmahlke/vmcore/memutils"
	"os"
	"sync"
	"unsafe"
)

// Hosts without usable virtual memory syscalls fall back to carving
// page-aligned regions out of ordinary Go allocations. Allocation and
// trimming behave normally, but permissions are bookkeeping only.
type osPageAllocator struct {
	addressHints
	pageSize uintptr

	mutex   sync.Mutex
	regions map[Address][]byte
}

var _ PageAllocator = &osPageAllocator{}

// NewPageAllocator returns a PageAllocator backed by the Go heap.
func NewPageAllocator() PageAllocator {
	a := &osPageAllocator{
		pageSize: uintptr(os.Getpagesize()),
		regions:  make(map[Address][]byte),
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

func (a *osPageAllocator) AllocatePages(hint Address, size, alignment uintptr, access Permission) Address {
	memutils.DebugCheckPow2(alignment, "alignment")

	if alignment < a.pageSize {
		alignment = a.pageSize
	}

	// The buffer is kept alive by the regions map until FreePages drops it.
	buffer := make([]byte, size+alignment)
	base := Address(memutils.AlignUp(uintptr(unsafe.Pointer(&buffer[0])), alignment))

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.regions[base] = buffer
	return base
}

func (a *osPageAllocator) FreePages(address Address, size uintptr) bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if _, exists := a.regions[address]; !exists {
		return false
	}

	delete(a.regions, address)
	return true
}

func (a *osPageAllocator) ReleasePages(address Address, size, newSize uintptr) bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	_, exists := a.regions[address]
	return exists
}

func (a *osPageAllocator) SetPermissions(address Address, size uintptr, access Permission) bool {
	return true
}
