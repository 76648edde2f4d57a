package vmem

import (
	"github.com/cmahlke/vmcore/memutils"
	"github.com/cmahlke/vmcore/platform"
	"runtime"
)

// noCopy triggers the copylocks vet check for structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// VirtualMemory is an owning handle to a reserved region of address space.
// The zero value is an empty handle that owns nothing. A region has exactly
// one owner at a time: handles must not be copied, and ownership moves
// between them only through TakeControl.
//
// Reserved regions start with no access permissions; SetPermissions commits
// the parts that are actually used. Handles returned by
// ReserveVirtualMemory additionally carry a finalizer that frees the region
// if the handle becomes unreachable while still owning it. The finalizer is
// a last resort, not a lifecycle: call Free.
type VirtualMemory struct {
	noCopy noCopy

	pageAllocator platform.PageAllocator
	address       platform.Address
	size          uintptr
}

// ReserveVirtualMemory reserves a region with no access permissions. The
// size and the alignment are rounded up to the allocator's allocation
// granularity, with an alignment of zero or one meaning no preference beyond
// that granularity, and the hint, which may be NullAddress, is rounded down
// to the final alignment. The handle tracks the rounded size. On failure the
// returned handle is empty.
func ReserveVirtualMemory(pageAllocator platform.PageAllocator, size uintptr, hint platform.Address, alignment uintptr) *VirtualMemory {
	if pageAllocator == nil {
		panic("pageAllocator cannot be nil")
	}

	memory := &VirtualMemory{}

	allocatePageSize := pageAllocator.AllocatePageSize()
	if alignment == 0 {
		alignment = 1
	}
	alignment = memutils.AlignUp(alignment, allocatePageSize)
	hint = platform.Address(memutils.AlignDown(uintptr(hint), alignment))
	size = memutils.AlignUp(size, allocatePageSize)

	address := AllocatePages(pageAllocator, hint, size, alignment, platform.NoAccess)
	if address != platform.NullAddress {
		memory.pageAllocator = pageAllocator
		memory.address = address
		memory.size = size
		runtime.SetFinalizer(memory, (*VirtualMemory).Free)
	}

	return memory
}

// IsReserved returns whether this handle currently owns a region.
func (vm *VirtualMemory) IsReserved() bool {
	return vm.address != platform.NullAddress
}

// Address returns the base address of the owned region, or NullAddress for
// an empty handle.
func (vm *VirtualMemory) Address() platform.Address {
	return vm.address
}

// Size returns the current size of the owned region in bytes. It shrinks
// when Release gives pages back.
func (vm *VirtualMemory) Size() uintptr {
	return vm.size
}

// PageAllocator returns the allocator the region was reserved from, or nil
// for an empty handle.
func (vm *VirtualMemory) PageAllocator() platform.PageAllocator {
	return vm.pageAllocator
}

func (vm *VirtualMemory) inVM(address platform.Address, size uintptr) bool {
	return uintptr(address) >= uintptr(vm.address) &&
		uintptr(address)+size <= uintptr(vm.address)+vm.size
}

// SetPermissions changes the access rights of a sub-range of the owned
// region, committing or decommitting it as the allocator requires. The
// range must lie entirely inside the region and respect the commit
// granularity.
func (vm *VirtualMemory) SetPermissions(address platform.Address, size uintptr, access platform.Permission) bool {
	if !vm.IsReserved() {
		panic("the handle does not own a region")
	}
	if !vm.inVM(address, size) {
		panic("the range must lie inside the reserved region")
	}

	return SetPermissions(vm.pageAllocator, address, size, access)
}

// Release gives every page from freeStart to the end of the region back to
// the system and shrinks the handle accordingly. freeStart must be aligned
// to the commit granularity and lie strictly inside the region: releasing
// the whole region is Free's job. Returns the number of bytes released.
func (vm *VirtualMemory) Release(freeStart platform.Address) uintptr {
	if !vm.IsReserved() {
		panic("the handle does not own a region")
	}
	if !memutils.IsAligned(uintptr(freeStart), vm.pageAllocator.CommitPageSize()) {
		panic("freeStart must be aligned to the commit granularity")
	}

	// Capture the old size before shrinking the bookkeeping.
	oldSize := vm.size
	if uintptr(freeStart) <= uintptr(vm.address) || uintptr(freeStart) >= uintptr(vm.address)+oldSize {
		panic("freeStart must lie strictly inside the reserved region")
	}

	freeSize := oldSize - (uintptr(freeStart) - uintptr(vm.address))
	vm.size = oldSize - freeSize
	if !ReleasePages(vm.pageAllocator, vm.address, oldSize, vm.size) {
		panic("the page allocator failed to release the region tail")
	}

	return freeSize
}

// Free returns the owned region to its allocator and empties the handle.
// Freeing an empty handle is a no-op, so a deferred Free is always safe.
func (vm *VirtualMemory) Free() {
	if !vm.IsReserved() {
		return
	}

	// Capture, then reset, then free: the handle must already be empty by
	// the time the pages go away.
	pageAllocator := vm.pageAllocator
	address := vm.address
	size := vm.size
	vm.Reset()

	// Release can leave a size that is not a multiple of the allocation
	// granularity; freeing always covers whole allocation pages.
	if !FreePages(pageAllocator, address, memutils.AlignUp(size, pageAllocator.AllocatePageSize())) {
		panic("the page allocator failed to free the region")
	}
}

// Reset empties the handle without freeing the region: the caller assumes
// ownership of the address space.
func (vm *VirtualMemory) Reset() {
	vm.pageAllocator = nil
	vm.address = platform.NullAddress
	vm.size = 0
}

// TakeControl moves ownership of from's region into this handle, leaving
// from empty. This handle must be empty itself; taking control while owning
// a region would leak it.
func (vm *VirtualMemory) TakeControl(from *VirtualMemory) {
	if vm.IsReserved() {
		panic("cannot take control into a handle that already owns a region")
	}

	vm.pageAllocator = from.pageAllocator
	vm.address = from.address
	vm.size = from.size
	from.Reset()
}

// AllocVirtualMemory reserves size bytes of address space and moves the
// reservation into result, which must be an empty handle. result is left
// untouched when the reservation fails.
func AllocVirtualMemory(pageAllocator platform.PageAllocator, size uintptr, hint platform.Address, result *VirtualMemory) bool {
	memory := ReserveVirtualMemory(pageAllocator, size, hint, 1)
	if !memory.IsReserved() {
		return false
	}

	result.TakeControl(memory)
	return true
}

// AlignedAllocVirtualMemory is AllocVirtualMemory with a caller-chosen base
// address alignment.
func AlignedAllocVirtualMemory(pageAllocator platform.PageAllocator, size, alignment uintptr, hint platform.Address, result *VirtualMemory) bool {
	memory := ReserveVirtualMemory(pageAllocator, size, hint, alignment)
	if !memory.IsReserved() {
		return false
	}

	result.TakeControl(memory)
	return true
}
