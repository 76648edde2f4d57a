//go:build windows

package platform

import (
	"github.com/cmahlke/vmcore/memutils"
	"golang.org/x/sys/windows"
	"os"
)

// Reservations made through VirtualAlloc are aligned to the system allocation
// granularity, which is 64KiB on every supported Windows version.
const allocationGranularity = 64 * 1024

// Re-reserving a freed padded region races against the rest of the process,
// so aligned allocations retry a few times before giving up.
const maxAlignedAllocAttempts = 3

type osPageAllocator struct {
	addressHints
	allocatePageSize uintptr
	commitPageSize   uintptr
}

var _ PageAllocator = &osPageAllocator{}

// NewPageAllocator returns a PageAllocator backed by VirtualAlloc
// reservations from the host kernel.
func NewPageAllocator() PageAllocator {
	a := &osPageAllocator{
		allocatePageSize: allocationGranularity,
		commitPageSize:   uintptr(os.Getpagesize()),
	}
	a.Init(a.allocatePageSize)

	return a
}

func (a *osPageAllocator) AllocatePageSize() uintptr {
	return a.allocatePageSize
}

func (a *osPageAllocator) CommitPageSize() uintptr {
	return a.commitPageSize
}

func protectFlags(access Permission) uint32 {
	switch access {
	case NoAccess:
		return windows.PAGE_NOACCESS
	case Read:
		return windows.PAGE_READONLY
	case ReadWrite:
		return windows.PAGE_READWRITE
	case ReadExecute:
		return windows.PAGE_EXECUTE_READ
	case ReadWriteExecute:
		return windows.PAGE_EXECUTE_READWRITE
	}

	panic("unknown memory permission")
}

func allocFlags(access Permission) uint32 {
	if access == NoAccess {
		return windows.MEM_RESERVE
	}

	return windows.MEM_RESERVE | windows.MEM_COMMIT
}

func (a *osPageAllocator) AllocatePages(hint Address, size, alignment uintptr, access Permission) Address {
	memutils.DebugCheckPow2(alignment, "alignment")

	flags := allocFlags(access)
	protect := protectFlags(access)

	var base uintptr
	var err error

	alignedHint := memutils.AlignDown(uintptr(hint), alignment)
	if alignedHint != 0 {
		base, err = windows.VirtualAlloc(alignedHint, size, flags, protect)
	}
	if base == 0 {
		base, err = windows.VirtualAlloc(0, size, flags, protect)
	}
	if err != nil {
		return NullAddress
	}
	if memutils.IsAligned(base, alignment) {
		return Address(base)
	}

	// The reservation came back misaligned. Free it, reserve with enough
	// padding that an aligned base must exist inside, then re-reserve
	// exactly the aligned range.
	if err = windows.VirtualFree(base, 0, windows.MEM_RELEASE); err != nil {
		panic("failed to free a misaligned reservation: " + err.Error())
	}

	paddedSize := size + (alignment - a.allocatePageSize)
	for attempt := 0; attempt < maxAlignedAllocAttempts; attempt++ {
		base, err = windows.VirtualAlloc(0, paddedSize, flags, protect)
		if err != nil {
			return NullAddress
		}

		alignedBase := memutils.AlignUp(base, alignment)
		if err = windows.VirtualFree(base, 0, windows.MEM_RELEASE); err != nil {
			panic("failed to free a padded reservation: " + err.Error())
		}

		// Another thread can take the range before the re-reserve lands.
		base, err = windows.VirtualAlloc(alignedBase, size, flags, protect)
		if err == nil {
			return Address(base)
		}
	}

	return NullAddress
}

func (a *osPageAllocator) FreePages(address Address, size uintptr) bool {
	// MEM_RELEASE always frees the entire reservation and requires a zero
	// size.
	return windows.VirtualFree(uintptr(address), 0, windows.MEM_RELEASE) == nil
}

func (a *osPageAllocator) ReleasePages(address Address, size, newSize uintptr) bool {
	// Reservations cannot be partially released. Decommitting the tail keeps
	// the reservation whole while giving the memory itself back.
	return windows.VirtualFree(uintptr(address)+newSize, size-newSize, windows.MEM_DECOMMIT) == nil
}

func (a *osPageAllocator) SetPermissions(address Address, size uintptr, access Permission) bool {
	if access == NoAccess {
		return windows.VirtualFree(uintptr(address), size, windows.MEM_DECOMMIT) == nil
	}

	// VirtualProtect cannot touch uncommitted pages. Committing is the only
	// operation that both commits and applies a protection in one step.
	_, err := windows.VirtualAlloc(uintptr(address), size, windows.MEM_COMMIT, protectFlags(access))
	return err == nil
}
