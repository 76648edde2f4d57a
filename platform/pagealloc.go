package platform

// Address is a raw location in the process address space. It is deliberately
// not an unsafe.Pointer: most addresses handled by this package refer to
// memory the Go runtime knows nothing about, and several represent hints or
// freed regions that must never be dereferenced.
type Address uintptr

// NullAddress is returned by methods that failed to produce an address.
const NullAddress Address = 0

// Permission controls the access rights of a mapped region of pages.
type Permission uint32

const (
	// NoAccess pages cannot be read, written, or executed. Reservations
	// created with NoAccess consume address space but no memory.
	NoAccess Permission = iota
	// Read pages can only be read.
	Read
	// ReadWrite pages can be read and written.
	ReadWrite
	// ReadExecute pages can be read and executed, but not written.
	ReadExecute
	// ReadWriteExecute pages can be read, written, and executed.
	ReadWriteExecute
)

var permissionMapping = make(map[Permission]string)

func (p Permission) String() string {
	return permissionMapping[p]
}

func init() {
	permissionMapping[NoAccess] = "NoAccess"
	permissionMapping[Read] = "Read"
	permissionMapping[ReadWrite] = "ReadWrite"
	permissionMapping[ReadExecute] = "ReadExecute"
	permissionMapping[ReadWriteExecute] = "ReadWriteExecute"
}

// PageAllocator manages page-granular regions of address space. Implementations
// report failure through return values rather than errors: methods that produce
// an address return NullAddress on failure and methods that change existing
// regions return false.
//
// The operating-system-backed implementation returned by NewPageAllocator is
// safe for concurrent use, and custom implementations are expected to be as
// well.
type PageAllocator interface {
	// AllocatePageSize is the granularity at which regions can be allocated
	// and aligned. It is always a power of two and always at least as large
	// as CommitPageSize.
	AllocatePageSize() uintptr
	// CommitPageSize is the granularity at which permissions can be changed
	// and trailing pages can be released. It is always a power of two.
	CommitPageSize() uintptr

	// SetRandomMmapSeed reseeds the generator behind GetRandomMmapAddr,
	// making subsequent hint addresses reproducible.
	SetRandomMmapSeed(seed int64)
	// GetRandomMmapAddr produces a randomized address, aligned to
	// AllocatePageSize, that is suitable as a placement hint for
	// AllocatePages.
	GetRandomMmapAddr() Address

	// AllocatePages maps a region of address space and returns its base
	// address, or NullAddress if the space could not be mapped. The size
	// must be a multiple of AllocatePageSize and the alignment must be a
	// power of two no smaller than AllocatePageSize. The hint may be
	// NullAddress; when it is not, the allocator attempts to place the
	// region there but may place it anywhere.
	AllocatePages(hint Address, size, alignment uintptr, access Permission) Address
	// FreePages unmaps a region previously returned by AllocatePages. The
	// address must be the exact base of the region and the size must cover
	// the whole region, rounded up to AllocatePageSize if trailing pages
	// were released.
	FreePages(address Address, size uintptr) bool
	// ReleasePages gives the pages in [address+newSize, address+size) back
	// to the system and shrinks the region to newSize. The region must have
	// been mapped with the provided size, newSize must be smaller, and both
	// sizes must be multiples of CommitPageSize.
	ReleasePages(address Address, size, newSize uintptr) bool
	// SetPermissions changes the access rights of the pages in
	// [address, address+size). Both the address and the size must be
	// multiples of CommitPageSize. Setting NoAccess additionally allows the
	// system to reclaim the physical memory behind the pages.
	SetPermissions(address Address, size uintptr, access Permission) bool
}
