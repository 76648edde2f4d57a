package platform

import (
	"github.com/cmahlke/vmcore/memutils"
	"math/rand"
	"sync"
	"time"
)

// Hint addresses stay within the low 46 bits of the address space on 64-bit
// hosts: canonical user-space addresses only reach 47 bits on the common
// platforms, and the top of that range belongs to the kernel. 32-bit hosts
// use 30-bit hints for the same reason.
const (
	hintAddressBits = 30 + 16*(^uintptr(0)>>63)
	hintAddressMask = 1<<hintAddressBits - 1
)

// addressHints produces the randomized placement hints behind
// GetRandomMmapAddr. Every PageAllocator in this package embeds it.
type addressHints struct {
	mutex       sync.Mutex
	rng         *rand.Rand
	granularity uintptr
}

func (h *addressHints) Init(granularity uintptr) {
	h.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	h.granularity = granularity
}

func (h *addressHints) SetRandomMmapSeed(seed int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.rng = rand.New(rand.NewSource(seed))
}

func (h *addressHints) GetRandomMmapAddr() Address {
	h.mutex.Lock()
	raw := h.rng.Uint64()
	h.mutex.Unlock()

	return Address(memutils.AlignDown(uintptr(raw)&hintAddressMask, h.granularity))
}
