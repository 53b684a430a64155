package region

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// reserve obtains a block of at least capacity bytes from the given backing
// and returns both the whole reservation (needed to give it back) and the
// aligned window of exactly capacity bytes the region bumps through.
func reserve(b Backing, capacity, alignment int) (mem, window []byte, err error) {
	switch b {
	case BackingHeap:
		mem, err = reserveHeap(capacity, alignment)
	case BackingMmap:
		mem, err = reserveMmap(capacity, alignment)
	default:
		return nil, nil, errors.Errorf("region: unknown backing %q", b)
	}
	if err != nil {
		return nil, nil, err
	}
	return mem, alignedWindow(mem, capacity, alignment), nil
}

// unreserve hands a reservation obtained from reserve back to its backing.
func unreserve(b Backing, mem []byte) error {
	if b == BackingMmap {
		return unmap(mem)
	}
	return nil
}

// reserveHeap over-allocates by alignment-1 so an aligned window always fits.
func reserveHeap(capacity, alignment int) ([]byte, error) {
	if capacity > math.MaxInt-alignment {
		return nil, errors.Errorf("region: capacity %d with alignment %d overflows", capacity, alignment)
	}
	return make([]byte, capacity+alignment-1), nil
}

func alignedWindow(mem []byte, capacity, alignment int) []byte {
	addr := addressOf(mem)
	off := int(alignUp(addr, uintptr(alignment)) - addr)
	return mem[off : off+capacity : off+capacity]
}

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// alignUp rounds v up to a multiple of align, which must be a power of two.
func alignUp(v, align uintptr) uintptr {
	mask := align - 1
	return (v + mask) &^ mask
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
