package region

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// The helpers below place values inside a region. The region's memory is not
// scanned by the garbage collector, so T must not contain Go pointers
// (pointers, slices, strings, maps, channels, interfaces or funcs).

// Alloc returns a pointer to a zeroed T stored inside the region.
// It panics if T needs a stricter alignment than the region provides.
func Alloc[T any](r *Region) *T {
	p := AllocUninitialized[T](r)
	var zero T
	*p = zero
	return p
}

// AllocUninitialized returns a *T located in the region without zeroing memory.
func AllocUninitialized[T any](r *Region) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	checkAlign(r, unsafe.Alignof(zero))
	if size == 0 {
		return new(T)
	}
	b := r.Allocate(size)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the region.
// The elements are not initialized. Returns nil if n <= 0.
func AllocSlice[T any](r *Region, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	checkAlign(r, unsafe.Alignof(zero))
	if elemSize == 0 {
		return make([]T, n)
	}
	if n > math.MaxInt/elemSize {
		panic(errors.Errorf("region: slice of %d elements of %d bytes overflows", n, elemSize))
	}
	b := r.Allocate(elemSize * n)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed is AllocSlice with the elements zeroed.
func AllocSliceZeroed[T any](r *Region, n int) []T {
	s := AllocSlice[T](r, n)
	clear(s)
	return s
}

// AllocCopy copies b into the region and returns the copy.
func AllocCopy(r *Region, b []byte) []byte {
	dst := r.Allocate(len(b))
	copy(dst, b)
	return dst
}

// AllocString copies s into the region and returns a string backed by the
// copy. This is the primitive an interning cache stores its keys with.
func AllocString(r *Region, s string) string {
	if len(s) == 0 {
		return ""
	}
	dst := r.Allocate(len(s))
	copy(dst, s)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

func checkAlign(r *Region, align uintptr) {
	if int(align) > r.Alignment() {
		panic(errors.Errorf("region: type alignment %d exceeds region alignment %d", align, r.Alignment()))
	}
}
