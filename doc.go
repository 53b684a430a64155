// Package region implements a single-block, downward bump allocator.
//
// # Overview
//
// A Region reserves one contiguous block of memory up front and hands out
// sub-ranges of it by moving a cursor from the end of the block toward its
// start. There is no per-allocation bookkeeping and no individual free: the
// whole block is returned at once by Release. It is meant to sit underneath
// an interning cache that stores many small, same-lifetime keys and rotates
// to a fresh region before the current one fills up.
//
// # Basic Usage
//
//	r := region.New(1<<20, 8) // 1 MiB, 8-byte aligned
//
//	buf := r.Allocate(100)              // 100 bytes, address multiple of 8
//	key := region.AllocString(r, "foo") // string backed by the region
//
//	if !r.Fits(4096) {
//		// rotate to a new region
//	}
//
//	r.Release() // only once nothing from r is referenced any more
//
// # Failure
//
// Running out of room is a bug in the owner's rotation policy, not a
// transient condition. Allocate panics with an *ExhaustedError carrying the
// requested and available byte counts; New panics if the block cannot be
// reserved. Owners that want to check first use Fits or Remaining; owners
// that build regions from configuration use Reserve, which returns errors.
//
// # Memory Layout
//
// Every returned address is a multiple of the region's alignment. The cursor
// is rounded down after each bump, so padding sits between allocations and
// is counted by AllocatedBytes but never handed out.
//
// On Linux, macOS and the BSDs the block is an anonymous mmap that Release
// unmaps; elsewhere, or with WithBacking(BackingHeap), it is a Go slice.
// Region memory is not scanned by the garbage collector, so values placed in
// it must not hold Go pointers.
//
// # Thread Safety
//
// A Region is not goroutine-safe. Owners sharing one wrap it with Locked:
//
//	l := region.NewLocked(region.New(1<<20, 8))
//	buf := l.Allocate(64)
//	l.With(func(r *region.Region) {
//		_ = region.Alloc[header](r)
//	})
//
// # Metrics
//
// Stats returns a snapshot of usage, and Collector exports tracked regions to
// prometheus:
//
//	c := region.NewCollector("intern")
//	prometheus.MustRegister(c)
//	c.Track("current", l)
package region
