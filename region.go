package region

import (
	"github.com/alecthomas/units"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Region is a single fixed-size block that hands out sub-ranges by bumping a
// cursor downward from the end of the block toward its start. Memory is only
// given back all at once, by Release. Not goroutine-safe; use Locked or
// another external lock when a region is shared.
type Region struct {
	window   []byte // aligned block of exactly capacity bytes
	mem      []byte // whole reservation, given back on Release
	start    uintptr
	capacity int
	ptr      int // cursor offset into window; start <= ptr <= end
	mask     int // alignment - 1
	backing  Backing
	released bool
	logger   *zap.Logger
}

// New reserves a region of capacity bytes aligned to alignment. It panics if
// capacity is not positive, alignment is not a power of two, or the memory
// cannot be reserved.
func New(capacity, alignment int, opts ...Option) *Region {
	r, err := Reserve(capacity, alignment, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Reserve is like New but returns argument and reservation failures as errors.
func Reserve(capacity, alignment int, opts ...Option) (*Region, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !isPowerOfTwo(alignment) {
		return nil, ErrInvalidAlignment
	}
	o := buildOptions(opts)

	mem, window, err := reserve(o.backing, capacity, alignment)
	if err != nil {
		o.logger.Error("region: reservation failed",
			zap.Stringer("capacity", units.Base2Bytes(capacity)),
			zap.Int("alignment", alignment),
			zap.String("backing", string(o.backing)),
			zap.Error(err))
		return nil, err
	}

	r := &Region{
		window:   window,
		mem:      mem,
		start:    addressOf(window),
		capacity: capacity,
		ptr:      capacity,
		mask:     alignment - 1,
		backing:  o.backing,
		logger:   o.logger,
	}
	o.logger.Debug("region: reserved",
		zap.Stringer("capacity", units.Base2Bytes(capacity)),
		zap.Int("alignment", alignment),
		zap.String("backing", string(o.backing)))
	return r, nil
}

// Allocate moves the cursor down by n bytes, rounds it down to the region's
// alignment and returns the n bytes starting at the new cursor. The memory is
// not zeroed. Allocate panics with an *ExhaustedError if the rounded request
// does not fit, and with ErrReleased after Release.
func (r *Region) Allocate(n int) []byte {
	if r.released {
		panic(ErrReleased)
	}
	if n < 0 {
		panic(errors.Errorf("region: negative allocation size %d", n))
	}

	// Rounding down never lands above ptr-n, so checking against start is
	// the only bounds check needed.
	p := (r.ptr - n) &^ r.mask
	if p < 0 {
		r.exhausted(n)
	}
	r.ptr = p
	return r.window[p : p+n : p+n]
}

func (r *Region) exhausted(n int) {
	err := &ExhaustedError{
		Requested: n,
		Available: r.ptr,
		Capacity:  r.capacity,
	}
	r.logger.Error("region: exhausted",
		zap.Int("requested", n),
		zap.Int("available", r.ptr),
		zap.Stringer("capacity", units.Base2Bytes(r.capacity)))
	panic(err)
}

// Fits reports whether Allocate(n) would succeed, without moving the cursor.
func (r *Region) Fits(n int) bool {
	return !r.released && n >= 0 && (r.ptr-n)&^r.mask >= 0
}

// AllocatedBytes returns end - current, padding included.
func (r *Region) AllocatedBytes() int {
	return r.capacity - r.ptr
}

// Remaining returns current - start, the headroom left before exhaustion.
func (r *Region) Remaining() int {
	return r.ptr
}

// Capacity returns the reserved size in bytes.
func (r *Region) Capacity() int {
	return r.capacity
}

// Alignment returns the alignment of every address handed out.
func (r *Region) Alignment() int {
	return r.mask + 1
}

// Start returns the lowest address of the block.
func (r *Region) Start() uintptr {
	return r.start
}

// End returns the address one past the highest byte of the block.
func (r *Region) End() uintptr {
	return r.start + uintptr(r.capacity)
}

// Current returns the cursor address. Every byte in [Current(), End()) has
// been handed out.
func (r *Region) Current() uintptr {
	return r.start + uintptr(r.ptr)
}

// Released reports whether Release has been called.
func (r *Region) Released() bool {
	return r.released
}

// Release returns the whole block to the system. No slice returned by
// Allocate may be used afterwards. A region can be released only once; a
// second call panics with ErrReleased.
func (r *Region) Release() {
	if r.released {
		panic(ErrReleased)
	}
	mem := r.mem
	r.released = true
	r.mem, r.window = nil, nil

	if err := unreserve(r.backing, mem); err != nil {
		r.logger.Error("region: release failed", zap.Error(err))
		panic(err)
	}
	r.logger.Debug("region: released",
		zap.Stringer("capacity", units.Base2Bytes(r.capacity)),
		zap.Int("allocated", r.AllocatedBytes()))
}
