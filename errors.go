package region

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrReleased is the panic value of any Allocate or Release on a region
	// that has already been released.
	ErrReleased = errors.New("region: use after Release()")

	// ErrInvalidCapacity is returned by Reserve when capacity is not positive.
	ErrInvalidCapacity = errors.New("region: capacity must be greater than 0")

	// ErrInvalidAlignment is returned by Reserve when alignment is not a power of two.
	ErrInvalidAlignment = errors.New("region: alignment must be a power of two")
)

// ExhaustedError is the panic value of an Allocate call that does not fit in
// the remaining headroom. Exhaustion is fatal: the owner is expected to
// rotate to a fresh region before it happens.
type ExhaustedError struct {
	Requested int // bytes asked for, before alignment rounding
	Available int // headroom left below the cursor
	Capacity  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("region: exhausted: asked for %d bytes with %d of %d bytes available",
		e.Requested, e.Available, e.Capacity)
}
