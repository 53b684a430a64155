//go:build linux || darwin || freebsd || netbsd || openbsd

package region

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// DefaultBacking is the backing used when no WithBacking option is given.
const DefaultBacking = BackingMmap

// reserveMmap maps anonymous, zero-filled memory. Mappings are page aligned,
// so extra slack is only mapped for alignments beyond the page size.
func reserveMmap(capacity, alignment int) ([]byte, error) {
	size := capacity
	if alignment > unix.Getpagesize() {
		if capacity > math.MaxInt-alignment {
			return nil, errors.Errorf("region: capacity %d with alignment %d overflows", capacity, alignment)
		}
		size += alignment
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "region: mmap %d bytes", size)
	}
	return mem, nil
}

func unmap(mem []byte) error {
	return errors.Wrap(unix.Munmap(mem), "region: munmap")
}
