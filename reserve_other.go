//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package region

import (
	"runtime"

	"github.com/pkg/errors"
)

// DefaultBacking is the backing used when no WithBacking option is given.
const DefaultBacking = BackingHeap

func reserveMmap(int, int) ([]byte, error) {
	return nil, errors.Errorf("region: mmap backing is not supported on %s", runtime.GOOS)
}

func unmap([]byte) error {
	return errors.Errorf("region: mmap backing is not supported on %s", runtime.GOOS)
}
