//go:build linux || darwin || freebsd

package physmem

import (
	"golang.org/x/sys/unix"
)

// reserve maps anonymous memory so that large arenas stay out of the Go heap and are zero-filled
// lazily by the host kernel.
func reserve(size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}
