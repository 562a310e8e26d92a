//go:build unix

package region

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/wippyai/slabcopy/internal/layout"
)

func pageSize() uintptr {
	return uintptr(unix.Getpagesize())
}

// allocate maps anonymous memory. Mappings are page aligned, which covers
// every alignment NewHeap accepts.
func allocate(l layout.Layout) ([]byte, unsafe.Pointer, error) {
	mem, err := unix.Mmap(-1, 0, int(l.Size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return mem, unsafe.Pointer(unsafe.SliceData(mem)), nil
}

func release(mem []byte) error {
	return unix.Munmap(mem)
}
