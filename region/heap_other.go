//go:build !unix

package region

import (
	"os"
	"unsafe"

	"github.com/wippyai/slabcopy/internal/layout"
)

func pageSize() uintptr {
	return uintptr(os.Getpagesize())
}

// allocate over-allocates a Go buffer and aligns within it.
func allocate(l layout.Layout) ([]byte, unsafe.Pointer, error) {
	mem := make([]byte, l.Size+l.Align-1)
	base := unsafe.Pointer(unsafe.SliceData(mem))
	pad := (l.Align - uintptr(base)%l.Align) % l.Align
	return mem, unsafe.Add(base, pad), nil
}

func release([]byte) error {
	return nil
}
