package region

import (
	"unsafe"

	"github.com/wippyai/slabcopy/errors"
	"github.com/wippyai/slabcopy/internal/layout"
)

// Raw describes memory owned by someone else: a C allocation, a driver
// mapping, a pointer handed over by a callback. It is not a region by
// itself. Borrow turns it into one.
type Raw struct {
	Base unsafe.Pointer
	Size uintptr
}

// FromRawParts checks that base and size can describe an allocation.
func FromRawParts(base unsafe.Pointer, size uintptr) (*Raw, error) {
	if size > layout.MaxSize {
		return nil, errors.InvalidLayout(errors.PhaseAlloc, "raw region larger than the maximum allocation size")
	}
	if base == nil && size > 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "nil base pointer for a non-empty raw region")
	}
	return &Raw{Base: base, Size: size}, nil
}

// Borrow returns the raw memory as a region. By calling it the caller
// attests that [Base, Base+Size) is one live allocation and that, for as
// long as the Borrowed is used, nothing else reads or writes those bytes.
func (r *Raw) Borrow() *Borrowed {
	return &Borrowed{base: r.Base, size: r.Size}
}

// Borrowed is raw memory the caller has vouched for.
type Borrowed struct {
	base unsafe.Pointer
	size uintptr
}

func (b *Borrowed) BasePtr() unsafe.Pointer { return b.base }

func (b *Borrowed) BasePtrMut() unsafe.Pointer { return b.base }

func (b *Borrowed) Size() uintptr { return b.size }
