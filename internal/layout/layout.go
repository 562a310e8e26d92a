package layout

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/wippyai/slabcopy/errors"
)

// Layout is the size and alignment a payload requires in memory.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout of one T.
func Of[T any]() Layout {
	var z T
	return Layout{Size: unsafe.Sizeof(z), Align: unsafe.Alignof(z)}
}

// Array returns the layout of n contiguous T values. Elements are not padded
// beyond T's own size, matching a Go array.
func Array[T any](n int) (Layout, error) {
	elem := Of[T]()
	if n < 0 {
		return Layout{}, errors.InvalidLayout(errors.PhaseLayout, fmt.Sprintf("negative element count %d", n))
	}
	size, ok := SafeMul(elem.Size, uintptr(n))
	if !ok || size > MaxSize-(elem.Align-1) {
		return Layout{}, errors.InvalidLayout(errors.PhaseLayout,
			fmt.Sprintf("%d elements of %d bytes overflow", n, elem.Size))
	}
	return Layout{Size: size, Align: elem.Align}, nil
}

// ForSlice returns the layout of the elements s currently holds.
func ForSlice[T any](s []T) Layout {
	elem := Of[T]()
	return Layout{Size: elem.Size * uintptr(len(s)), Align: elem.Align}
}

// Validate checks the invariants every Layout must hold: a power-of-two
// alignment and a size that still fits MaxSize once padded.
func (l Layout) Validate() error {
	if !IsPow2(l.Align) {
		return errors.InvalidLayout(errors.PhaseLayout, fmt.Sprintf("alignment %d is not a power of two", l.Align))
	}
	padded, ok := AlignUp(l.Size, l.Align)
	if !ok || padded > MaxSize {
		return errors.InvalidLayout(errors.PhaseLayout, fmt.Sprintf("size %d overflows at alignment %d", l.Size, l.Align))
	}
	return nil
}

// Padded returns Size rounded up to Align. The layout must be valid.
func (l Layout) Padded() uintptr {
	return (l.Size + l.Align - 1) &^ (l.Align - 1)
}

func (l Layout) String() string {
	return fmt.Sprintf("size=%d align=%d", l.Size, l.Align)
}

// TypeName returns "nil" for nil types, avoiding a nil dereference in messages.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
