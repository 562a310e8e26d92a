package region

import (
	"slices"
	"unsafe"

	"github.com/wippyai/slabcopy/internal/layout"
)

// Slice is a region over the elements of a Go slice.
type Slice[T any] struct {
	elems []T
}

// FromSlice returns a region covering the len(s) elements of s. It panics if
// T holds pointers.
func FromSlice[T any](s []T) *Slice[T] {
	layout.MustPlain[T]()
	return &Slice[T]{elems: s}
}

// Extend sets the length of *v to n, growing its capacity if needed, and
// returns a region over all n elements. Elements past the old length keep
// whatever the backing array held, which for freshly grown storage is zero.
func Extend[T any](v *[]T, n int) *Slice[T] {
	if n > cap(*v) {
		*v = slices.Grow(*v, n-len(*v))
	}
	*v = (*v)[:n]
	return FromSlice(*v)
}

// Elems returns the underlying slice.
func (s *Slice[T]) Elems() []T { return s.elems }

func (s *Slice[T]) BasePtr() unsafe.Pointer { return unsafe.Pointer(unsafe.SliceData(s.elems)) }

func (s *Slice[T]) BasePtrMut() unsafe.Pointer { return unsafe.Pointer(unsafe.SliceData(s.elems)) }

func (s *Slice[T]) Size() uintptr { return uintptr(len(s.elems)) * layout.Of[T]().Size }
