package region

import (
	"unsafe"

	"github.com/wippyai/slabcopy/internal/layout"
)

// Fixed is fixed-capacity storage held by value, typically an array type:
//
//	var hits region.Fixed[[32]Hit]
//
// A must be plain. Use NewFixed to have that checked.
type Fixed[A any] struct {
	buf A
}

// NewFixed returns zeroed storage for an A. It panics if A holds pointers.
func NewFixed[A any]() *Fixed[A] {
	layout.MustPlain[A]()
	return &Fixed[A]{}
}

func (f *Fixed[A]) BasePtr() unsafe.Pointer { return unsafe.Pointer(&f.buf) }

func (f *Fixed[A]) BasePtrMut() unsafe.Pointer { return unsafe.Pointer(&f.buf) }

func (f *Fixed[A]) Size() uintptr { return unsafe.Sizeof(f.buf) }

// Value returns the storage as an A. The caller asserts that every byte was
// written or is meant to be zero.
func (f *Fixed[A]) Value() *A { return &f.buf }
