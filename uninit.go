package slabcopy

import (
	"fmt"
	"unsafe"
)

// Uninit is a typed pointer to memory that may not hold a valid T yet.
// It can be written through, but reading requires AssumeInit.
type Uninit[T any] struct {
	ptr *T
}

// Ptr returns the raw location.
func (u Uninit[T]) Ptr() unsafe.Pointer { return unsafe.Pointer(u.ptr) }

// Write stores v and returns the now initialized value.
func (u Uninit[T]) Write(v T) *T {
	*u.ptr = v
	return u.ptr
}

// AssumeInit returns the value. The caller asserts every byte of it was
// written.
func (u Uninit[T]) AssumeInit() *T { return u.ptr }

// UninitSlice is a run of n possibly uninitialized T values.
type UninitSlice[T any] struct {
	ptr *T
	n   int
}

// Len returns the number of elements.
func (s UninitSlice[T]) Len() int { return s.n }

// Ptr returns the location of the first element.
func (s UninitSlice[T]) Ptr() unsafe.Pointer { return unsafe.Pointer(s.ptr) }

// Index returns element i. It panics if i is out of range.
func (s UninitSlice[T]) Index(i int) Uninit[T] {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("slabcopy: index %d out of range [0:%d]", i, s.n))
	}
	return Uninit[T]{ptr: (*T)(unsafe.Add(unsafe.Pointer(s.ptr), uintptr(i)*unsafe.Sizeof(*s.ptr)))}
}

// CopyFrom writes src over every element and returns the initialized slice.
// It panics if the lengths differ.
func (s UninitSlice[T]) CopyFrom(src []T) []T {
	if len(src) != s.n {
		panic(fmt.Sprintf("slabcopy: source length %d does not match destination length %d", len(src), s.n))
	}
	dst := unsafe.Slice(s.ptr, s.n)
	copy(dst, src)
	return dst
}

// AssumeInit returns the elements. The caller asserts all of them were
// written.
func (s UninitSlice[T]) AssumeInit() []T {
	return unsafe.Slice(s.ptr, s.n)
}
