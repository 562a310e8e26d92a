package slabcopy

import (
	"unsafe"

	"github.com/wippyai/slabcopy/errors"
	"github.com/wippyai/slabcopy/internal/layout"
)

// Reads never relocate data: the offset must be exactly where a T lives, so
// every checked read validates in exact mode with no minimum alignment.

func readPlace(r Region, offset uintptr, l Layout) (layout.Placement, error) {
	return place(r, offset, l, 1, true, errors.PhaseRead)
}

// ReadAt returns the T stored at offset. The caller asserts that a valid T
// was written there.
func ReadAt[T any](r Region, offset uintptr) (*T, error) {
	layout.MustPlain[T]()
	p, err := readPlace(r, offset, layout.Of[T]())
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Add(r.BasePtr(), p.Start)), nil
}

// ReadAtMut returns the T stored at offset for modification. The caller
// asserts that a valid T was written there.
//
// Storing a T with interior padding through the result leaves the padding
// bytes undefined again. Do not view them as initialized bytes until they
// are rewritten.
func ReadAtMut[T any](r MutRegion, offset uintptr) (*T, error) {
	layout.MustPlain[T]()
	p, err := readPlace(r, offset, layout.Of[T]())
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Add(r.BasePtrMut(), p.Start)), nil
}

// ReadSliceAt returns the n values of T stored contiguously at offset. The
// caller asserts all of them were written.
func ReadSliceAt[T any](r Region, offset uintptr, n int) ([]T, error) {
	layout.MustPlain[T]()
	p, err := readSlicePlace[T](r, offset, n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Add(r.BasePtr(), p.Start)), n), nil
}

// ReadSliceAtMut is ReadSliceAt for modification. The padding note on
// ReadAtMut applies.
func ReadSliceAtMut[T any](r MutRegion, offset uintptr, n int) ([]T, error) {
	layout.MustPlain[T]()
	p, err := readSlicePlace[T](r, offset, n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Add(r.BasePtrMut(), p.Start)), n), nil
}

// UninitAt returns a view of the T at offset without asserting that it was
// written.
func UninitAt[T any](r MutRegion, offset uintptr) (Uninit[T], error) {
	layout.MustPlain[T]()
	p, err := readPlace(r, offset, layout.Of[T]())
	if err != nil {
		return Uninit[T]{}, err
	}
	return Uninit[T]{ptr: (*T)(unsafe.Add(r.BasePtrMut(), p.Start))}, nil
}

// UninitSliceAt returns a view of n values of T at offset without asserting
// that they were written.
func UninitSliceAt[T any](r MutRegion, offset uintptr, n int) (UninitSlice[T], error) {
	layout.MustPlain[T]()
	p, err := readSlicePlace[T](r, offset, n)
	if err != nil {
		return UninitSlice[T]{}, err
	}
	return UninitSlice[T]{ptr: (*T)(unsafe.Add(r.BasePtrMut(), p.Start)), n: n}, nil
}

func readSlicePlace[T any](r Region, offset uintptr, n int) (layout.Placement, error) {
	l, err := layout.Array[T](n)
	if err != nil {
		return layout.Placement{}, errors.WithPhase(err, errors.PhaseRead)
	}
	return readPlace(r, offset, l)
}

// The unchecked reads below skip every check, including the plain type
// check. The caller guarantees that offset is aligned for T and that the
// payload lies inside the region.

// ReadAtUnchecked is ReadAt without validation.
func ReadAtUnchecked[T any](r Region, offset uintptr) *T {
	return (*T)(unsafe.Add(r.BasePtr(), offset))
}

// ReadAtMutUnchecked is ReadAtMut without validation.
func ReadAtMutUnchecked[T any](r MutRegion, offset uintptr) *T {
	return (*T)(unsafe.Add(r.BasePtrMut(), offset))
}

// UninitAtUnchecked is UninitAt without validation.
func UninitAtUnchecked[T any](r MutRegion, offset uintptr) Uninit[T] {
	return Uninit[T]{ptr: (*T)(unsafe.Add(r.BasePtrMut(), offset))}
}

// ReadSliceAtUnchecked is ReadSliceAt without validation.
func ReadSliceAtUnchecked[T any](r Region, offset uintptr, n int) []T {
	return unsafe.Slice((*T)(unsafe.Add(r.BasePtr(), offset)), n)
}

// ReadSliceAtMutUnchecked is ReadSliceAtMut without validation.
func ReadSliceAtMutUnchecked[T any](r MutRegion, offset uintptr, n int) []T {
	return unsafe.Slice((*T)(unsafe.Add(r.BasePtrMut(), offset)), n)
}

// UninitSliceAtUnchecked is UninitSliceAt without validation.
func UninitSliceAtUnchecked[T any](r MutRegion, offset uintptr, n int) UninitSlice[T] {
	return UninitSlice[T]{ptr: (*T)(unsafe.Add(r.BasePtrMut(), offset)), n: n}
}
