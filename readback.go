package slabcopy

import (
	"unsafe"

	"github.com/wippyai/slabcopy/errors"
	"github.com/wippyai/slabcopy/internal/layout"
)

// ReadbackFromFFI lets fill write a T directly into r. The T is placed at the
// first offset aligned for it, fill receives that location, and on success
// the written value is returned. An error from fill is wrapped with
// KindExternal.
func ReadbackFromFFI[T any](r MutRegion, fill func(ptr unsafe.Pointer) error) (*T, error) {
	layout.MustPlain[T]()

	p, err := place(r, 0, layout.Of[T](), 1, false, errors.PhaseReadback)
	if err != nil {
		return nil, err
	}

	ptr := unsafe.Add(r.BasePtrMut(), p.Start)
	if err := fill(ptr); err != nil {
		return nil, errors.External(errors.PhaseReadback, "readback routine failed", err)
	}
	return (*T)(ptr), nil
}

// ReadbackSliceFromFFI lets fill write a run of T values into r. fill
// receives the first aligned location and the number of bytes available from
// there, and reports how many elements it wrote. That count is validated
// against r before the elements are returned: a count that does not fit
// fails with ErrOutOfMemory.
func ReadbackSliceFromFFI[T any](r MutRegion, fill func(ptr unsafe.Pointer, capacity uintptr) (int, error)) ([]T, error) {
	layout.MustPlain[T]()

	elem := layout.Of[T]()
	p, err := place(r, 0, Layout{Size: 0, Align: elem.Align}, 1, false, errors.PhaseReadback)
	if err != nil {
		return nil, err
	}

	ptr := unsafe.Add(r.BasePtrMut(), p.Start)
	n, err := fill(ptr, r.Size()-p.Start)
	if err != nil {
		return nil, errors.External(errors.PhaseReadback, "readback routine failed", err)
	}

	l, err := layout.Array[T](n)
	if err != nil {
		return nil, errors.WithPhase(err, errors.PhaseReadback)
	}
	if _, err := place(r, p.Start, l, 1, true, errors.PhaseReadback); err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(ptr), n), nil
}
