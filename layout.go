package slabcopy

import (
	"github.com/wippyai/slabcopy/errors"
	"github.com/wippyai/slabcopy/internal/layout"
)

// Layout is the size and power-of-two alignment of a payload.
type Layout = layout.Layout

// LayoutOf returns the layout of one T.
func LayoutOf[T any]() Layout {
	return layout.Of[T]()
}

// ArrayLayout returns the layout of n contiguous T values.
func ArrayLayout[T any](n int) (Layout, error) {
	return layout.Array[T](n)
}

// Sentinels for errors.Is. They match regardless of the operation that
// failed.
var (
	ErrOutOfMemory              error = errors.Sentinel(errors.KindOutOfMemory)
	ErrOffsetOutOfBounds        error = errors.Sentinel(errors.KindOffsetOutOfBounds)
	ErrInvalidLayout            error = errors.Sentinel(errors.KindInvalidLayout)
	ErrRequestedOffsetUnaligned error = errors.Sentinel(errors.KindRequestedOffsetUnaligned)
)

// place runs the placement algorithm against r and stamps errors with phase.
func place(r Region, offset uintptr, l Layout, minAlign uintptr, exact bool, phase errors.Phase) (layout.Placement, error) {
	p, err := layout.Place(uintptr(r.BasePtr()), r.Size(), offset, l, minAlign, exact)
	if err != nil {
		return layout.Placement{}, errors.WithPhase(err, phase)
	}
	return p, nil
}
