package slabcopy

import (
	"unsafe"

	"github.com/wippyai/slabcopy/errors"
	"github.com/wippyai/slabcopy/internal/layout"
)

// CopyRecord locates a payload written into a region. Offsets are relative
// to the region base. Bytes in [EndOffset, EndOffsetPadded) were not written.
type CopyRecord struct {
	StartOffset     uintptr
	EndOffset       uintptr
	EndOffsetPadded uintptr
}

func recordOf(p layout.Placement) CopyRecord {
	return CopyRecord{StartOffset: p.Start, EndOffset: p.End, EndOffsetPadded: p.EndPadded}
}

// CopyTo copies *src into dst at the first offset >= offset that satisfies
// T's alignment.
func CopyTo[T any](src *T, dst MutRegion, offset uintptr) (CopyRecord, error) {
	return CopyToWithAlign(src, dst, offset, 1)
}

// CopyToWithAlign is CopyTo with an additional minimum alignment. minAlign is
// rounded up to a power of two and only affects where the value starts.
func CopyToWithAlign[T any](src *T, dst MutRegion, offset, minAlign uintptr) (CopyRecord, error) {
	layout.MustPlain[T]()
	return copyRaw(unsafe.Pointer(src), layout.Of[T](), dst, offset, minAlign, false)
}

// CopyToExact copies *src into dst at exactly offset, failing with
// ErrRequestedOffsetUnaligned if T cannot start there.
func CopyToExact[T any](src *T, dst MutRegion, offset uintptr) (CopyRecord, error) {
	return CopyToWithAlignExact(src, dst, offset, 1)
}

// CopyToWithAlignExact is CopyToExact with an additional minimum alignment.
func CopyToWithAlignExact[T any](src *T, dst MutRegion, offset, minAlign uintptr) (CopyRecord, error) {
	layout.MustPlain[T]()
	return copyRaw(unsafe.Pointer(src), layout.Of[T](), dst, offset, minAlign, true)
}

// CopySliceTo copies the elements of src contiguously into dst, starting at
// the first offset >= offset aligned for T. No padding is inserted between
// elements.
func CopySliceTo[T any](src []T, dst MutRegion, offset uintptr) (CopyRecord, error) {
	return CopySliceToWithAlign(src, dst, offset, 1)
}

// CopySliceToWithAlign is CopySliceTo with an additional minimum alignment
// for the first element.
func CopySliceToWithAlign[T any](src []T, dst MutRegion, offset, minAlign uintptr) (CopyRecord, error) {
	layout.MustPlain[T]()
	return copyRaw(unsafe.Pointer(unsafe.SliceData(src)), layout.ForSlice(src), dst, offset, minAlign, false)
}

// CopySliceToExact copies the elements of src starting at exactly offset.
func CopySliceToExact[T any](src []T, dst MutRegion, offset uintptr) (CopyRecord, error) {
	return CopySliceToWithAlignExact(src, dst, offset, 1)
}

// CopySliceToWithAlignExact is CopySliceToExact with an additional minimum
// alignment.
func CopySliceToWithAlignExact[T any](src []T, dst MutRegion, offset, minAlign uintptr) (CopyRecord, error) {
	layout.MustPlain[T]()
	return copyRaw(unsafe.Pointer(unsafe.SliceData(src)), layout.ForSlice(src), dst, offset, minAlign, true)
}

// CopyEncodedTo copies bytes already encoded for layout l, such as a
// Canonical ABI value sized by a LayoutCalculator. len(src) must equal
// l.Size.
func CopyEncodedTo(src []byte, l Layout, dst MutRegion, offset, minAlign uintptr, exact bool) (CopyRecord, error) {
	if uintptr(len(src)) != l.Size {
		return CopyRecord{}, errors.New(errors.PhaseCopy, errors.KindInvalidLayout).
			Value(len(src)).
			Detail("encoded payload is %d bytes, layout requires %d", len(src), l.Size).
			Build()
	}
	return copyRaw(unsafe.Pointer(unsafe.SliceData(src)), l, dst, offset, minAlign, exact)
}

// copyRaw is the single copy routine behind every variant. Nothing is written
// unless the placement validates.
func copyRaw(src unsafe.Pointer, l Layout, dst MutRegion, offset, minAlign uintptr, exact bool) (CopyRecord, error) {
	p, err := place(dst, offset, l, minAlign, exact, errors.PhaseCopy)
	if err != nil {
		return CopyRecord{}, err
	}

	if n := p.End - p.Start; n > 0 {
		to := unsafe.Slice((*byte)(unsafe.Add(dst.BasePtrMut(), p.Start)), n)
		copy(to, unsafe.Slice((*byte)(src), n))
	}
	return recordOf(p), nil
}
