package slabcopy

import (
	"fmt"
	"unsafe"
)

// Region is read access to one contiguous allocation of Size bytes starting
// at BasePtr. Size never exceeds math.MaxInt.
//
// While a Region is in use no one may write to its bytes.
type Region interface {
	BasePtr() unsafe.Pointer
	Size() uintptr
}

// MutRegion is exclusive access to a region. While a MutRegion is in use no
// other reference of any kind may touch its bytes.
type MutRegion interface {
	Region
	BasePtrMut() unsafe.Pointer
}

// Span is a bounds-checked pointer and length inside a region, meant to be
// handed to code outside Go's type system.
type Span struct {
	ptr unsafe.Pointer
	n   uintptr
}

// Ptr returns the first byte of the span.
func (s Span) Ptr() unsafe.Pointer { return s.ptr }

// Len returns the span length in bytes.
func (s Span) Len() uintptr { return s.n }

// Addr returns the span start as an integer.
func (s Span) Addr() uintptr { return uintptr(s.ptr) }

// Bytes views the span as a byte slice. The caller asserts every byte has
// been written.
func (s Span) Bytes() []byte {
	return unsafe.Slice((*byte)(s.ptr), s.n)
}

// Sub returns the part of the span in [lo, hi). It panics when the range
// does not fit.
func (s Span) Sub(lo, hi uintptr) Span {
	checkRange(lo, hi, s.n)
	return Span{ptr: unsafe.Add(s.ptr, lo), n: hi - lo}
}

func checkRange(lo, hi, size uintptr) {
	if lo > hi || hi > size {
		panic(fmt.Sprintf("slabcopy: range [%d, %d) out of bounds for region of size %d", lo, hi, size))
	}
}

// UninitBytes views every byte of r without asserting any of them were
// written.
func UninitBytes(r Region) UninitSlice[byte] {
	return UninitSlice[byte]{ptr: (*byte)(r.BasePtr()), n: int(r.Size())}
}

// UninitBytesMut is UninitBytes for exclusive access.
func UninitBytesMut(r MutRegion) UninitSlice[byte] {
	return UninitSlice[byte]{ptr: (*byte)(r.BasePtrMut()), n: int(r.Size())}
}

// AssumeInitBytes views every byte of r. The caller asserts every byte was
// written.
func AssumeInitBytes(r Region) []byte {
	return unsafe.Slice((*byte)(r.BasePtr()), r.Size())
}

// AssumeInitBytesMut is AssumeInitBytes for exclusive access.
func AssumeInitBytesMut(r MutRegion) []byte {
	return unsafe.Slice((*byte)(r.BasePtrMut()), r.Size())
}

// AssumeRangeInitBytes views bytes [lo, hi) of r, which the caller asserts
// were written. It panics if the range is outside r.
func AssumeRangeInitBytes(r Region, lo, hi uintptr) []byte {
	return FFIBuffer(r, lo, hi).Bytes()
}

// AssumeRangeInitBytesMut is AssumeRangeInitBytes for exclusive access.
func AssumeRangeInitBytesMut(r MutRegion, lo, hi uintptr) []byte {
	return FFIReadbackBuffer(r, lo, hi).Bytes()
}

// FFIBuffer returns bytes [lo, hi) of r as a Span for an external reader.
// Unlike every other accessor it panics, rather than returning an error, when
// the range is outside r.
func FFIBuffer(r Region, lo, hi uintptr) Span {
	checkRange(lo, hi, r.Size())
	return Span{ptr: unsafe.Add(r.BasePtr(), lo), n: hi - lo}
}

// FFIReadbackBuffer returns bytes [lo, hi) of r as a Span an external routine
// may write to. It panics when the range is outside r.
func FFIReadbackBuffer(r MutRegion, lo, hi uintptr) Span {
	checkRange(lo, hi, r.Size())
	return Span{ptr: unsafe.Add(r.BasePtrMut(), lo), n: hi - lo}
}
