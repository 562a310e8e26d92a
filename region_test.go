package slabcopy

import (
	"testing"
	"unsafe"
)

const (
	canary = 0xAA
	guard  = 16
)

// testRegion is a MutRegion over a canary-filled Go buffer with guard bytes
// on both sides. skew shifts the base off 8-byte alignment.
type testRegion struct {
	backing []uint64
	skew    uintptr
	size    uintptr
}

func newTestRegion(size, skew uintptr) *testRegion {
	words := (size+2*guard+skew)/8 + 1
	r := &testRegion{backing: make([]uint64, words), skew: skew, size: size}
	all := r.all()
	for i := range all {
		all[i] = canary
	}
	return r
}

func (r *testRegion) all() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(r.backing))), len(r.backing)*8)
}

func (r *testRegion) BasePtr() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.backing)), guard+r.skew)
}

func (r *testRegion) BasePtrMut() unsafe.Pointer { return r.BasePtr() }

func (r *testRegion) Size() uintptr { return r.size }

// bytes returns the region's own bytes.
func (r *testRegion) bytes() []byte {
	return r.all()[guard+r.skew : guard+r.skew+r.size]
}

// untouched fails the test if any byte outside [lo, hi) of the region,
// guards included, lost its canary.
func (r *testRegion) untouched(t *testing.T, lo, hi uintptr) {
	t.Helper()
	all := r.all()
	lo += guard + r.skew
	hi += guard + r.skew
	for i, b := range all {
		if uintptr(i) >= lo && uintptr(i) < hi {
			continue
		}
		if b != canary {
			t.Fatalf("byte %d outside [%d, %d) changed to %#x", i, lo, hi, b)
		}
	}
}

func TestRegionViews(t *testing.T) {
	r := newTestRegion(32, 0)

	if got := UninitBytes(r).Len(); got != 32 {
		t.Errorf("UninitBytes len: got %d, want 32", got)
	}
	if got := UninitBytesMut(r).Len(); got != 32 {
		t.Errorf("UninitBytesMut len: got %d, want 32", got)
	}

	b := AssumeInitBytesMut(r)
	b[0] = 1
	b[31] = 2
	if r.bytes()[0] != 1 || r.bytes()[31] != 2 {
		t.Error("AssumeInitBytesMut does not alias the region")
	}
	r.untouched(t, 0, 32)

	if got := AssumeInitBytes(r); len(got) != 32 || got[31] != 2 {
		t.Errorf("AssumeInitBytes: got len %d", len(got))
	}

	sub := AssumeRangeInitBytes(r, 31, 32)
	if len(sub) != 1 || sub[0] != 2 {
		t.Errorf("AssumeRangeInitBytes: got %v", sub)
	}

	mut := AssumeRangeInitBytesMut(r, 4, 8)
	copy(mut, []byte{9, 9, 9, 9})
	if r.bytes()[4] != 9 || r.bytes()[7] != 9 {
		t.Error("AssumeRangeInitBytesMut does not alias the region")
	}
}

func TestFFIBuffer(t *testing.T) {
	r := newTestRegion(64, 3)

	span := FFIBuffer(r, 8, 24)
	if span.Len() != 16 {
		t.Errorf("len: got %d, want 16", span.Len())
	}
	if span.Addr() != uintptr(r.BasePtr())+8 {
		t.Errorf("addr: got %#x, want %#x", span.Addr(), uintptr(r.BasePtr())+8)
	}

	empty := FFIBuffer(r, 64, 64)
	if empty.Len() != 0 {
		t.Errorf("empty span len: got %d", empty.Len())
	}

	out := FFIReadbackBuffer(r, 0, 64).Sub(60, 64)
	copy(out.Bytes(), []byte{1, 2, 3, 4})
	if r.bytes()[63] != 4 {
		t.Error("readback span does not alias the region")
	}
	r.untouched(t, 60, 64)
}

func TestFFIBuffer_Panics(t *testing.T) {
	r := newTestRegion(16, 0)

	tests := []struct {
		name   string
		lo, hi uintptr
	}{
		{"past end", 8, 17},
		{"inverted", 8, 4},
		{"start past end", 17, 17},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("FFIBuffer(%d, %d) did not panic", tc.lo, tc.hi)
				}
			}()
			FFIBuffer(r, tc.lo, tc.hi)
		})
	}
}

func TestSpanSub_Panics(t *testing.T) {
	span := FFIBuffer(newTestRegion(16, 0), 4, 12)
	defer func() {
		if recover() == nil {
			t.Error("Sub past span end did not panic")
		}
	}()
	span.Sub(0, 9)
}

func TestUninitSlice(t *testing.T) {
	r := newTestRegion(16, 0)

	s, err := UninitSliceAt[uint32](r, 0, 4)
	if err != nil {
		t.Fatalf("UninitSliceAt failed: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("len: got %d, want 4", s.Len())
	}

	got := s.Index(2).Write(0xDEADBEEF)
	if *got != 0xDEADBEEF {
		t.Errorf("Write returned %#x", *got)
	}
	r.untouched(t, 8, 12)

	vals := s.CopyFrom([]uint32{1, 2, 3, 4})
	if vals[3] != 4 || s.AssumeInit()[0] != 1 {
		t.Errorf("CopyFrom: got %v", vals)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("CopyFrom with mismatched length did not panic")
			}
		}()
		s.CopyFrom([]uint32{1})
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Index out of range did not panic")
			}
		}()
		s.Index(4)
	}()
}
