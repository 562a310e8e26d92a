package slabcopy

import (
	stderrors "errors"
	"testing"
	"unsafe"

	"github.com/wippyai/slabcopy/errors"
	"github.com/wippyai/slabcopy/region"
)

type overlapHit struct {
	Pos    [3]float32
	Normal [3]float32
}

var hitsToWrite = [2]overlapHit{
	{Pos: [3]float32{1, 2, 10}, Normal: [3]float32{0, 1, 0}},
	{Pos: [3]float32{11, 5, 100}, Normal: [3]float32{0, 0, 1}},
}

// getHits stands in for a foreign physics query writing into a caller buffer.
func getHits(out unsafe.Pointer, maxHits int) int {
	raw, err := region.FromRawParts(out, uintptr(maxHits)*unsafe.Sizeof(overlapHit{}))
	if err != nil {
		panic(err)
	}
	if _, err := CopySliceTo(hitsToWrite[:], raw.Borrow(), 0); err != nil {
		panic(err)
	}
	return len(hitsToWrite)
}

func TestReadbackSliceFromFFI(t *testing.T) {
	const maxHits = 32
	hits := region.NewFixed[[maxHits]overlapHit]()

	got, err := ReadbackSliceFromFFI[overlapHit](hits, func(ptr unsafe.Pointer, capacity uintptr) (int, error) {
		if capacity != maxHits*unsafe.Sizeof(overlapHit{}) {
			t.Errorf("capacity: got %d, want %d", capacity, maxHits*unsafe.Sizeof(overlapHit{}))
		}
		return getHits(ptr, maxHits), nil
	})
	if err != nil {
		t.Fatalf("ReadbackSliceFromFFI failed: %v", err)
	}
	if len(got) != len(hitsToWrite) {
		t.Fatalf("hits: got %d, want %d", len(got), len(hitsToWrite))
	}
	for i := range got {
		if got[i] != hitsToWrite[i] {
			t.Errorf("hit %d: got %+v, want %+v", i, got[i], hitsToWrite[i])
		}
	}
}

func TestReadbackSliceFromFFI_CountTooLarge(t *testing.T) {
	r := newTestRegion(16, 0)

	_, err := ReadbackSliceFromFFI[uint32](r, func(unsafe.Pointer, uintptr) (int, error) {
		return 5, nil
	})
	wantErr(t, err, ErrOutOfMemory)

	_, err = ReadbackSliceFromFFI[uint32](r, func(unsafe.Pointer, uintptr) (int, error) {
		return -1, nil
	})
	wantErr(t, err, ErrInvalidLayout)

	var e *errors.Error
	if !stderrors.As(err, &e) || e.Phase != errors.PhaseReadback {
		t.Errorf("expected readback phase, got %v", err)
	}
}

func TestReadbackSliceFromFFI_SkewedBase(t *testing.T) {
	r := newTestRegion(16, 2)

	got, err := ReadbackSliceFromFFI[uint32](r, func(ptr unsafe.Pointer, capacity uintptr) (int, error) {
		if uintptr(ptr)%4 != 0 {
			t.Errorf("pointer %#x is not aligned", uintptr(ptr))
		}
		if capacity != 14 {
			t.Errorf("capacity: got %d, want 14", capacity)
		}
		out := unsafe.Slice((*uint32)(ptr), 3)
		out[0], out[1], out[2] = 1, 2, 3
		return 3, nil
	})
	if err != nil {
		t.Fatalf("ReadbackSliceFromFFI failed: %v", err)
	}
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("got %v", got)
	}
}

func TestReadbackFromFFI(t *testing.T) {
	r := newTestRegion(16, 1)

	got, err := ReadbackFromFFI[uint64](r, func(ptr unsafe.Pointer) error {
		*(*uint64)(ptr) = 0x1122334455667788
		return nil
	})
	if err != nil {
		t.Fatalf("ReadbackFromFFI failed: %v", err)
	}
	if *got != 0x1122334455667788 {
		t.Errorf("got %#x", *got)
	}
	if uintptr(unsafe.Pointer(got))%8 != 0 {
		t.Error("result is misaligned")
	}
}

func TestReadbackFromFFI_Errors(t *testing.T) {
	called := false
	_, err := ReadbackFromFFI[uint64](newTestRegion(4, 0), func(unsafe.Pointer) error {
		called = true
		return nil
	})
	wantErr(t, err, ErrOutOfMemory)
	if called {
		t.Error("fill must not run when placement fails")
	}

	cause := stderrors.New("device lost")
	_, err = ReadbackFromFFI[uint64](newTestRegion(16, 0), func(unsafe.Pointer) error {
		return cause
	})
	if !stderrors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	if !stderrors.Is(err, errors.Sentinel(errors.KindExternal)) {
		t.Errorf("expected external kind, got %v", err)
	}
}
