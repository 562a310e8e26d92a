package layout

import (
	"math"
	"testing"

	"github.com/wippyai/slabcopy/errors"
)

type vertex struct {
	Pos   [3]float32
	Flags uint8
	ID    uint64
}

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		got  Layout
		want Layout
	}{
		{"uint8", Of[uint8](), Layout{Size: 1, Align: 1}},
		{"uint32", Of[uint32](), Layout{Size: 4, Align: 4}},
		{"array", Of[[3]uint16](), Layout{Size: 6, Align: 2}},
		{"empty struct", Of[struct{}](), Layout{Size: 0, Align: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	v := Of[vertex]()
	if v.Size%v.Align != 0 {
		t.Errorf("struct size %d is not a multiple of its alignment %d", v.Size, v.Align)
	}
}

func TestArray(t *testing.T) {
	l, err := Array[uint32](5)
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}
	if l.Size != 20 || l.Align != 4 {
		t.Errorf("got %v, want size=20 align=4", l)
	}

	empty, err := Array[uint64](0)
	if err != nil {
		t.Fatalf("Array(0) failed: %v", err)
	}
	if empty.Size != 0 || empty.Align != 8 {
		t.Errorf("got %v, want size=0 align=8", empty)
	}

	if _, err := Array[uint64](math.MaxInt); err == nil {
		t.Error("expected overflow for MaxInt elements of 8 bytes")
	} else {
		wantKind(t, err, errors.KindInvalidLayout)
	}

	if _, err := Array[uint8](-1); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestForSlice(t *testing.T) {
	l := ForSlice(make([]uint16, 7))
	if l.Size != 14 || l.Align != 2 {
		t.Errorf("got %v, want size=14 align=2", l)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"valid", Layout{Size: 12, Align: 4}, false},
		{"zero size", Layout{Size: 0, Align: 16}, false},
		{"zero align", Layout{Size: 4, Align: 0}, true},
		{"odd align", Layout{Size: 4, Align: 6}, true},
		{"padded overflow", Layout{Size: MaxSize, Align: 2}, true},
		{"max size align one", Layout{Size: MaxSize, Align: 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.layout.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLayoutPadded(t *testing.T) {
	if got := (Layout{Size: 5, Align: 4}).Padded(); got != 8 {
		t.Errorf("Padded: got %d, want 8", got)
	}
	if got := (Layout{Size: 8, Align: 8}).Padded(); got != 8 {
		t.Errorf("Padded: got %d, want 8", got)
	}
}
