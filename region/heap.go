package region

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/slabcopy/errors"
	"github.com/wippyai/slabcopy/internal/layout"
)

// Heap is an owned allocation whose bytes start out unwritten. On unix it is
// an anonymous private mapping outside the Go heap; elsewhere an aligned Go
// buffer.
//
// A closed Heap reports size zero, so every later placement fails instead of
// touching freed memory.
type Heap struct {
	mem    []byte
	base   unsafe.Pointer
	layout layout.Layout
	closed bool
}

// NewHeap allocates l.Size bytes aligned to l.Align. A zero size is rejected
// with KindInvalidInput, and an alignment above the page size with
// KindInvalidLayout.
func NewHeap(l layout.Layout) (*Heap, error) {
	if err := l.Validate(); err != nil {
		return nil, errors.WithPhase(err, errors.PhaseAlloc)
	}
	if l.Size == 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "cannot allocate a heap region of size 0")
	}
	if page := pageSize(); l.Align > page {
		return nil, errors.New(errors.PhaseAlloc, errors.KindInvalidLayout).
			Value(l.Align).
			Detail("alignment %d exceeds page size %d", l.Align, page).
			Build()
	}

	mem, base, err := allocate(l)
	if err != nil {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, l.Size, l.Align, err)
	}

	Logger().Debug("heap region allocated",
		zap.Uintptr("size", l.Size),
		zap.Uintptr("align", l.Align),
		zap.Uintptr("base", uintptr(base)),
	)
	return &Heap{mem: mem, base: base, layout: l}, nil
}

func (h *Heap) BasePtr() unsafe.Pointer { return h.base }

func (h *Heap) BasePtrMut() unsafe.Pointer { return h.base }

func (h *Heap) Size() uintptr {
	if h.closed {
		return 0
	}
	return h.layout.Size
}

// Close frees the allocation. Views obtained earlier must not be used
// afterwards. Close is idempotent.
func (h *Heap) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	mem := h.mem
	h.mem = nil
	h.base = nil
	if err := release(mem); err != nil {
		return errors.AllocationFailed(errors.PhaseAlloc, h.layout.Size, h.layout.Align, err)
	}

	Logger().Debug("heap region released", zap.Uintptr("size", h.layout.Size))
	return nil
}
