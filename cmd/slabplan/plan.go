package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"math"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/slabcopy"
	"github.com/wippyai/slabcopy/region"
	"github.com/wippyai/slabcopy/wasmmem"
)

const wasmPageSize = 65536

// memoryModule exports a single page of linear memory as "memory".
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

type entry struct {
	name   string
	layout slabcopy.Layout
	fields map[string]uintptr
	record slabcopy.CopyRecord
	placed bool
}

// plan is the outcome of copying one payload per type into a fresh region.
// Placement stops at the first failure.
type plan struct {
	target  slabcopy.MutRegion
	opts    planOptions
	entries []entry
	err     error
	failed  int
	close   func() error
}

// buildPlan allocates the target region and copies a marker payload per
// type. The payload for entry i is filled with byte i+1, so the region can be
// checked afterwards.
func buildPlan(ctx context.Context, opts planOptions, names []string) (*plan, error) {
	size := opts.size.Bytes()
	if size == 0 || size > math.MaxInt32 {
		return nil, fmt.Errorf("region size %s is out of range", opts.size)
	}

	target, closeFn, err := allocateTarget(ctx, uintptr(size), opts.wasm)
	if err != nil {
		return nil, err
	}

	p := &plan{target: target, opts: opts, failed: -1, close: closeFn}
	calc := slabcopy.NewLayoutCalculator()

	for i, name := range names {
		t, err := parseType(name)
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		info := calc.Calculate(t)
		p.entries = append(p.entries, entry{name: name, layout: info.Layout, fields: info.FieldOffs})

		if p.err != nil {
			continue
		}
		if err := p.place(i); err != nil {
			p.err = err
			p.failed = i
		}
	}

	log.Debug("plan built",
		zap.Uint64("size", size),
		zap.Bool("wasm", opts.wasm),
		zap.Int("entries", len(p.entries)),
		zap.Error(p.err),
	)
	return p, nil
}

func (p *plan) place(i int) error {
	e := &p.entries[i]

	offset, minAlign, exact := uintptr(p.opts.offset), uintptr(p.opts.align), p.opts.exact
	if i > 0 {
		offset, exact = p.entries[i-1].record.EndOffset, false
		if p.opts.packed {
			minAlign = 1
		}
	}

	payload := bytes.Repeat([]byte{byte(i + 1)}, int(e.layout.Size))
	rec, err := slabcopy.CopyEncodedTo(payload, e.layout, p.target, offset, minAlign, exact)
	if err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}

	written := slabcopy.AssumeRangeInitBytes(p.target, rec.StartOffset, rec.EndOffset)
	if !bytes.Equal(written, payload) {
		return fmt.Errorf("%s: payload did not survive the copy", e.name)
	}

	e.record = rec
	e.placed = true
	return nil
}

// used returns the end of the last placed payload, padding included.
func (p *plan) used() uintptr {
	var end uintptr
	for _, e := range p.entries {
		if e.placed {
			end = max(end, e.record.EndOffsetPadded)
		}
	}
	return end
}

// Close releases the region. It is safe to call more than once.
func (p *plan) Close() error {
	if p.close == nil {
		return nil
	}
	err := p.close()
	p.close = nil
	return err
}

func allocateTarget(ctx context.Context, size uintptr, wasm bool) (slabcopy.MutRegion, func() error, error) {
	if !wasm {
		h, err := region.NewHeap(slabcopy.Layout{Size: size, Align: 64})
		if err != nil {
			return nil, nil, err
		}
		return h, h.Close, nil
	}

	rt := wazero.NewRuntime(ctx)
	mod, err := rt.Instantiate(ctx, memoryModule)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, nil, err
	}

	mem := mod.Memory()
	pages := (uint32(size) + wasmPageSize - 1) / wasmPageSize
	if pages > 1 {
		if _, ok := mem.Grow(pages - 1); !ok {
			_ = rt.Close(ctx)
			return nil, nil, fmt.Errorf("cannot grow linear memory to %d pages", pages)
		}
	}

	w, err := wasmmem.Window(mem, 0, uint32(size))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, nil, err
	}
	return w, func() error { return rt.Close(ctx) }, nil
}

// errorKind names the placement failure for display.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, slabcopy.ErrOutOfMemory):
		return "out of memory"
	case stderrors.Is(err, slabcopy.ErrOffsetOutOfBounds):
		return "offset out of bounds"
	case stderrors.Is(err, slabcopy.ErrRequestedOffsetUnaligned):
		return "unaligned offset"
	case stderrors.Is(err, slabcopy.ErrInvalidLayout):
		return "invalid layout"
	}
	return "error"
}
