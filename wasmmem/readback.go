package wasmmem

import (
	"context"
	"unsafe"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/slabcopy"
	"github.com/wippyai/slabcopy/errors"
)

// call invokes fn(ptr, capacity) and returns the reported element count.
func call(ctx context.Context, fn api.Function, r *Region, ptr unsafe.Pointer, capacity uintptr) (uint32, int, error) {
	guest, err := r.GuestPtr(ptr)
	if err != nil {
		return 0, 0, err
	}

	results, err := fn.Call(ctx, api.EncodeU32(guest), api.EncodeU32(uint32(capacity)))
	if err != nil {
		return 0, 0, errors.External(errors.PhaseWasm, "guest readback call failed", err)
	}
	if len(results) != 1 {
		return 0, 0, errors.New(errors.PhaseWasm, errors.KindInvalidInput).
			Detail("guest readback function returned %d results, expected 1", len(results)).
			Build()
	}

	count := int(api.DecodeI32(results[0]))
	Logger().Debug("guest readback",
		zap.String("func", funcName(fn.Definition())),
		zap.Uint32("ptr", guest),
		zap.Uintptr("capacity", capacity),
		zap.Int("count", count),
	)
	return guest, count, nil
}

// funcName prefers the export name, since guest modules without a name
// section leave Name empty.
func funcName(def api.FunctionDefinition) string {
	if names := def.ExportNames(); len(names) > 0 {
		return names[0]
	}
	return def.Name()
}

// Readback has the guest function fn write one T into r and returns it.
// fn must report a count of 1.
func Readback[T any](ctx context.Context, r *Region, fn api.Function) (*T, error) {
	var guest uint32
	_, err := slabcopy.ReadbackFromFFI[T](r, func(ptr unsafe.Pointer) error {
		g, count, err := call(ctx, fn, r, ptr, slabcopy.LayoutOf[T]().Size)
		if err != nil {
			return err
		}
		if count != 1 {
			return errors.New(errors.PhaseWasm, errors.KindInvalidInput).
				Value(count).
				Detail("guest reported %d values, expected 1", count).
				Build()
		}
		guest = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slabcopy.ReadAtMut[T](r, uintptr(guest-r.offset))
}

// ReadbackSlice has the guest function fn write up to capacity bytes of T
// values into r and returns as many as it reports.
func ReadbackSlice[T any](ctx context.Context, r *Region, fn api.Function) ([]T, error) {
	var guest uint32
	vals, err := slabcopy.ReadbackSliceFromFFI[T](r, func(ptr unsafe.Pointer, capacity uintptr) (int, error) {
		g, count, err := call(ctx, fn, r, ptr, capacity)
		if err != nil {
			return 0, err
		}
		guest = g
		return count, nil
	})
	if err != nil {
		return nil, err
	}
	return slabcopy.ReadSliceAtMut[T](r, uintptr(guest-r.offset), len(vals))
}
