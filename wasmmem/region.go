package wasmmem

import (
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/slabcopy/errors"
)

// Region is a slabcopy region backed by wazero linear memory.
type Region struct {
	mem    api.Memory
	offset uint32
	size   uint32
	whole  bool
}

// New returns a region over all of mem. Its size follows the memory as it
// grows.
func New(mem api.Memory) *Region {
	return &Region{mem: mem, whole: true}
}

// FromModule returns a region over the memory a module exports.
func FromModule(mod api.Module) (*Region, error) {
	for name := range mod.ExportedMemoryDefinitions() {
		if mem := mod.ExportedMemory(name); mem != nil {
			return New(mem), nil
		}
	}
	return nil, errors.New(errors.PhaseWasm, errors.KindInvalidInput).
		Detail("module %q exports no memory", mod.Name()).
		Build()
}

// Window returns a region over guest addresses [offset, offset+size).
func Window(mem api.Memory, offset, size uint32) (*Region, error) {
	if uint64(offset)+uint64(size) > uint64(mem.Size()) {
		return nil, errors.New(errors.PhaseWasm, errors.KindOffsetOutOfBounds).
			Value(offset).
			Detail("window [%d, %d) outside linear memory of %d bytes", offset, uint64(offset)+uint64(size), mem.Size()).
			Build()
	}
	return &Region{mem: mem, offset: offset, size: size}, nil
}

// Offset returns the guest address of the region's first byte.
func (r *Region) Offset() uint32 { return r.offset }

func (r *Region) length() uint32 {
	if r.whole {
		return r.mem.Size()
	}
	return r.size
}

// BasePtr returns the host address of the region. wazero's Read returns a
// view of linear memory, not a copy.
func (r *Region) BasePtr() unsafe.Pointer {
	view, ok := r.mem.Read(r.offset, r.length())
	if !ok {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(view))
}

func (r *Region) BasePtrMut() unsafe.Pointer { return r.BasePtr() }

func (r *Region) Size() uintptr { return uintptr(r.length()) }

// GuestPtr converts a host pointer inside the region to a guest address.
func (r *Region) GuestPtr(p unsafe.Pointer) (uint32, error) {
	base := uintptr(r.BasePtr())
	addr := uintptr(p)
	if base == 0 || addr < base || addr-base > uintptr(r.length()) {
		return 0, errors.New(errors.PhaseWasm, errors.KindOffsetOutOfBounds).
			Value(addr).
			Detail("host address %#x is not inside the region", addr).
			Build()
	}
	return r.offset + uint32(addr-base), nil
}
