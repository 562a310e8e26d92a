// Package slabcopy copies plain Go values into raw memory regions that may be
// wholly or partially uninitialized, and reads them back out.
//
// A region is any single contiguous allocation the caller can describe by a
// base pointer and a size: an anonymous mapping, a GPU-visible buffer handed
// over by a driver, a WebAssembly linear memory, or a Go array. Every copy and
// read validates alignment and bounds before touching a byte, and no
// operation produces a typed view of memory the caller has not asserted to be
// initialized.
//
// # Architecture Overview
//
//	slabcopy/            Region contract, copy, read and readback operations
//	├── internal/layout/ Placement algorithm, checked math, WIT layouts
//	├── errors/          Structured error types
//	├── region/          Region providers: raw, mmap heap, fixed, slice
//	├── wasmmem/         wazero linear memory as a region
//	└── cmd/slabplan/    Placement planner CLI and TUI
//
// # Quick Start
//
// Copy a value into a region and read it back:
//
//	heap, err := region.NewHeap(slabcopy.Layout{Size: 4096, Align: 64})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer heap.Close()
//
//	rec, err := slabcopy.CopyToWithAlign(&vertex, heap, 0, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := slabcopy.ReadAt[Vertex](heap, rec.StartOffset)
//
// # Placement
//
// Every operation computes a placement from (requested offset, payload
// layout, minimum alignment, exact flag). The effective alignment is the
// larger of the payload's alignment and the floor rounded up to a power of
// two. Alignment applies to the absolute address, so a region whose base is
// not aligned still yields correctly aligned payloads.
//
// Floating operations may move the payload forward to the next aligned
// offset. Exact operations fail with ErrRequestedOffsetUnaligned instead.
// Reads are always exact. Arithmetic overflow is reported as
// ErrInvalidLayout before any bounds check, so the error for a given request
// does not depend on region size.
//
// Bytes between a payload's end and its padded end are never written.
//
// # Plain Types
//
// Only types without Go pointers may be moved into raw memory: numbers,
// bools, and arrays and structs of them. Using a type that carries pointers,
// slices, strings, maps, channels, funcs or interfaces panics.
//
// # Aliasing
//
// Go cannot enforce exclusive access. Callers must ensure that while a
// MutRegion is in use no other reference reads or writes its bytes, and that
// while a Region is read nothing writes to it. Regions are not safe for
// concurrent use.
//
// # Initialization
//
// Memory allocated by Go is always zeroed, so for Go-backed regions the
// Uninit wrappers are a formality. For foreign memory they keep "allocated"
// apart from "written": reading through one requires an explicit AssumeInit.
package slabcopy
