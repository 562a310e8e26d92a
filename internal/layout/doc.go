// Package layout computes where a payload may live inside a raw region.
//
// It holds the Layout type (size and power-of-two alignment), overflow-checked
// arithmetic, the placement algorithm behind every copy and read, the check
// that a Go type is plain (pointer-free and so safe to move as bytes), and a
// Canonical ABI layout calculator for WIT types.
//
// # Placement
//
// Place turns (region base, region size, requested offset, payload layout,
// minimum alignment, exact flag) into a Placement or an error:
//
//  1. align = max(layout align, next power of two of the floor)
//  2. start = smallest offset >= requested whose absolute address is aligned
//  3. exact mode fails if start moved
//  4. end = start+size, endPadded = start+size rounded up to align
//  5. start must lie inside the region, endPadded must not pass its end
//
// Arithmetic overflow in steps 1, 2 and 4 is reported before any bounds
// check, so the error precedence is fixed.
//
// This package is internal to slabcopy.
package layout
