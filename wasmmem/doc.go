// Package wasmmem exposes WebAssembly linear memory, as provided by wazero,
// as slabcopy regions.
//
// A Region covers either all of a module's memory or a fixed window of it.
// The base pointer is looked up on every call, because growing linear memory
// may move it. Pointers and slices obtained from a Region must not be used
// after the guest runs code that could call memory.grow.
//
// # Guest Readback
//
// Readback and ReadbackSlice hand a validated location to an exported guest
// function with the signature
//
//	(func (param $ptr i32) (param $capacity i32) (result i32))
//
// where capacity is in bytes and the result is the number of elements
// written. After the call the values are re-read at the same guest address,
// so a guest that grew its memory still yields valid results.
package wasmmem
