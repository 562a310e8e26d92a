// Package region provides concrete regions for slabcopy.
//
// Each type here supplies the base pointer and size of one allocation and
// satisfies slabcopy.Region and slabcopy.MutRegion:
//
//   - Raw / Borrowed: memory owned elsewhere, described by pointer and size
//   - Heap: an owned allocation outside the Go heap (an anonymous mapping on
//     unix), freed by Close
//   - Fixed: fixed-capacity storage embedded by value
//   - Slice: the backing array of a Go slice, with Extend for growable use
//
// None of the types are safe for concurrent use.
//
// # Logging
//
// Heap mapping and unmapping is logged at debug level through Logger. It is a
// no-op logger unless SetLogger is called.
package region
