// Command slabplan plans where WIT-typed payloads land in a memory region.
//
// Each TYPE argument is placed in order, the way a caller would copy
// Canonical ABI encoded values one after another:
//
//	slabplan place --size 1KB --align 16 u32 'record{x:f32,y:f32}' list<u8>
//	slabplan view --size 4KB --wasm u64 'tuple<u8,u32>'
//
// place prints the resulting offsets and a byte map. view opens an
// interactive editor for the same plan.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
