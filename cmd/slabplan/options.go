package main

import (
	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"
)

// sizeValue adapts datasize.ByteSize to a flag value.
type sizeValue struct {
	datasize.ByteSize
}

func (s *sizeValue) Set(v string) error { return s.UnmarshalText([]byte(v)) }

func (s *sizeValue) Type() string { return "size" }

type planOptions struct {
	size   sizeValue
	offset uint64
	align  uint64
	exact  bool
	packed bool
	wasm   bool
}

func defaultOptions() planOptions {
	return planOptions{size: sizeValue{ByteSize: datasize.KB}, align: 1}
}

func (o *planOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Var(&o.size, "size", "region size, e.g. 512, 4KB, 1MB")
	f.Uint64Var(&o.offset, "offset", o.offset, "requested offset of the first payload")
	f.Uint64Var(&o.align, "align", o.align, "minimum alignment, rounded up to a power of two")
	f.BoolVar(&o.exact, "exact", o.exact, "fail instead of moving an unaligned first payload")
	f.BoolVar(&o.packed, "packed", o.packed, "apply --align and --exact to the first payload only")
	f.BoolVar(&o.wasm, "wasm", o.wasm, "place into WebAssembly linear memory instead of an anonymous mapping")
}
