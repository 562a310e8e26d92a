package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/slabcopy"
)

func testOptions(size datasize.ByteSize) planOptions {
	opts := defaultOptions()
	opts.size = sizeValue{ByteSize: size}
	return opts
}

func TestBuildPlan(t *testing.T) {
	for _, wasm := range []bool{false, true} {
		name := "mmap"
		if wasm {
			name = "wasm"
		}
		t.Run(name, func(t *testing.T) {
			opts := testOptions(64)
			opts.offset = 1
			opts.wasm = wasm

			p, err := buildPlan(context.Background(), opts, []string{"u32", "u8", "u64"})
			require.NoError(t, err)
			defer p.Close()
			require.NoError(t, p.err)

			want := []slabcopy.CopyRecord{
				{StartOffset: 4, EndOffset: 8, EndOffsetPadded: 8},
				{StartOffset: 8, EndOffset: 9, EndOffsetPadded: 9},
				{StartOffset: 16, EndOffset: 24, EndOffsetPadded: 24},
			}
			for i, e := range p.entries {
				assert.True(t, e.placed, "entry %d", i)
				assert.Equal(t, want[i], e.record, "entry %d", i)
			}
			assert.Equal(t, uintptr(24), p.used())

			got := slabcopy.AssumeRangeInitBytes(p.target, 16, 24)
			assert.Equal(t, bytes.Repeat([]byte{3}, 8), got)
		})
	}
}

func TestBuildPlan_AlignedVersusPacked(t *testing.T) {
	names := []string{"u32", "u32", "u32"}

	opts := testOptions(128)
	opts.align = 16
	aligned, err := buildPlan(context.Background(), opts, names)
	require.NoError(t, err)
	defer aligned.Close()
	assert.Equal(t, uintptr(16), aligned.entries[1].record.StartOffset)
	assert.Equal(t, uintptr(32), aligned.entries[2].record.StartOffset)

	opts.packed = true
	packed, err := buildPlan(context.Background(), opts, names)
	require.NoError(t, err)
	defer packed.Close()
	assert.Equal(t, uintptr(4), packed.entries[1].record.StartOffset)
	assert.Equal(t, uintptr(8), packed.entries[2].record.StartOffset)
}

func TestBuildPlan_StopsAtFirstFailure(t *testing.T) {
	opts := testOptions(16)
	p, err := buildPlan(context.Background(), opts, []string{"u64", "u64", "u64"})
	require.NoError(t, err)
	defer p.Close()

	assert.ErrorIs(t, p.err, slabcopy.ErrOutOfMemory)
	assert.Equal(t, 2, p.failed)
	assert.True(t, p.entries[1].placed)
	assert.False(t, p.entries[2].placed)
	assert.Equal(t, "out of memory", errorKind(p.err))
}

func TestBuildPlan_ExactUnaligned(t *testing.T) {
	opts := testOptions(64)
	opts.offset = 2
	opts.exact = true

	p, err := buildPlan(context.Background(), opts, []string{"u32"})
	require.NoError(t, err)
	defer p.Close()

	assert.ErrorIs(t, p.err, slabcopy.ErrRequestedOffsetUnaligned)
	assert.Equal(t, "unaligned offset", errorKind(p.err))
}

func TestBuildPlan_WasmGrows(t *testing.T) {
	opts := testOptions(3 * datasize.ByteSize(wasmPageSize))
	opts.wasm = true
	opts.offset = 2*wasmPageSize + 100

	p, err := buildPlan(context.Background(), opts, []string{"u64"})
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.err)
	assert.Equal(t, uintptr(3*wasmPageSize), p.target.Size())
	assert.Equal(t, uintptr(2*wasmPageSize+104), p.entries[0].record.StartOffset)
}

func TestBuildPlan_Errors(t *testing.T) {
	_, err := buildPlan(context.Background(), testOptions(0), []string{"u8"})
	assert.Error(t, err)

	_, err = buildPlan(context.Background(), testOptions(64), []string{"u8", "nope"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nope"))
}
