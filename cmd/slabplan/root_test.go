package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wippyai/slabcopy"
	"github.com/wippyai/slabcopy/region"
	"github.com/wippyai/slabcopy/wasmmem"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlaceCommand(t *testing.T) {
	out, err := execute(t, "place", "--size", "1KB", "--offset", "3", "--align", "8", "u32", "record{x: f32, y: u8}")
	require.NoError(t, err)

	assert.Contains(t, out, "region 1.0 KiB (mmap)")
	assert.Contains(t, out, "record{x: f32, y: u8}")
	assert.Contains(t, out, "000000  ")
}

func TestPlaceCommand_Fields(t *testing.T) {
	out, err := execute(t, "place", "--size", "64", "--fields", "record{a: u8, b: u32}")
	require.NoError(t, err)

	assert.Contains(t, out, "a                +0 (at 0)")
	assert.Contains(t, out, "b                +4 (at 4)")
}

func TestPlaceCommand_Wasm(t *testing.T) {
	out, err := execute(t, "place", "--wasm", "--size", "128KB", "--offset", "65537", "u64")
	require.NoError(t, err)
	assert.Contains(t, out, "(wasm)")
	assert.Contains(t, out, "65544")
}

func TestPlaceCommand_Failure(t *testing.T) {
	out, err := execute(t, "place", "--size", "8", "--align", "16", "u64")
	require.Error(t, err)
	assert.ErrorIs(t, err, slabcopy.ErrOutOfMemory)
	assert.Contains(t, out, "out of memory")
}

func TestPlaceCommand_BadArgs(t *testing.T) {
	_, err := execute(t, "place")
	assert.Error(t, err)

	_, err = execute(t, "place", "--size", "12Kb", "u8")
	assert.Error(t, err)

	_, err = execute(t, "place", "list<")
	assert.Error(t, err)
}

func TestPlaceCommand_Verbose(t *testing.T) {
	t.Cleanup(func() {
		log = zap.NewNop()
		region.SetLogger(zap.NewNop())
		wasmmem.SetLogger(zap.NewNop())
	})

	_, err := execute(t, "place", "-v", "--size", "64", "u8")
	require.NoError(t, err)
}
