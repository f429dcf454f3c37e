package main

import "testing"

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

import (
	"github.com/timtadh/screenedit"
	"github.com/timtadh/screenedit/editor"
)

func noEnv() editor.Env {
	return editor.MapEnv(map[string]string{})
}

func TestParseArgsDefaults(t *testing.T) {
	opts, err := ParseArgs([]string{"12"}, noEnv())
	require.NoError(t, err)
	assert.Equal(t, int64(12), opts.Screen)
	assert.Equal(t, "figforth_blocks", opts.File)
	assert.Equal(t, "emacs", opts.Editor)
	assert.Equal(t, screenedit.DefaultGeometry(), opts.Geometry)
	assert.False(t, opts.Print)
	assert.False(t, opts.Verbose)
}

func TestParseArgsOptions(t *testing.T) {
	opts, err := ParseArgs([]string{
		"-e", "vi", "--file=blocks.fb", "--chars-per-line=32", "--lines-per-screen=8", "-p", "-v", "3",
	}, editor.MapEnv(map[string]string{"VISUAL": "code"}))
	require.NoError(t, err)
	assert.Equal(t, int64(3), opts.Screen)
	assert.Equal(t, "vi", opts.Editor)
	assert.Equal(t, "blocks.fb", opts.File)
	assert.Equal(t, screenedit.Geometry{CharsPerLine: 32, LinesPerScreen: 8}, opts.Geometry)
	assert.True(t, opts.Print)
	assert.True(t, opts.Verbose)
}

func TestParseArgsEditorFromEnv(t *testing.T) {
	opts, err := ParseArgs([]string{"0"}, editor.MapEnv(map[string]string{"EDITOR": "nano"}))
	require.NoError(t, err)
	assert.Equal(t, "nano", opts.Editor)
}

func TestParseArgsErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		argv []string
		code int
	}{
		{name: "help", argv: []string{"-h"}, code: ErrorCodes["usage"]},
		{name: "missing screen", argv: []string{}, code: ErrorCodes["opts"]},
		{name: "two screens", argv: []string{"1", "2"}, code: ErrorCodes["opts"]},
		{name: "not an int", argv: []string{"twelve"}, code: ErrorCodes["badint"]},
		{name: "float", argv: []string{"1.5"}, code: ErrorCodes["badint"]},
		{name: "unknown flag", argv: []string{"--bogus", "1"}, code: ErrorCodes["opts"]},
		{name: "bad width", argv: []string{"--chars-per-line=wide", "1"}, code: ErrorCodes["badint"]},
		{name: "zero lines", argv: []string{"--lines-per-screen=0", "1"}, code: ErrorCodes["badgeom"]},
		{name: "directory", argv: []string{"-f", dir, "1"}, code: ErrorCodes["badfile"]},
		{name: "screen past last offset", argv: []string{"18014398509481986"}, code: ErrorCodes["badint"]},
		{name: "screen too large for int64", argv: []string{"99999999999999999999"}, code: ErrorCodes["badint"]},
		{name: "screen larger than uint32", argv: []string{"--chars-per-line=4294967296", "--lines-per-screen=1", "0"}, code: ErrorCodes["badgeom"]},
		{name: "screen size overflows", argv: []string{"--chars-per-line=4611686018427387904", "--lines-per-screen=4", "0"}, code: ErrorCodes["badgeom"]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(tc.argv, noEnv())
			require.Error(t, err)
			ue, ok := err.(*UsageError)
			require.True(t, ok, "expected a usage error, got %T", err)
			assert.Equal(t, tc.code, ue.Code)
		})
	}
}

func blockfile(t *testing.T) (string, []byte) {
	path := filepath.Join(t.TempDir(), "figforth_blocks")
	contents := append(bytes.Repeat([]byte(" "), 2*1024), bytes.Repeat([]byte("A"), 1024)...)
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path, contents
}

func TestRunEdit(t *testing.T) {
	path, contents := blockfile(t)
	opts, err := ParseArgs([]string{"-f", path, "-e", "stub", "2"}, noEnv())
	require.NoError(t, err)

	var ran string
	runner := editor.RunnerFunc(func(name string, args ...string) (int, error) {
		ran = name
		return 0, os.WriteFile(args[len(args)-1], []byte("HELLO\n"), 0644)
	})
	var logs bytes.Buffer
	require.NoError(t, Run(opts, runner, NewLogger(&logs, false), &bytes.Buffer{}))

	assert.Equal(t, "stub", ran)
	assert.Contains(t, logs.String(), "screen written")
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, contents[:2*1024], got[:2*1024])
	assert.Equal(t, "HELLO"+strings.Repeat(" ", 1019), string(got[2*1024:]))
}

func TestRunUnchanged(t *testing.T) {
	path, contents := blockfile(t)
	opts, err := ParseArgs([]string{"-f", path, "2"}, noEnv())
	require.NoError(t, err)

	runner := editor.RunnerFunc(func(name string, args ...string) (int, error) {
		return 0, nil
	})
	var logs bytes.Buffer
	require.NoError(t, Run(opts, runner, NewLogger(&logs, false), &bytes.Buffer{}))
	assert.Contains(t, logs.String(), "screen unchanged")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, contents, got)
}

func TestRunPrint(t *testing.T) {
	path, _ := blockfile(t)
	opts, err := ParseArgs([]string{"--print", "-f", path, "2"}, noEnv())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(opts, nil, NewLogger(&bytes.Buffer{}, false), &out))
	assert.Equal(t, strings.Repeat(strings.Repeat("A", 64)+"\n", 16), out.String())
}

func TestRunMissingFile(t *testing.T) {
	opts, err := ParseArgs([]string{"-f", filepath.Join(t.TempDir(), "none"), "0"}, noEnv())
	require.NoError(t, err)
	err = Run(opts, nil, NewLogger(&bytes.Buffer{}, false), &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseArgsLastScreen(t *testing.T) {
	last := screenedit.DefaultGeometry().MaxScreen()
	opts, err := ParseArgs([]string{strconv.FormatInt(last, 10)}, noEnv())
	require.NoError(t, err)
	assert.Equal(t, last, opts.Screen)
}

func TestRunBadGeometry(t *testing.T) {
	path, contents := blockfile(t)
	opts := &Options{
		Screen:   0,
		File:     path,
		Geometry: screenedit.Geometry{CharsPerLine: 1 << 32, LinesPerScreen: 1},
	}
	err := Run(opts, nil, NewLogger(&bytes.Buffer{}, false), &bytes.Buffer{})
	require.Error(t, err)
	got, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, contents, got)
}

func TestVerboseLogger(t *testing.T) {
	var logs bytes.Buffer
	log := NewLogger(&logs, true)
	log.Debug("step")
	assert.Contains(t, logs.String(), "step")

	logs.Reset()
	log = NewLogger(&logs, false)
	log.Debug("step")
	assert.Empty(t, logs.String())
}
