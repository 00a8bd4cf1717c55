package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func lines(s string, prefix string) []string {
	var out []string
	for _, l := range strings.Split(strings.TrimSpace(s), "\n") {
		if strings.HasPrefix(l, prefix) {
			out = append(out, l)
		}
	}
	return out
}

func TestRun_GenCycle(t *testing.T) {
	code, out, _ := runCLI(t, "", "-gen", "cycle:5")
	require.Equal(t, exitOK, code)
	assert.Equal(t, strings.Join([]string{
		"maximal: [0 1 2 3]",
		"maximal: [0 1 2 4]",
		"duplicated: [0 1 2 3]",
		"maximal: [0 1 3 4]",
		"maximal: [0 2 3 4]",
		"duplicated: [0 1 3 4]",
		"maximal: [1 2 3 4]",
		"duplicated: [0 1 2 3]",
		"duplicated: [0 2 3 4]",
		"duplicated: [0 1 2 4]",
		"duplicated: [1 2 3 4]",
	}, "\n")+"\n", out)
}

func TestRun_FileOneBased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("# triangle\nvertices 3\n1-2-3-1\n"), 0o600))

	code, out, _ := runCLI(t, "", "-one-based", "-verify", path)
	require.Equal(t, exitOK, code)
	assert.Equal(t, []string{"maximal: [1 2]", "maximal: [1 3]", "maximal: [2 3]"}, lines(out, "maximal:"))
	assert.Len(t, lines(out, "duplicated:"), 4)
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, "0-1 1-2", "-")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "maximal: [0 1 2]\n", out)
}

func TestRun_Alternating(t *testing.T) {
	fixture := "vertices 8\n0-1 0-2 0-3 1-2 1-3 2-3 3-4 4-5 5-6 6-7 4-7 2-5 1-6 0-7\n"
	code, out, _ := runCLI(t, fixture, "-order", "alternating")
	require.Equal(t, exitOK, code)
	assert.Equal(t, []string{
		"maximal: [0 1 4 5 6 7]", // 0
		"maximal: [1 2 4 5 6 7]", // 2
		"maximal: [0 3 4 5 6 7]", // 4
		"maximal: [2 3 4 5 6 7]", // 6
		"maximal: [1 3 4 6]",     // 7
		"maximal: [1 3 5 6 7]",   // 8
		"maximal: [1 3 4 5 7]",   // 5
		"maximal: [0 2 5 7]",     // 9
		"maximal: [0 2 4 5 6]",   // 3
		"maximal: [0 2 4 6 7]",   // 1
	}, lines(out, "maximal:"))
}

func TestRun_EdgesAndMax(t *testing.T) {
	code, out, _ := runCLI(t, "", "-gen", "complete:4", "-max", "2", "-edges")
	require.Equal(t, exitOK, code)
	assert.Len(t, lines(out, "maximal:"), 2)
	assert.Equal(t, []string{"edge: 0 -> 1 tree"}, lines(out, "edge:"))
}

func TestRun_BadgerIndex(t *testing.T) {
	_, want, _ := runCLI(t, "", "-gen", "wheel:6")

	for _, db := range []string{memoryDB, t.TempDir()} {
		code, out, _ := runCLI(t, "", "-gen", "wheel:6", "-db", db)
		require.Equal(t, exitOK, code, db)
		assert.Equal(t, want, out, db)
	}
}

func TestRun_Dump(t *testing.T) {
	code, out, _ := runCLI(t, "", "-gen", "path:3", "-dump", "-one-based")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "vertices 3\n1-2\n2-3\n", out)
}

func TestRun_Loops(t *testing.T) {
	code, _, _ := runCLI(t, "0-0 0-1")
	assert.Equal(t, exitError, code)

	code, out, _ := runCLI(t, "0-0 0-1 1-2", "-loops")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "maximal: [1 2]\n", out)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"-nope"}, exitUsage},
		{"bad order", []string{"-order", "bfs"}, exitUsage},
		{"negative max", []string{"-max", "-1"}, exitUsage},
		{"two files", []string{"a", "b"}, exitUsage},
		{"gen and file", []string{"-gen", "cycle:3", "a"}, exitUsage},
		{"unknown gen", []string{"-gen", "moebius:8"}, exitError},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.txt")}, exitError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tc.args...)
			assert.Equal(t, tc.want, code)
			assert.NotEmpty(t, stderr)
		})
	}
}
