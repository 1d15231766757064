package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HUFFPACK_LOGGER_PRETTIER", "false")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_CompressDecompress(t *testing.T) {
	dir := t.TempDir()
	input := []byte(strings.Repeat("discharge summary: no complications.\n", 50))
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, input, 0o600))

	code, _, stderr := runCLI(t, "compress", src)
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, src+".huf")
	assert.Contains(t, stderr, `"message":"compressed"`)

	restored := filepath.Join(dir, "restored.txt")
	code, _, stderr = runCLI(t, "decompress", "-o", restored, src+".huf")
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, input, got)

	// Default destination strips the suffix, which already exists.
	code, _, _ = runCLI(t, "decompress", src+".huf")
	assert.Equal(t, 1, code)
	code, _, stderr = runCLI(t, "decompress", "-f", src+".huf")
	assert.Equal(t, 0, code, stderr)
}

func TestRun_VerifyMany(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i, content := range []string{"", "A", "aaabbc", strings.Repeat("xyz", 999)} {
		path := filepath.Join(dir, "in"+string(rune('0'+i)))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		files = append(files, path)
	}

	t.Setenv("HUFFPACK_VERIFY", "true")
	code, _, stderr := runCLI(t, append([]string{"verify", "-j", "2"}, files...)...)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, len(files), strings.Count(stderr, `"identical":true`))
	for _, f := range files {
		assert.FileExists(t, f+".huf")
		assert.FileExists(t, f+".out")
	}
}

func TestRun_CompressWithVerify(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "v.txt")
	require.NoError(t, os.WriteFile(src, []byte("verify me please"), 0o600))

	t.Setenv("HUFFPACK_VERIFY", "true")
	t.Setenv("HUFFPACK_LOGGER_LEVEL", "debug")
	code, _, stderr := runCLI(t, "compress", src)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `"message":"container verified"`)
}

func TestRun_Stats(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "s.txt")
	require.NoError(t, os.WriteFile(src, []byte("aaabbc"), 0o600))

	code, stdout, stderr := runCLI(t, "stats", src)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "6 bytes, 3 distinct, codes of 1..2 bits, container 1030 bytes")
	assert.Contains(t, stdout, "\tEncode(97) = \"0\"\n")
}

func TestRun_CorruptContainer(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.huf")
	require.NoError(t, os.WriteFile(src, []byte("not a container"), 0o600))

	code, _, stderr := runCLI(t, "decompress", src)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "corrupt huffman container")
	assert.NoFileExists(t, filepath.Join(dir, "bad"))
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: huffpack")

	code, _, stderr = runCLI(t, "explode", "x")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "explode"`)

	code, _, _ = runCLI(t, "compress")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "compress", "-o", "out", "a", "b")
	assert.Equal(t, 2, code)
}
