package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testManifest   = filepath.Join("..", "..", "internal", "model", "testdata", "dr_mlp.yaml")
	testCheckpoint = filepath.Join("..", "..", "internal", "model", "testdata", "dr_mlp.safetensors")
)

func TestRun_Stdout(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{
		"-manifest", testManifest,
		"-checkpoint", testCheckpoint,
		"-package", "drmodel",
		"-check", "50",
		"-log-level", "error",
	}, &out)
	require.NoError(t, err)

	src := out.String()
	assert.Contains(t, src, "// Code generated by genmodel from dr_mlp.safetensors; DO NOT EDIT.")
	assert.Contains(t, src, "package drmodel")
	assert.Contains(t, src, "L1InNodes  = 1024")
	assert.Contains(t, src, "var l3Biases = [L3OutNodes]int32{")

	_, err = parser.ParseFile(token.NewFileSet(), "model_gen.go", out.Bytes(), 0)
	require.NoError(t, err)
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_gen.go")
	err := run([]string{
		"-manifest", testManifest,
		"-checkpoint", testCheckpoint,
		"-out", path,
		"-log-level", "error",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "package model")
}

// otherCheckpoint copies the test checkpoint with one byte appended, so its
// digest no longer matches the manifest.
func otherCheckpoint(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(testCheckpoint)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tampered.safetensors")
	require.NoError(t, os.WriteFile(path, append(data, 0), 0o600))
	return path
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing flags", nil},
		{"missing manifest", []string{"-manifest", "nope.yaml", "-checkpoint", testCheckpoint}},
		{"missing checkpoint", []string{"-manifest", testManifest, "-checkpoint", "nope.safetensors"}},
		{"bad level", []string{"-manifest", testManifest, "-checkpoint", testCheckpoint, "-log-level", "loud"}},
		{"checksum mismatch", []string{"-manifest", testManifest, "-checkpoint", otherCheckpoint(t), "-log-level", "error"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, run(tt.args, &bytes.Buffer{}))
		})
	}
}
