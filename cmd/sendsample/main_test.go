package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string, gray uint8) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range img.Pix {
		img.Pix[i] = gray
	}
	path := filepath.Join(dir, "eye.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestRun_ImageAndRaw(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, 254)

	raw := filepath.Join(dir, "zero.bin")
	require.NoError(t, os.WriteFile(raw, make([]byte, 1024), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-log-level", "error", img, raw}, &out))

	got := out.Bytes()
	require.Len(t, got, 2048)
	assert.Equal(t, byte(127), got[0])
	assert.Equal(t, byte(0), got[1024])
}

func TestRun_OutFile(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "s.bin")
	require.NoError(t, os.WriteFile(raw, bytes.Repeat([]byte{7}, 1024), 0o600))
	dst := filepath.Join(dir, "out.bin")

	require.NoError(t, run([]string{"-log-level", "error", "-out", dst, raw}, &bytes.Buffer{}))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{7}, 1024), got)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.bin")
	require.NoError(t, os.WriteFile(short, make([]byte, 10), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{"no inputs", []string{"-log-level", "error"}},
		{"short raw sample", []string{"-log-level", "error", short}},
		{"both sinks", []string{"-log-level", "error", "-port", "COM1", "-out", "x.bin", short}},
		{"missing image", []string{"-log-level", "error", filepath.Join(dir, "none.png")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, run(tt.args, &bytes.Buffer{}))
		})
	}
}
