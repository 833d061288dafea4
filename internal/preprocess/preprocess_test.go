package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var geometry = Geometry{Width: 32, Height: 32, Channels: 1}

func uniform(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, int8(0), Quantize(0))
	assert.Equal(t, int8(64), Quantize(128))
	assert.Equal(t, int8(127), Quantize(255))
}

func TestSample_Uniform(t *testing.T) {
	for _, v := range []uint8{0, 100, 255} {
		got, err := Sample(uniform(200, 150, color.Gray{Y: v}), geometry)
		require.NoError(t, err)
		require.Len(t, got, 1024)
		for i, q := range got {
			require.Equal(t, Quantize(v), q, "gray %d pixel %d", v, i)
		}
	}
}

func TestSample_RangeAndLayout(t *testing.T) {
	// Left half black, right half white.
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 32; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	got, err := Sample(img, geometry)
	require.NoError(t, err)

	for _, q := range got {
		assert.True(t, q >= 0 && q <= 127)
	}
	// Row-major: first pixel of a row is dark, last is bright.
	assert.Less(t, got[5*32], got[5*32+31])
}

func TestSample_Errors(t *testing.T) {
	_, err := Sample(uniform(4, 4, color.White), Geometry{Width: 4, Height: 4, Channels: 3})
	require.Error(t, err)
	_, err = Sample(uniform(4, 4, color.White), Geometry{Width: 0, Height: 4, Channels: 1})
	require.Error(t, err)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eye.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, uniform(48, 48, color.Gray{Y: 200})))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	got, err := File(path, geometry)
	require.NoError(t, err)
	assert.Equal(t, int8(100), got[0])

	_, err = Decode(bytes.NewReader([]byte("not an image")), geometry)
	require.Error(t, err)
}
