// Package preprocess turns photographs into sample bytes for the device:
// resize to the model geometry, convert to grayscale, and map each 8-bit
// intensity onto the activation scale (0..255 -> 0..127).
package preprocess

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/nfnt/resize"
)

// Geometry is the target sample size.
type Geometry struct {
	Width    int
	Height   int
	Channels int
}

// Size returns the sample length in bytes.
func (g Geometry) Size() int { return g.Width * g.Height * g.Channels }

// Sample converts img to a row-major sample of g.Size() bytes. Only one
// channel (grayscale) is supported.
func Sample(img image.Image, g Geometry) ([]int8, error) {
	if g.Channels != 1 {
		return nil, fmt.Errorf("unsupported channel count %d", g.Channels)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("invalid geometry %dx%d", g.Width, g.Height)
	}

	resized := resize.Resize(uint(g.Width), uint(g.Height), img, resize.Lanczos3)
	bounds := resized.Bounds()

	out := make([]int8, 0, g.Size())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(resized.At(x, y)).(color.Gray)
			out = append(out, Quantize(gray.Y))
		}
	}
	return out, nil
}

// Quantize maps an 8-bit intensity onto [0, 127].
func Quantize(v uint8) int8 {
	return int8(v >> 1)
}

// Decode reads a JPEG or PNG image and converts it.
func Decode(r io.Reader, g Geometry) ([]int8, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return Sample(img, g)
}

// File loads and converts the image at path.
func File(path string, g Geometry) ([]int8, error) {
	//nolint:gosec // G304: image paths come from the command line.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return Decode(f, g)
}
