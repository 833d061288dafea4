package qnn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequantize(t *testing.T) {
	acc := []int32{-500, -1, 0, 127, 128, 255, 256, 1 << 20, math.MaxInt32}
	out := make([]int8, len(acc))

	Requantize(acc, out, 1)

	assert.Equal(t, []int8{0, 0, 0, 63, 64, 127, 127, 127, 127}, out)
}

func TestRequantize_ZeroShift(t *testing.T) {
	acc := []int32{-3, 5, 127, 128}
	out := make([]int8, len(acc))

	Requantize(acc, out, 0)

	assert.Equal(t, []int8{0, 5, 127, 127}, out)
}

func TestRequantize_RangeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	acc := make([]int32, 4096)
	for i := range acc {
		acc[i] = int32(rng.Uint32())
	}
	out := make([]int8, len(acc))

	for shift := uint(0); shift < 32; shift++ {
		Requantize(acc, out, shift)
		for i, v := range out {
			if v < 0 || v > 127 {
				t.Fatalf("shift %d: element %d out of range: %d", shift, i, v)
			}
		}
	}
}

func TestRequantize_PanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Requantize(make([]int32, 3), make([]int8, 2), 1)
	})
}

func TestSaturate(t *testing.T) {
	tests := []struct {
		in   int64
		want int8
	}{
		{math.MinInt64, -128},
		{-129, -128},
		{-128, -128},
		{-5, -5},
		{0, 0},
		{127, 127},
		{128, 127},
		{math.MaxInt64, 127},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Saturate(tt.in), "Saturate(%d)", tt.in)
	}
}

func TestSaturate_RangeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		v := Saturate(int32(rng.Uint32()))
		assert.True(t, v >= math.MinInt8 && v <= math.MaxInt8)
	}
}
