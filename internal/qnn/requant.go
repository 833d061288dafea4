package qnn

import (
	"fmt"
	"math"
)

// Requantize rectifies, rescales and saturates accumulators into activations.
//
// For every element: negative values become zero, the result is shifted right
// arithmetically by shift bits and saturated into [-128, 127]. After the
// rectification only the upper bound can be hit.
func Requantize[A Accumulator](acc []A, out []int8, shift uint) {
	if len(acc) != len(out) {
		panic(fmt.Sprintf("qnn.Requantize: %d accumulators but %d outputs", len(acc), len(out)))
	}
	for i, v := range acc {
		out[i] = Saturate(max(v, 0) >> shift)
	}
}

// Saturate clamps v into the int8 range.
func Saturate[A Accumulator](v A) int8 {
	switch {
	case v > math.MaxInt8:
		return math.MaxInt8
	case v < math.MinInt8:
		return math.MinInt8
	default:
		return int8(v)
	}
}
