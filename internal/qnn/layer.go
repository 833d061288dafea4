package qnn

import (
	"fmt"
)

// Accumulator is the set of wide signed integers a dense layer may
// accumulate into.
type Accumulator interface {
	~int32 | ~int64
}

// Layer holds the parameters of one fully connected layer.
//
// Weights are row-major with shape [Out, In]; row j feeds output unit j.
// A Layer is treated as immutable once built.
type Layer[A Accumulator] struct {
	Name    string
	In      int
	Out     int
	Weights []int8
	Biases  []A
}

// NewLayer validates parameters and returns a Layer.
//
// Besides the shapes it checks that no output unit can overflow A for any
// int8 input: Σ_i 128*|w[j][i]| + |bias[j]| must not exceed A's maximum.
func NewLayer[A Accumulator](name string, in, out int, weights []int8, biases []A) (Layer[A], error) {
	if in <= 0 || out <= 0 {
		return Layer[A]{}, fmt.Errorf("layer %s: %w: dimensions %dx%d", name, ErrShape, out, in)
	}
	if len(weights) != in*out {
		return Layer[A]{}, fmt.Errorf("layer %s: %w: expected %d weights, got %d",
			name, ErrShape, in*out, len(weights))
	}
	if len(biases) != out {
		return Layer[A]{}, fmt.Errorf("layer %s: %w: expected %d biases, got %d",
			name, ErrShape, out, len(biases))
	}

	limit := accumulatorMax[A]()
	for j := 0; j < out; j++ {
		bound := magnitude(int64(biases[j]))
		for _, w := range weights[j*in : (j+1)*in] {
			bound += 128 * magnitude(int64(w))
		}
		if bound > limit {
			return Layer[A]{}, fmt.Errorf("layer %s: %w: unit %d can reach %d, limit %d",
				name, ErrOverflow, j, bound, limit)
		}
	}

	return Layer[A]{
		Name:    name,
		In:      in,
		Out:     out,
		Weights: weights,
		Biases:  biases,
	}, nil
}

// MustLayer is like NewLayer but panics on error. Meant for compiled-in tables.
func MustLayer[A Accumulator](name string, in, out int, weights []int8, biases []A) Layer[A] {
	l, err := NewLayer(name, in, out, weights, biases)
	if err != nil {
		panic(err)
	}
	return l
}

// Row returns the weights feeding output unit j.
func (l *Layer[A]) Row(j int) []int8 {
	return l.Weights[j*l.In : (j+1)*l.In]
}

// accumulatorMax returns the largest value representable by A.
func accumulatorMax[A Accumulator]() uint64 {
	bits := 0
	for v := A(1); v > 0; v <<= 1 {
		bits++
	}
	return 1<<bits - 1
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
