package qnn

import (
	"fmt"

	"github.com/born-ml/drnet/internal/parallel"
)

// Dense computes the pre-activation outputs of one layer:
//
//	out[j] = l.Biases[j] + Σ_i in[i] * l.Weights[j*l.In+i]
//
// No clipping or rescaling happens here. len(in) must equal l.In and
// len(out) must equal l.Out.
func Dense[A Accumulator](l *Layer[A], in []int8, out []A) {
	DenseParallel(l, in, out, parallel.Sequential())
}

// DenseParallel is Dense with output units spread across workers per cfg.
// Each unit is computed by exactly one worker, so the result is identical to
// Dense.
func DenseParallel[A Accumulator](l *Layer[A], in []int8, out []A, cfg parallel.Config) {
	if len(in) != l.In {
		panic(fmt.Sprintf("qnn.Dense: layer %s expects %d inputs, got %d", l.Name, l.In, len(in)))
	}
	if len(out) != l.Out {
		panic(fmt.Sprintf("qnn.Dense: layer %s produces %d outputs, got buffer of %d", l.Name, l.Out, len(out)))
	}

	parallel.ForRange(l.Out, func(start, end int) {
		for j := start; j < end; j++ {
			out[j] = dot[A](in, l.Row(j)) + l.Biases[j]
		}
	}, cfg)
}

func dot[A Accumulator](x, w []int8) A {
	var acc A
	for i, v := range x {
		acc += A(v) * A(w[i])
	}
	return acc
}
