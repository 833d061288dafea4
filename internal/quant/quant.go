// Package quant turns trained float checkpoints into the fixed-point
// parameters of the classifier and checks the result against a float
// reference of the same network.
//
// Scales: an activation value a is stored as round(a * inputScale). A weight
// w is stored as round(w * 2^fracBits), saturated to [-127, 127]. A bias b is
// stored as round(b * inputScale * 2^fracBits) so that it lands on the
// accumulator scale. Shifting an accumulator right by fracBits brings it
// back to the activation scale, which makes the requantization shift equal
// to fracBits.
package quant

import (
	"fmt"
	"math"

	"github.com/born-ml/drnet/internal/checkpoint"
	"github.com/born-ml/drnet/internal/manifest"
	"github.com/born-ml/drnet/internal/qnn"
)

// QuantizeWeights maps float weights to int8 with 2^fracBits steps per unit.
func QuantizeWeights(w []float32, fracBits uint) []int8 {
	scale := math.Ldexp(1, int(fracBits))
	out := make([]int8, len(w))
	for i, v := range w {
		q := math.Round(float64(v) * scale)
		out[i] = int8(max(min(q, 127), -127))
	}
	return out
}

// QuantizeBiases maps float biases onto the accumulator scale.
func QuantizeBiases(b []float32, inputScale int, fracBits uint) []int32 {
	scale := float64(inputScale) * math.Ldexp(1, int(fracBits))
	out := make([]int32, len(b))
	for i, v := range b {
		q := math.Round(float64(v) * scale)
		out[i] = int32(max(min(q, math.MaxInt32), math.MinInt32))
	}
	return out
}

// QuantizeSample maps real activations in [0, 1] to sample bytes.
func QuantizeSample(x []float64, inputScale int) []int8 {
	out := make([]int8, len(x))
	for i, v := range x {
		q := math.Round(v * float64(inputScale))
		out[i] = int8(max(min(q, 127), -128))
	}
	return out
}

// Model is a compiled deployment.
type Model struct {
	Manifest *manifest.Manifest
	Layers   [manifest.NumLayers]qnn.Layer[int32]
}

// Shift returns the requantization shift.
func (m *Model) Shift() uint { return m.Manifest.WeightFracBits }

// Network chains the compiled layers.
func (m *Model) Network() (*qnn.Network, error) {
	return qnn.NewNetwork(m.Layers[0], m.Layers[1], m.Layers[2], m.Shift())
}

// Compile reads the tensors named by man from r and quantizes them.
//
// F32 tensors are quantized with the manifest scales. I8 weights and I32
// biases are taken as already quantized.
func Compile(r *checkpoint.Reader, man *manifest.Manifest) (*Model, error) {
	if err := man.Validate(); err != nil {
		return nil, err
	}
	m := &Model{Manifest: man}

	in := man.Image.Size()
	for i, entry := range man.Layers {
		info, err := r.TensorInfo(entry.Weight)
		if err != nil {
			return nil, err
		}
		if len(info.Shape) != 2 || info.Shape[1] != in {
			return nil, fmt.Errorf("layer %s: %w: weight %v, expected [*, %d]",
				entry.Name, checkpoint.ErrShapeMismatch, info.Shape, in)
		}
		out := info.Shape[0]

		weights, err := readWeights(r, entry.Weight, info, man.WeightFracBits)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", entry.Name, err)
		}
		biases, err := readBiases(r, entry.Bias, out, man.InputScale, man.WeightFracBits)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", entry.Name, err)
		}

		l, err := qnn.NewLayer(entry.Name, in, out, weights, biases)
		if err != nil {
			return nil, err
		}
		m.Layers[i] = l
		in = out
	}

	if in != len(man.Classes) {
		return nil, fmt.Errorf("%w: %d classes for %d outputs", manifest.ErrInvalid, len(man.Classes), in)
	}
	return m, nil
}

func readWeights(r *checkpoint.Reader, name string, info checkpoint.TensorInfo, fracBits uint) ([]int8, error) {
	if info.DType == checkpoint.I8 {
		return r.Int8s(name, info.Shape)
	}
	w, err := r.Float32s(name, info.Shape)
	if err != nil {
		return nil, err
	}
	return QuantizeWeights(w, fracBits), nil
}

func readBiases(r *checkpoint.Reader, name string, out, inputScale int, fracBits uint) ([]int32, error) {
	info, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}
	if info.DType == checkpoint.I32 {
		return r.Int32s(name, []int{out})
	}
	b, err := r.Float32s(name, []int{out})
	if err != nil {
		return nil, err
	}
	return QuantizeBiases(b, inputScale, fracBits), nil
}
