package quant

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/drnet/internal/qnn"
)

// Reference evaluates a quantized network in float64 on its dequantized
// parameters, without activation truncation or saturation.
type Reference struct {
	weights    [3]*mat.Dense
	biases     [3]*mat.VecDense
	inputScale float64
}

// NewReference dequantizes net.
func NewReference(net *qnn.Network, inputScale int) *Reference {
	ref := &Reference{inputScale: float64(inputScale)}
	wScale := math.Ldexp(1, int(net.Shift()))
	bScale := ref.inputScale * wScale

	for i := range ref.weights {
		l := net.Layer(i)
		w := make([]float64, len(l.Weights))
		for k, q := range l.Weights {
			w[k] = float64(q) / wScale
		}
		b := make([]float64, len(l.Biases))
		for k, q := range l.Biases {
			b[k] = float64(q) / bScale
		}
		ref.weights[i] = mat.NewDense(l.Out, l.In, w)
		ref.biases[i] = mat.NewVecDense(l.Out, b)
	}
	return ref
}

// Forward returns the selected class and the output logits in real units.
func (r *Reference) Forward(sample []int8) (int, []float64) {
	x := make([]float64, len(sample))
	for i, q := range sample {
		x[i] = float64(q) / r.inputScale
	}
	h := mat.NewVecDense(len(x), x)

	for i := range r.weights {
		rows, _ := r.weights[i].Dims()
		next := mat.NewVecDense(rows, nil)
		next.MulVec(r.weights[i], h)
		next.AddVec(next, r.biases[i])
		if i < len(r.weights)-1 {
			for k := 0; k < rows; k++ {
				next.SetVec(k, math.Max(next.AtVec(k), 0))
			}
		}
		h = next
	}

	logits := mat.Col(nil, 0, h)
	best := 0
	for k := 1; k < len(logits); k++ {
		if logits[k] > logits[best] {
			best = k
		}
	}
	return best, logits
}

// Agreement returns the fraction of samples on which net and ref select the
// same class.
func Agreement(net *qnn.Network, ref *Reference, samples [][]int8) float64 {
	if len(samples) == 0 {
		return 0
	}
	s := net.NewScratch()
	same := 0
	for _, x := range samples {
		want, _ := ref.Forward(x)
		if net.Forward(x, s) == want {
			same++
		}
	}
	return float64(same) / float64(len(samples))
}

// RandomSamples draws n samples of size bytes uniformly from [0, maxValue].
func RandomSamples(seed uint64, n, size int, maxValue int8) [][]int8 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([][]int8, n)
	for i := range out {
		x := make([]int8, size)
		for k := range x {
			x[k] = int8(rng.IntN(int(maxValue) + 1))
		}
		out[i] = x
	}
	return out
}
