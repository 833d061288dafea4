package quant

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/drnet/internal/checkpoint"
	"github.com/born-ml/drnet/internal/manifest"
	"github.com/born-ml/drnet/internal/qnn"
)

func TestQuantizeWeights(t *testing.T) {
	got := QuantizeWeights([]float32{0, 0.5, -0.5, 0.00390625, -0.00390625, 0.99, 1.5, -3}, 7)
	// 0.5*128 = 64; ±1/256*128 = ±0.5 rounds away from zero.
	assert.Equal(t, []int8{0, 64, -64, 1, -1, 127, 127, -127}, got)
}

func TestQuantizeBiases(t *testing.T) {
	got := QuantizeBiases([]float32{0.1, -1, 1e6}, 127, 7)
	// 0.1 * 16256 = 1625.6...
	assert.Equal(t, []int32{1626, -16256, math.MaxInt32}, got)
}

func TestQuantizeSample(t *testing.T) {
	assert.Equal(t, []int8{0, 64, 127, 127, -128}, QuantizeSample([]float64{0, 0.5, 1, 2, -2}, 127))
}

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Name:           "tiny",
		Image:          manifest.Image{Width: 2, Height: 2, Channels: 1},
		InputScale:     127,
		WeightFracBits: 7,
		Layers: []manifest.Layer{
			{Name: "fc1", Weight: "fc1.weight", Bias: "fc1.bias"},
			{Name: "fc2", Weight: "fc2.weight", Bias: "fc2.bias"},
			{Name: "fc3", Weight: "fc3.weight", Bias: "fc3.bias"},
		},
		Classes: []string{"a", "b"},
	}
}

func writeTiny(t *testing.T, tensors ...checkpoint.Tensor) *checkpoint.Reader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.safetensors")
	require.NoError(t, checkpoint.WriteFile(path, nil, tensors...))
	r, err := checkpoint.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestCompile(t *testing.T) {
	r := writeTiny(t,
		checkpoint.Float32Tensor("fc1.weight", []int{3, 4}, []float32{
			0.5, 0, 0, 0,
			0, 0.5, 0, 0,
			0, 0, 0.5, 0.5,
		}),
		checkpoint.Float32Tensor("fc1.bias", []int{3}, []float32{0, 0, 0.1}),
		checkpoint.Int8Tensor("fc2.weight", []int{3, 3}, []int8{1, 2, 3, 4, 5, 6, 7, 8, 9}),
		checkpoint.Int32Tensor("fc2.bias", []int{3}, []int32{-1, 0, 1}),
		checkpoint.Float32Tensor("fc3.weight", []int{2, 3}, []float32{1, 0, 0, 0, 1, 0}),
		checkpoint.Float32Tensor("fc3.bias", []int{2}, []float32{0, 0}),
	)

	m, err := Compile(r, testManifest())
	require.NoError(t, err)

	assert.Equal(t, []int8{64, 0, 0, 0, 0, 64, 0, 0, 0, 0, 64, 64}, m.Layers[0].Weights)
	assert.Equal(t, []int32{0, 0, 1626}, m.Layers[0].Biases)
	assert.Equal(t, []int8{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Layers[1].Weights)
	assert.Equal(t, []int32{-1, 0, 1}, m.Layers[1].Biases)
	assert.Equal(t, 2, m.Layers[2].Out)

	net, err := m.Network()
	require.NoError(t, err)
	assert.Equal(t, 4, net.InputSize())
	assert.Equal(t, uint(7), net.Shift())
}

func TestCompile_Errors(t *testing.T) {
	good := []checkpoint.Tensor{
		checkpoint.Float32Tensor("fc1.weight", []int{3, 4}, make([]float32, 12)),
		checkpoint.Float32Tensor("fc1.bias", []int{3}, make([]float32, 3)),
		checkpoint.Float32Tensor("fc2.weight", []int{3, 3}, make([]float32, 9)),
		checkpoint.Float32Tensor("fc2.bias", []int{3}, make([]float32, 3)),
		checkpoint.Float32Tensor("fc3.weight", []int{2, 3}, make([]float32, 6)),
		checkpoint.Float32Tensor("fc3.bias", []int{2}, make([]float32, 2)),
	}

	t.Run("missing tensor", func(t *testing.T) {
		_, err := Compile(writeTiny(t, good[:5]...), testManifest())
		require.ErrorIs(t, err, checkpoint.ErrTensorNotFound)
	})

	t.Run("wrong input width", func(t *testing.T) {
		bad := append([]checkpoint.Tensor(nil), good...)
		bad[0] = checkpoint.Float32Tensor("fc1.weight", []int{4, 3}, make([]float32, 12))
		_, err := Compile(writeTiny(t, bad...), testManifest())
		require.ErrorIs(t, err, checkpoint.ErrShapeMismatch)
	})

	t.Run("class count", func(t *testing.T) {
		man := testManifest()
		man.Classes = []string{"a", "b", "c"}
		_, err := Compile(writeTiny(t, good...), man)
		require.ErrorIs(t, err, manifest.ErrInvalid)
	})
}

// designedNetwork pools pairs of inputs twice and then scores four classes
// with self-excitation and cross-inhibition. First-layer weights and biases
// are non-negative, so for non-negative samples the first rectification is a
// no-op, and inputs up to 120 never saturate.
func designedNetwork(t *testing.T) *qnn.Network {
	t.Helper()
	const in, hidden1, hidden2, out = 16, 8, 4, 4

	w1 := make([]int8, hidden1*in)
	for j := 0; j < hidden1; j++ {
		w1[j*in+2*j] = 64
		w1[j*in+2*j+1] = 64
	}
	b1 := []int32{163, 163, 163, 163, 163, 163, 163, 163}

	w2 := make([]int8, hidden2*hidden1)
	for k := 0; k < hidden2; k++ {
		w2[k*hidden1+2*k] = 64
		w2[k*hidden1+2*k+1] = 64
	}
	b2 := []int32{-163, 0, 163, 0}

	w3 := make([]int8, out*hidden2)
	for k := 0; k < out; k++ {
		for i := 0; i < hidden2; i++ {
			w3[k*hidden2+i] = -32
		}
		w3[k*hidden2+k] = 127
	}
	b3 := []int32{0, 100, -100, 0}

	net, err := qnn.NewNetwork(
		qnn.MustLayer("fc1", in, hidden1, w1, b1),
		qnn.MustLayer("fc2", hidden1, hidden2, w2, b2),
		qnn.MustLayer("fc3", hidden2, out, w3, b3),
		7,
	)
	require.NoError(t, err)
	return net
}

// classPattern lights up the four input bytes that feed class k.
func classPattern(k int) []int8 {
	x := make([]int8, 16)
	for i := range x {
		x[i] = 10
		if i/4 == k {
			x[i] = 100
		}
	}
	return x
}

func absSum(row []int8) float64 {
	s := 0.0
	for _, v := range row {
		s += math.Abs(float64(v))
	}
	return s
}

func TestReference_DesignedInputsMatchClass(t *testing.T) {
	net := designedNetwork(t)
	ref := NewReference(net, 127)
	s := net.NewScratch()

	for k := 0; k < 4; k++ {
		x := classPattern(k)

		acc := make([]int32, net.Layer(0).Out)
		qnn.Dense(net.Layer(0), x, acc)
		for _, v := range acc {
			require.GreaterOrEqual(t, v, int32(0))
		}

		want, _ := ref.Forward(x)
		assert.Equal(t, k, want)
		assert.Equal(t, want, net.Forward(x, s))
	}
}

func TestReference_LogitsWithinQuantizationBound(t *testing.T) {
	const inputScale = 127
	net := designedNetwork(t)
	ref := NewReference(net, inputScale)
	s := net.NewScratch()

	// Each requantization truncates by less than one activation step, 1/127.
	// Propagating that through the next layers bounds the logit error.
	step := 1.0 / inputScale
	wScale := math.Ldexp(1, int(net.Shift()))
	l2, l3 := net.Layer(1), net.Layer(2)
	var maxRow2, maxRow3 float64
	for j := 0; j < l2.Out; j++ {
		maxRow2 = math.Max(maxRow2, absSum(l2.Row(j))/wScale)
	}
	for j := 0; j < l3.Out; j++ {
		maxRow3 = math.Max(maxRow3, absSum(l3.Row(j))/wScale)
	}
	bound := (maxRow2*step + step) * maxRow3

	for _, x := range RandomSamples(42, 500, net.InputSize(), 120) {
		_, logits := ref.Forward(x)
		net.Forward(x, s)

		for k, q := range s.Logits() {
			assert.InDelta(t, logits[k], float64(q)/(inputScale*wScale), bound+1e-9, "logit %d", k)
		}
	}
}

func TestAgreement(t *testing.T) {
	net := designedNetwork(t)
	ref := NewReference(net, 127)

	samples := RandomSamples(7, 500, net.InputSize(), 120)
	assert.Greater(t, Agreement(net, ref, samples), 0.9)
	assert.Zero(t, Agreement(net, ref, nil))
}

func TestRandomSamples(t *testing.T) {
	a := RandomSamples(1, 3, 10, 5)
	b := RandomSamples(1, 3, 10, 5)
	assert.Equal(t, a, b)
	for _, x := range a {
		require.Len(t, x, 10)
		for _, v := range x {
			assert.True(t, v >= 0 && v <= 5)
		}
	}
}
