package qnn

import (
	"math/rand"
	"testing"

	"github.com/born-ml/drnet/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroLayer(t *testing.T, name string, in, out int) Layer[int32] {
	t.Helper()
	l, err := NewLayer(name, in, out, make([]int8, in*out), make([]int32, out))
	require.NoError(t, err)
	return l
}

func TestNewNetwork_ChainErrors(t *testing.T) {
	l1 := zeroLayer(t, "fc1", 8, 4)
	l2 := zeroLayer(t, "fc2", 4, 3)
	l3 := zeroLayer(t, "fc3", 3, 2)

	_, err := NewNetwork(l1, l3, l2, 7)
	require.ErrorIs(t, err, ErrChain)

	_, err = NewNetwork(l1, l2, l1, 7)
	require.ErrorIs(t, err, ErrChain)

	_, err = NewNetwork(l1, l2, l3, 40)
	require.Error(t, err)

	net, err := NewNetwork(l1, l2, l3, 7)
	require.NoError(t, err)
	assert.Equal(t, 8, net.InputSize())
	assert.Equal(t, 2, net.Outputs())
	assert.Equal(t, uint(7), net.Shift())
}

func TestForward_ZeroInputZeroBiasPicksFirstClass(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	l1 := randomLayer(t, rng, "fc1", 1024, 16)
	for i := range l1.Biases {
		l1.Biases[i] = 0
	}
	l2 := randomLayer(t, rng, "fc2", 16, 16)
	for i := range l2.Biases {
		l2.Biases[i] = 0
	}
	l3 := randomLayer(t, rng, "fc3", 16, 5)
	for i := range l3.Biases {
		l3.Biases[i] = 0
	}

	net, err := NewNetwork(l1, l2, l3, 7)
	require.NoError(t, err)

	s := net.NewScratch()
	got := net.Forward(make([]int8, 1024), s)

	assert.Equal(t, 0, got)
	assert.Equal(t, []int32{0, 0, 0, 0, 0}, s.Logits())
}

func TestForward_HandComputed(t *testing.T) {
	// fc1: identity on two inputs, then doubling; shift 1 halves again.
	l1, err := NewLayer("fc1", 2, 2, []int8{2, 0, 0, 2}, []int32{0, 0})
	require.NoError(t, err)
	// fc2: swaps the two units, second one gets pushed negative.
	l2, err := NewLayer("fc2", 2, 2, []int8{0, 2, 2, 0}, []int32{0, -100})
	require.NoError(t, err)
	l3, err := NewLayer("fc3", 2, 3, []int8{1, 0, 0, 1, 1, 1}, []int32{0, 0, -1000})
	require.NoError(t, err)

	net, err := NewNetwork(l1, l2, l3, 1)
	require.NoError(t, err)
	s := net.NewScratch()

	// x = [10, 30] -> fc1 [20, 60] -> act [10, 30]
	// fc2 [60, -80] -> act [30, 0]
	// fc3 [30, 0, -970]
	got := net.Forward([]int8{10, 30}, s)

	assert.Equal(t, 0, got)
	assert.Equal(t, []int32{30, 0, -970}, s.Logits())
}

func TestForward_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	net, err := NewNetwork(
		randomLayer(t, rng, "fc1", 64, 32),
		randomLayer(t, rng, "fc2", 32, 16),
		randomLayer(t, rng, "fc3", 16, 5),
		9,
	)
	require.NoError(t, err)
	par := net.WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2})

	s1, s2 := net.NewScratch(), par.NewScratch()
	for i := 0; i < 20; i++ {
		x := randomInput(rng, 64)
		assert.Equal(t, net.Forward(x, s1), par.Forward(x, s2))
		assert.Equal(t, s1.Logits(), s2.Logits())
	}
}

func TestForward_PanicsOnShortSample(t *testing.T) {
	net, err := NewNetwork(zeroLayer(t, "fc1", 8, 4), zeroLayer(t, "fc2", 4, 3), zeroLayer(t, "fc3", 3, 2), 1)
	require.NoError(t, err)

	assert.Panics(t, func() {
		net.Forward(make([]int8, 7), net.NewScratch())
	})
}
