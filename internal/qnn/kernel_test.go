package qnn

import (
	"math/rand"
	"testing"

	"github.com/born-ml/drnet/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomLayer(t *testing.T, rng *rand.Rand, name string, in, out int) Layer[int32] {
	t.Helper()

	w := make([]int8, in*out)
	for i := range w {
		w[i] = int8(rng.Intn(255) - 127)
	}
	b := make([]int32, out)
	for i := range b {
		b[i] = int32(rng.Intn(20001) - 10000)
	}
	l, err := NewLayer(name, in, out, w, b)
	require.NoError(t, err)
	return l
}

func randomInput(rng *rand.Rand, n int) []int8 {
	x := make([]int8, n)
	for i := range x {
		x[i] = int8(rng.Intn(256) - 128)
	}
	return x
}

func TestDense_Small(t *testing.T) {
	l, err := NewLayer("fc", 3, 2,
		[]int8{
			1, 2, 3,
			-4, 5, -6,
		},
		[]int32{10, -10},
	)
	require.NoError(t, err)

	out := make([]int32, 2)
	Dense(&l, []int8{7, -8, 9}, out)

	// 7 - 16 + 27 + 10 = 28; -28 - 40 - 54 - 10 = -132
	assert.Equal(t, []int32{28, -132}, out)
}

func TestDense_ExactDotProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := randomLayer(t, rng, "fc", 1024, 16)
	x := randomInput(rng, 1024)

	out := make([]int32, l.Out)
	Dense(&l, x, out)

	for j := 0; j < l.Out; j++ {
		want := int64(l.Biases[j])
		for i, v := range x {
			want += int64(v) * int64(l.Weights[j*l.In+i])
		}
		assert.Equal(t, want, int64(out[j]), "unit %d", j)
	}
}

func TestDense_ExtremeInputsDoNotOverflow(t *testing.T) {
	const in = 1024
	w := make([]int8, in)
	x := make([]int8, in)
	for i := range w {
		w[i] = -128
		x[i] = -128
	}
	l, err := NewLayer("fc", in, 1, w, []int32{1000})
	require.NoError(t, err)

	out := make([]int32, 1)
	Dense(&l, x, out)

	assert.Equal(t, int32(128*128*in+1000), out[0])
}

func TestDense_Int64Accumulator(t *testing.T) {
	l, err := NewLayer("wide", 2, 1, []int8{127, 127}, []int64{1 << 40})
	require.NoError(t, err)

	out := make([]int64, 1)
	Dense(&l, []int8{127, 127}, out)

	assert.Equal(t, int64(1<<40+2*127*127), out[0])
}

func TestDenseParallel_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	l := randomLayer(t, rng, "fc", 256, 64)
	x := randomInput(rng, 256)

	seq := make([]int32, l.Out)
	par := make([]int32, l.Out)
	Dense(&l, x, seq)
	DenseParallel(&l, x, par, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4})

	assert.Equal(t, seq, par)
}

func TestDense_PanicsOnMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	l := randomLayer(t, rng, "fc", 4, 2)

	assert.Panics(t, func() {
		Dense(&l, make([]int8, 3), make([]int32, 2))
	})
	assert.Panics(t, func() {
		Dense(&l, make([]int8, 4), make([]int32, 3))
	})
}
