package qnn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayer_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
		weights []int8
		biases  []int32
	}{
		{"zero inputs", 0, 1, nil, []int32{0}},
		{"short weights", 2, 2, []int8{1, 2, 3}, []int32{0, 0}},
		{"long biases", 2, 1, []int8{1, 2}, []int32{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayer("fc", tt.in, tt.out, tt.weights, tt.biases)
			require.ErrorIs(t, err, ErrShape)
		})
	}
}

func TestNewLayer_RejectsOverflow(t *testing.T) {
	w := []int8{127, 127}
	_, err := NewLayer("fc", 2, 1, w, []int32{math.MaxInt32 - 100})
	require.ErrorIs(t, err, ErrOverflow)

	_, err = NewLayer("fc", 2, 1, w, []int32{math.MinInt32})
	require.ErrorIs(t, err, ErrOverflow)

	_, err = NewLayer("fc", 2, 1, w, []int64{math.MaxInt32})
	require.NoError(t, err)
}

func TestMustLayer(t *testing.T) {
	assert.Panics(t, func() {
		MustLayer("fc", 2, 1, []int8{1}, []int32{0})
	})
	l := MustLayer("fc", 2, 1, []int8{1, 2}, []int32{0})
	assert.Equal(t, []int8{1, 2}, l.Row(0))
}

func TestAccumulatorMax(t *testing.T) {
	assert.Equal(t, uint64(math.MaxInt32), accumulatorMax[int32]())
	assert.Equal(t, uint64(math.MaxInt64), accumulatorMax[int64]())
}
