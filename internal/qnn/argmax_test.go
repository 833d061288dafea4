package qnn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgmax(t *testing.T) {
	tests := []struct {
		name string
		in   []int32
		want int
	}{
		{"tie picks first", []int32{5, 9, 9, 2}, 1},
		{"single", []int32{-7}, 0},
		{"all equal", []int32{0, 0, 0, 0, 0}, 0},
		{"last", []int32{-3, -2, -1}, 2},
		{"negatives", []int32{-10, -20, -5, -5}, 2},
		{"empty", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Argmax(tt.in))
		})
	}
}

func TestArgmax_Int64(t *testing.T) {
	assert.Equal(t, 2, Argmax([]int64{1, 1 << 40, 1 << 41}))
}
