package qnn

import (
	"fmt"

	"github.com/born-ml/drnet/internal/parallel"
)

// Network is the fixed three-layer classifier: two hidden layers followed
// by rectification and requantization, and an output layer read by Argmax.
type Network struct {
	layers   [3]Layer[int32]
	shift    uint
	parallel parallel.Config
}

// NewNetwork chains three layers. The output count of each layer must equal
// the input count of the next.
func NewNetwork(l1, l2, l3 Layer[int32], shift uint) (*Network, error) {
	if l1.Out != l2.In {
		return nil, fmt.Errorf("%w: %s has %d outputs, %s has %d inputs", ErrChain, l1.Name, l1.Out, l2.Name, l2.In)
	}
	if l2.Out != l3.In {
		return nil, fmt.Errorf("%w: %s has %d outputs, %s has %d inputs", ErrChain, l2.Name, l2.Out, l3.Name, l3.In)
	}
	if shift > 31 {
		return nil, fmt.Errorf("requantization shift %d exceeds accumulator width", shift)
	}
	return &Network{
		layers:   [3]Layer[int32]{l1, l2, l3},
		shift:    shift,
		parallel: parallel.Sequential(),
	}, nil
}

// WithParallel returns a copy of n whose kernels use cfg.
func (n *Network) WithParallel(cfg parallel.Config) *Network {
	c := *n
	c.parallel = cfg
	return &c
}

// InputSize returns the number of sample bytes the first layer consumes.
func (n *Network) InputSize() int { return n.layers[0].In }

// Outputs returns the number of output units of the last layer.
func (n *Network) Outputs() int { return n.layers[2].Out }

// Shift returns the requantization shift.
func (n *Network) Shift() uint { return n.shift }

// Layer returns layer i (0, 1 or 2).
func (n *Network) Layer(i int) *Layer[int32] { return &n.layers[i] }

// Scratch holds the transient accumulator and activation vectors of a pass.
// A Scratch must not be shared by concurrent passes.
type Scratch struct {
	acc []int32
	act []int8
	out int
}

// NewScratch allocates vectors wide enough for every hidden and output layer.
func (n *Network) NewScratch() *Scratch {
	width := 0
	for i := range n.layers {
		width = max(width, n.layers[i].Out)
	}
	return &Scratch{
		acc: make([]int32, width),
		act: make([]int8, width),
	}
}

// Logits returns the output-layer accumulators of the last Forward call.
// The slice is reused by the next pass.
func (s *Scratch) Logits() []int32 {
	return s.acc[:s.out]
}

// Forward runs one pass over sample and returns the selected output index:
// Dense, Requantize, Dense, Requantize, Dense, Argmax.
func (n *Network) Forward(sample []int8, s *Scratch) int {
	l1, l2, l3 := &n.layers[0], &n.layers[1], &n.layers[2]

	DenseParallel(l1, sample, s.acc[:l1.Out], n.parallel)
	Requantize(s.acc[:l1.Out], s.act[:l1.Out], n.shift)

	DenseParallel(l2, s.act[:l2.In], s.acc[:l2.Out], n.parallel)
	Requantize(s.acc[:l2.Out], s.act[:l2.Out], n.shift)

	DenseParallel(l3, s.act[:l3.In], s.acc[:l3.Out], n.parallel)
	s.out = l3.Out

	return Argmax(s.acc[:l3.Out])
}
