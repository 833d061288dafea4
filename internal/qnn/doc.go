// Package qnn implements the fixed-point building blocks of the classifier:
// the quantized dense-layer kernel, the rectifying requantizer, the argmax
// selector and the fixed three-layer Network that sequences them.
//
// Everything here is integer arithmetic. Activations are int8, parameters
// are int8 weights with wide integer biases, and each layer accumulates into
// a signed integer of at least 32 bits:
//
//	acc[j] = bias[j] + Σ_i in[i] * w[j][i]
//	act[j] = sat8((max(acc[j], 0)) >> shift)
//
// The requantization shift equals the number of fractional bits of the
// fixed-point weight scale, so act stays on the same scale as the network
// input.
//
// Example:
//
//	net, err := qnn.NewNetwork(l1, l2, l3, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scratch := net.NewScratch()
//	class := net.Forward(sample, scratch)
//
// Dimension mismatches between a layer and the slices handed to it are
// programming errors and panic.
package qnn
