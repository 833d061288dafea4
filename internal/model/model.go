// Package model holds the compiled-in parameters of the retinopathy
// classifier and exposes them as a ready-to-run network.
//
// The tables in model_gen.go are produced by cmd/genmodel from a manifest and
// a float checkpoint; regenerate them with go generate after retraining.
package model

//go:generate go run ../../cmd/genmodel -manifest testdata/dr_mlp.yaml -checkpoint testdata/dr_mlp.safetensors -out model_gen.go

import (
	"fmt"

	"github.com/born-ml/drnet/internal/qnn"
	"github.com/born-ml/drnet/internal/report"
)

// InputSize is the sample length in bytes.
const InputSize = ImageWidth * ImageHeight * ImageChannels

var network = mustNetwork()

func mustNetwork() *qnn.Network {
	if InputSize != L1InNodes {
		panic(fmt.Sprintf("model: input size %d does not match first layer width %d", InputSize, L1InNodes))
	}
	net, err := qnn.NewNetwork(
		qnn.MustLayer(layerNames[0], L1InNodes, L1OutNodes, l1Weights[:], l1Biases[:]),
		qnn.MustLayer(layerNames[1], L2InNodes, L2OutNodes, l2Weights[:], l2Biases[:]),
		qnn.MustLayer(layerNames[2], L3InNodes, L3OutNodes, l3Weights[:], l3Biases[:]),
		Shift,
	)
	if err != nil {
		panic(fmt.Sprintf("model: %v", err))
	}
	return net
}

// Network returns the compiled network. It is shared and must not be
// modified.
func Network() *qnn.Network {
	return network
}

// Classes returns a copy of the class table, index-aligned with the outputs.
func Classes() []string {
	return append([]string(nil), classNames[:]...)
}

// Banner describes the deployment for the startup report.
func Banner() report.Banner {
	return report.Banner{
		Title:    Title,
		Width:    ImageWidth,
		Height:   ImageHeight,
		Channels: ImageChannels,
	}
}
