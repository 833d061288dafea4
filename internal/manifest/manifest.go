// Package manifest describes a deployment of the classifier: which checkpoint
// tensors feed which layer, the fixed-point scales and the class labels.
//
// Example document:
//
//	name: dr-mlp
//	title: VSD Squadron Diabetic Retinopathy Classifier
//	image: {width: 32, height: 32, channels: 1}
//	input_scale: 127
//	weight_frac_bits: 7
//	layers:
//	  - {name: fc1, weight: fc1.weight, bias: fc1.bias}
//	  - {name: fc2, weight: fc2.weight, bias: fc2.bias}
//	  - {name: fc3, weight: fc3.weight, bias: fc3.bias}
//	classes: [Mild, Moderate, No_DR, Proliferate_DR, Severe]
//	checkpoint_sha256: 58eb7c...  # optional
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NumLayers is the fixed depth of the network.
const NumLayers = 3

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid manifest")

// Image is the sample geometry.
type Image struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Channels int `yaml:"channels"`
}

// Size returns the sample length in bytes.
func (i Image) Size() int { return i.Width * i.Height * i.Channels }

// Layer names the checkpoint tensors of one dense layer.
type Layer struct {
	Name   string `yaml:"name"`
	Weight string `yaml:"weight"`
	Bias   string `yaml:"bias"`
}

// Manifest is a deployment description.
type Manifest struct {
	Name           string   `yaml:"name"`
	Title          string   `yaml:"title"`
	Image          Image    `yaml:"image"`
	InputScale     int      `yaml:"input_scale"`
	WeightFracBits uint     `yaml:"weight_frac_bits"`
	Layers         []Layer  `yaml:"layers"`
	Classes        []string `yaml:"classes"`
	// CheckpointSHA256 pins the checkpoint the manifest was written for.
	CheckpointSHA256 string `yaml:"checkpoint_sha256,omitempty"`
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	//nolint:gosec // G304: manifest path comes from the command line.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Validate checks the invariants the generator relies on.
func (m *Manifest) Validate() error {
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalid)
	case m.Image.Width <= 0 || m.Image.Height <= 0 || m.Image.Channels <= 0:
		return fmt.Errorf("%w: image %dx%dx%d", ErrInvalid, m.Image.Width, m.Image.Height, m.Image.Channels)
	case m.InputScale < 1 || m.InputScale > 127:
		return fmt.Errorf("%w: input_scale %d outside [1, 127]", ErrInvalid, m.InputScale)
	case m.WeightFracBits > 15:
		return fmt.Errorf("%w: weight_frac_bits %d exceeds 15", ErrInvalid, m.WeightFracBits)
	case len(m.Layers) != NumLayers:
		return fmt.Errorf("%w: %d layers, expected %d", ErrInvalid, len(m.Layers), NumLayers)
	case len(m.Classes) == 0:
		return fmt.Errorf("%w: no classes", ErrInvalid)
	case m.CheckpointSHA256 != "" && !isHexDigest(m.CheckpointSHA256):
		return fmt.Errorf("%w: checkpoint_sha256 %q is not a hex SHA-256", ErrInvalid, m.CheckpointSHA256)
	}
	for i, l := range m.Layers {
		if l.Name == "" || l.Weight == "" || l.Bias == "" {
			return fmt.Errorf("%w: layer %d needs name, weight and bias", ErrInvalid, i)
		}
	}
	seen := make(map[string]bool, len(m.Classes))
	for _, c := range m.Classes {
		if c == "" || seen[c] {
			return fmt.Errorf("%w: empty or duplicate class %q", ErrInvalid, c)
		}
		seen[c] = true
	}
	return nil
}

func isHexDigest(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
