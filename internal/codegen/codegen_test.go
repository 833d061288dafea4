package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/drnet/internal/manifest"
	"github.com/born-ml/drnet/internal/qnn"
	"github.com/born-ml/drnet/internal/quant"
)

func tinyModel() *quant.Model {
	return &quant.Model{
		Manifest: &manifest.Manifest{
			Name:           "tiny",
			Title:          "Tiny \"test\" model",
			Image:          manifest.Image{Width: 2, Height: 1, Channels: 1},
			InputScale:     127,
			WeightFracBits: 7,
			Classes:        []string{"yes", "no"},
		},
		Layers: [3]qnn.Layer[int32]{
			qnn.MustLayer("fc1", 2, 3, []int8{1, -2, 3, -4, 5, -6}, []int32{7, -8, 9}),
			qnn.MustLayer("fc2", 3, 2, []int8{10, 11, 12, 13, 14, 15}, []int32{0, 0}),
			qnn.MustLayer("fc3", 2, 2, []int8{-128, 127, 0, 1}, []int32{-100000, 100000}),
		},
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, tinyModel(), "model", "tiny.safetensors"))
	src := buf.String()

	assert.Contains(t, src, "// Code generated by genmodel from tiny.safetensors; DO NOT EDIT.\n")
	assert.Contains(t, src, "\tTitle         = \"Tiny \\\"test\\\" model\"\n")
	assert.Contains(t, src, "\tL1InNodes  = 2\n\tL1OutNodes = 3\n")
	assert.Contains(t, src, "var classNames = [L3OutNodes]string{\n\t\"yes\",\n\t\"no\",\n}\n")
	assert.Contains(t, src, "var l1Weights = [L1OutNodes * L1InNodes]int8{\n\t1, -2, 3, -4, 5, -6,\n}\n")
	assert.Contains(t, src, "var l3Biases = [L3OutNodes]int32{\n\t-100000, 100000,\n}\n")

	f, err := parser.ParseFile(token.NewFileSet(), "model_gen.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "model", f.Name.Name)
}

func TestTable_WrapsLines(t *testing.T) {
	values := make([]int8, 20)
	for i := range values {
		values[i] = int8(i)
	}
	want := "\t0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,\n\t16, 17, 18, 19,\n"
	assert.Equal(t, want, table(values))
	assert.Empty(t, table([]int32(nil)))
}
