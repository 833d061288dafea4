// Package codegen renders a compiled model as Go source so that its
// parameters are fixed at build time.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/born-ml/drnet/internal/quant"
)

// valuesPerLine is the number of table entries per source line.
const valuesPerLine = 16

var tmpl = template.Must(template.New("model").Parse(`// Code generated by genmodel from {{.Source}}; DO NOT EDIT.

package {{.Package}}

// Deployment parameters.
const (
	Name = {{printf "%q" .Name}}
	Title = {{printf "%q" .Title}}
	ImageWidth = {{.Width}}
	ImageHeight = {{.Height}}
	ImageChannels = {{.Channels}}
	InputScale = {{.InputScale}}
	Shift = {{.Shift}}
)

// Layer dimensions.
const (
{{- range .Layers}}
	L{{.Index}}InNodes = {{.In}}
	L{{.Index}}OutNodes = {{.Out}}
{{- end}}
)

var layerNames = [{{len .Layers}}]string{
{{- range .Layers}}
	{{printf "%q" .Name}},
{{- end}}
}

var classNames = [L{{len .Layers}}OutNodes]string{
{{- range .Classes}}
	{{printf "%q" .}},
{{- end}}
}
{{range .Layers}}
var l{{.Index}}Weights = [L{{.Index}}OutNodes * L{{.Index}}InNodes]int8{
{{.Weights}}}

var l{{.Index}}Biases = [L{{.Index}}OutNodes]int32{
{{.Biases}}}
{{end}}`))

type layerData struct {
	Index   int
	Name    string
	In, Out int
	Weights string
	Biases  string
}

type fileData struct {
	Source     string
	Package    string
	Name       string
	Title      string
	Width      int
	Height     int
	Channels   int
	InputScale int
	Shift      uint
	Layers     []layerData
	Classes    []string
}

// Generate writes gofmt-formatted Go source for m into package pkg.
// source names the checkpoint the model was compiled from.
func Generate(w io.Writer, m *quant.Model, pkg, source string) error {
	man := m.Manifest
	data := fileData{
		Source:     source,
		Package:    pkg,
		Name:       man.Name,
		Title:      man.Title,
		Width:      man.Image.Width,
		Height:     man.Image.Height,
		Channels:   man.Image.Channels,
		InputScale: man.InputScale,
		Shift:      m.Shift(),
		Classes:    man.Classes,
	}
	for i := range m.Layers {
		l := &m.Layers[i]
		data.Layers = append(data.Layers, layerData{
			Index:   i + 1,
			Name:    l.Name,
			In:      l.In,
			Out:     l.Out,
			Weights: table(l.Weights),
			Biases:  table(l.Biases),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render model source: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format model source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func table[T int8 | int32](values []T) string {
	var sb strings.Builder
	for i, v := range values {
		if i%valuesPerLine == 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteByte(',')
		if i%valuesPerLine == valuesPerLine-1 || i == len(values)-1 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
