// Package main provides genmodel, which compiles a float checkpoint into the
// Go source of the classifier's fixed-point parameter tables.
//
// Usage:
//
//	genmodel -manifest dr_mlp.yaml -checkpoint dr_mlp.safetensors -out model_gen.go [-check 1000]
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/born-ml/drnet/internal/checkpoint"
	"github.com/born-ml/drnet/internal/codegen"
	"github.com/born-ml/drnet/internal/logging"
	"github.com/born-ml/drnet/internal/manifest"
	"github.com/born-ml/drnet/internal/quant"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "genmodel: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("genmodel", flag.ContinueOnError)
	manifestPath := fs.String("manifest", "", "deployment manifest (YAML)")
	checkpointPath := fs.String("checkpoint", "", "float checkpoint (safetensors)")
	out := fs.String("out", "", "output file (default stdout)")
	pkg := fs.String("package", "model", "package name of the generated file")
	check := fs.Int("check", 0, "compare against the float reference on N random inputs")
	seed := fs.Uint64("seed", 1, "seed for -check inputs")
	logLevel := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *manifestPath == "" || *checkpointPath == "" {
		return errors.New("-manifest and -checkpoint are required")
	}

	log, err := logging.New(*logLevel, "console")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	man, err := manifest.Load(*manifestPath)
	if err != nil {
		return err
	}
	if man.CheckpointSHA256 != "" {
		if err := checkpoint.VerifyFile(*checkpointPath, man.CheckpointSHA256); err != nil {
			return err
		}
		log.Debug("checkpoint verified", zap.String("sha256", man.CheckpointSHA256))
	}

	r, err := checkpoint.Open(*checkpointPath)
	if err != nil {
		return err
	}
	defer r.Close()

	m, err := quant.Compile(r, man)
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", *checkpointPath, err)
	}
	for i := range m.Layers {
		l := &m.Layers[i]
		log.Info("layer compiled",
			zap.String("layer", l.Name),
			zap.Int("in", l.In),
			zap.Int("out", l.Out))
	}

	if *check > 0 {
		net, err := m.Network()
		if err != nil {
			return err
		}
		ref := quant.NewReference(net, man.InputScale)
		samples := quant.RandomSamples(*seed, *check, net.InputSize(), int8(man.InputScale))
		log.Info("float reference agreement",
			zap.Int("samples", *check),
			zap.Float64("agreement", quant.Agreement(net, ref, samples)))
	}

	var buf bytes.Buffer
	if err := codegen.Generate(&buf, m, *pkg, filepath.Base(*checkpointPath)); err != nil {
		return err
	}
	if *out == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // generated source is world-readable.
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	log.Info("wrote model", zap.String("file", *out), zap.Int("bytes", buf.Len()))
	return nil
}
