// Package main provides sendsample, which converts retina images to the
// classifier's sample format and sends them to the device.
//
// Arguments are image files (JPEG, PNG) or raw .bin samples. Samples are
// written to a serial port (-port), a file (-out), or stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/drnet/internal/logging"
	"github.com/born-ml/drnet/internal/model"
	"github.com/born-ml/drnet/internal/preprocess"
	"github.com/born-ml/drnet/internal/transport"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "sendsample: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sendsample", flag.ContinueOnError)
	port := fs.String("port", "", "serial port to send to")
	baud := fs.Int("baud", 115200, "serial baud rate")
	out := fs.String("out", "", "file to write samples to")
	gap := fs.Duration("gap", 500*time.Millisecond, "pause between samples")
	list := fs.Bool("list", false, "list serial ports and exit")
	logLevel := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := logging.New(*logLevel, "console")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if *list {
		ports, err := transport.Ports()
		if err != nil {
			return err
		}
		for _, p := range ports {
			fmt.Fprintln(stdout, p)
		}
		return nil
	}

	if fs.NArg() == 0 {
		return errors.New("no input files")
	}
	if *port != "" && *out != "" {
		return errors.New("-port and -out are mutually exclusive")
	}

	var w io.Writer = stdout
	switch {
	case *port != "":
		p, err := transport.OpenSerial(*port, *baud)
		if err != nil {
			return err
		}
		defer p.Close()
		w = p
	case *out != "":
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", *out, err)
		}
		defer f.Close()
		w = f
	}

	geometry := preprocess.Geometry{
		Width:    model.ImageWidth,
		Height:   model.ImageHeight,
		Channels: model.ImageChannels,
	}
	for i, path := range fs.Args() {
		sample, err := load(path, geometry)
		if err != nil {
			return err
		}
		if i > 0 && *port != "" {
			time.Sleep(*gap)
		}
		if err := transport.WriteSample(w, sample); err != nil {
			return err
		}
		log.Info("sample sent", zap.String("file", path), zap.Int("bytes", len(sample)))
	}
	return nil
}

func load(path string, g preprocess.Geometry) ([]int8, error) {
	if !strings.EqualFold(filepath.Ext(path), ".bin") {
		return preprocess.File(path, g)
	}

	//nolint:gosec // G304: sample paths come from the command line.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample: %w", err)
	}
	if len(data) != g.Size() {
		return nil, fmt.Errorf("%s: sample is %d bytes, expected %d", path, len(data), g.Size())
	}
	sample := make([]int8, len(data))
	for i, b := range data {
		sample[i] = int8(b)
	}
	return sample, nil
}
