// Package main provides drnet, a host emulator of the retinopathy classifier
// firmware. It reads sample bytes from a serial port, a file or stdin, runs
// the compiled-in network on each complete sample and prints the same
// console lines as the device.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/cpuid/v2"
	"go.uber.org/zap"

	"github.com/born-ml/drnet/internal/config"
	"github.com/born-ml/drnet/internal/cycles"
	"github.com/born-ml/drnet/internal/engine"
	"github.com/born-ml/drnet/internal/intake"
	"github.com/born-ml/drnet/internal/logging"
	"github.com/born-ml/drnet/internal/model"
	"github.com/born-ml/drnet/internal/parallel"
	"github.com/born-ml/drnet/internal/report"
	"github.com/born-ml/drnet/internal/transport"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Getenv, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "drnet: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "drnet %s\n", version)
		return nil
	}

	cfg, err := config.Load(args, getenv)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log, _ = logging.WithSession(log)

	hz := cfg.CycleHz
	if hz == 0 {
		hz = cycles.HostHz()
	}

	net := model.Network()
	if cfg.Workers > 1 {
		net = net.WithParallel(parallel.DefaultConfig().WithWorkers(cfg.Workers))
	}

	log.Info("starting",
		zap.String("version", version),
		zap.String("cpu", cpuid.CPU.BrandName),
		zap.Uint64("cycle_hz", hz),
		zap.String("source", cfg.Source()),
		zap.Int("workers", cfg.Workers),
	)

	in := intake.New(model.InputSize)
	eng := engine.New(net, model.Classes(), engine.Options{
		Counter:  cycles.NewClock(hz),
		Reporter: report.Multi{report.NewText(stdout), report.NewZap(log)},
		Logger:   log,
		Poll:     cfg.Poll,
		Banner:   model.Banner(),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	served := make(chan error, 1)
	go func() { served <- eng.Serve(ctx, in) }()

	opts := transport.Options{Baud: cfg.Baud, Pace: cfg.Pace, Logger: log}
	feedErr := feed(ctx, cfg, stdin, in, opts, cfg.Poll)

	cancel()
	serveErr := <-served

	log.Info("stopped",
		zap.Int("samples", eng.Samples()),
		zap.Uint64("dropped", in.Dropped()),
	)

	if feedErr != nil && !errors.Is(feedErr, context.Canceled) {
		return feedErr
	}
	return serveErr
}

// feed delivers input to the intake. A serial port streams until ctx ends,
// dropping bytes that arrive while a sample is pending, as the device does.
// File and stdin input is delivered one sample at a time, each after the
// previous one has been consumed, and feed returns once the last complete
// sample has been classified.
func feed(ctx context.Context, cfg config.Config, stdin io.Reader, in *intake.Intake, opts transport.Options, poll time.Duration) error {
	if cfg.Port != "" {
		port, err := transport.OpenSerial(cfg.Port, cfg.Baud)
		if err != nil {
			return err
		}
		go func() {
			<-ctx.Done()
			_ = port.Close()
		}()
		_, err = transport.Pump(ctx, port, in, opts)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	src := stdin
	if cfg.Input != "" && cfg.Input != "-" {
		//nolint:gosec // G304: input path comes from the command line.
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	buf := make([]byte, in.Capacity())
	for {
		n, err := io.ReadFull(src, buf)
		if n > 0 {
			if werr := waitIdle(ctx, in, poll); werr != nil {
				return werr
			}
			if _, perr := transport.Pump(ctx, bytes.NewReader(buf[:n]), in, opts); perr != nil {
				return perr
			}
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.ErrUnexpectedEOF):
			opts.Logger.Warn("partial sample left in intake", zap.Int("bytes", n))
			return nil
		case errors.Is(err, io.EOF):
			return waitIdle(ctx, in, poll)
		default:
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func waitIdle(ctx context.Context, in *intake.Intake, poll time.Duration) error {
	for in.Ready() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(poll):
		}
	}
	return nil
}
