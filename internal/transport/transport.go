// Package transport moves sample bytes between a byte stream and the intake.
//
// On the device the UART receive interrupt hands each byte to the intake. On
// a host the same role is played by Pump, which reads any io.Reader (a serial
// port, a file, stdin) and feeds the sink one byte at a time, optionally
// paced at the wire rate.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// BitsPerByte is the number of bit times one 8N1 frame occupies.
const BitsPerByte = 10

// ByteSink receives bytes one at a time. It reports whether the byte was
// accepted.
type ByteSink interface {
	OnByte(b byte) bool
}

// Options configure Pump.
type Options struct {
	// Baud paces delivery at the wire rate when Pace is set.
	Baud int
	Pace bool
	// BufferSize is the read chunk size. Defaults to 256.
	BufferSize int
	Logger     *zap.Logger
}

// Stats summarizes a Pump run.
type Stats struct {
	Read     int
	Accepted int
	Dropped  int
}

// ByteTime returns the duration of one frame at baud.
func ByteTime(baud int) time.Duration {
	if baud <= 0 {
		return 0
	}
	return time.Second * BitsPerByte / time.Duration(baud)
}

// Pump copies r into sink until r is exhausted or ctx is cancelled. io.EOF is
// not an error; cancellation returns ctx.Err().
func Pump(ctx context.Context, r io.Reader, sink ByteSink, opts Options) (Stats, error) {
	if opts.BufferSize <= 0 {
		opts.BufferSize = 256
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	var gap time.Duration
	if opts.Pace {
		gap = ByteTime(opts.Baud)
	}

	var st Stats
	buf := make([]byte, opts.BufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if gap > 0 {
				if werr := wait(ctx, gap); werr != nil {
					return st, werr
				}
			}
			st.Read++
			if sink.OnByte(b) {
				st.Accepted++
			} else {
				st.Dropped++
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				opts.Logger.Debug("input exhausted",
					zap.Int("read", st.Read),
					zap.Int("dropped", st.Dropped))
				return st, nil
			}
			return st, fmt.Errorf("read failed: %w", err)
		}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// WriteSample sends one sample as raw bytes.
func WriteSample(w io.Writer, sample []int8) error {
	buf := make([]byte, len(sample))
	for i, v := range sample {
		buf[i] = byte(v)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	return nil
}

// OpenSerial opens a serial port in 8N1 mode at baud.
func OpenSerial(name string, baud int) (serial.Port, error) {
	if baud <= 0 {
		return nil, fmt.Errorf("invalid baud rate %d", baud)
	}
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}
	return port, nil
}

// Ports lists the serial ports present on the host.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}
