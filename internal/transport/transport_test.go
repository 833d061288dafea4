package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/drnet/internal/intake"
)

type recordSink struct {
	got   []byte
	limit int
}

func (s *recordSink) OnByte(b byte) bool {
	if s.limit > 0 && len(s.got) >= s.limit {
		return false
	}
	s.got = append(s.got, b)
	return true
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("line noise") }

func TestByteTime(t *testing.T) {
	assert.Equal(t, time.Duration(0), ByteTime(0))
	// 115200 baud: 10 bits per frame, ~86.8us per byte.
	assert.Equal(t, 86805*time.Nanosecond, ByteTime(115200))
}

func TestPump_DeliversInOrder(t *testing.T) {
	data := []byte("retina-sample-bytes")
	sink := &recordSink{}

	st, err := Pump(context.Background(), bytes.NewReader(data), sink, Options{BufferSize: 4})
	require.NoError(t, err)
	assert.Equal(t, data, sink.got)
	assert.Equal(t, Stats{Read: len(data), Accepted: len(data)}, st)
}

func TestPump_CountsDrops(t *testing.T) {
	sink := &recordSink{limit: 3}
	st, err := Pump(context.Background(), bytes.NewReader([]byte{1, 2, 3, 4, 5}), sink, Options{})
	require.NoError(t, err)
	assert.Equal(t, Stats{Read: 5, Accepted: 3, Dropped: 2}, st)
}

func TestPump_FeedsIntake(t *testing.T) {
	in := intake.New(4)
	st, err := Pump(context.Background(), bytes.NewReader([]byte{1, 2, 0xff, 4, 9}), in, Options{})
	require.NoError(t, err)

	assert.True(t, in.Ready())
	assert.Equal(t, []int8{1, 2, -1, 4}, in.Sample())
	assert.Equal(t, 1, st.Dropped)
}

func TestPump_ReadError(t *testing.T) {
	_, err := Pump(context.Background(), failingReader{}, &recordSink{}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line noise")
}

func TestPump_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Pump(ctx, bytes.NewReader([]byte{1}), &recordSink{}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPump_PacedCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// 10 baud is one byte per second; the deadline hits first.
	_, err := Pump(ctx, bytes.NewReader(make([]byte, 8)), &recordSink{}, Options{Baud: 10, Pace: true})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSample(&buf, []int8{0, 127, -128}))
	assert.Equal(t, []byte{0, 127, 0x80}, buf.Bytes())

	pr, pw := io.Pipe()
	require.NoError(t, pr.Close())
	require.Error(t, WriteSample(pw, []int8{1}))
}

func TestOpenSerial_InvalidBaud(t *testing.T) {
	_, err := OpenSerial("/dev/null", 0)
	require.Error(t, err)
}
