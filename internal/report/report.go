// Package report is the reporting surface of the classifier: the console
// lines the device prints and their structured-log equivalent.
package report

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Banner describes the deployment announced at startup.
type Banner struct {
	Title    string
	Width    int
	Height   int
	Channels int
}

// InputSize returns the sample length in bytes.
func (b Banner) InputSize() int { return b.Width * b.Height * b.Channels }

// Reporter receives the observable events of the device.
type Reporter interface {
	Banner(b Banner)
	Ready()
	PassStarted(sample int)
	Prediction(sample, index int, label string, cycles uint32)
	OutOfBounds(sample, index int)
	Fault(msg string)
}

const rule = "----------------------------------------"

// Text writes the plain console lines of the device to an io.Writer.
// Write errors are ignored; the console has nowhere to report them.
type Text struct {
	mu sync.Mutex
	w  io.Writer
}

// NewText returns a Text reporter writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.w, format, args...)
}

// Banner implements Reporter.
func (t *Text) Banner(b Banner) {
	kind := "Grayscale"
	if b.Channels == 3 {
		kind = "RGB"
	}
	t.printf("\n--- %s ---\nModel Input Size: %dx%d %s (%d bytes)\n",
		b.Title, b.Width, b.Height, kind, b.InputSize())
}

// Ready implements Reporter.
func (t *Text) Ready() {
	t.printf("Ready to receive image data via UART...\n")
}

// PassStarted implements Reporter.
func (t *Text) PassStarted(sample int) {
	t.printf("Running inference on sample #%d...\n", sample)
}

// Prediction implements Reporter.
func (t *Text) Prediction(_ int, index int, label string, cycles uint32) {
	t.printf("%s\nPrediction: %d (%s)\nTiming: %d clock cycles\n%s\n\n",
		rule, index, label, cycles, rule)
}

// OutOfBounds implements Reporter.
func (t *Text) OutOfBounds(_, _ int) {
	t.printf("Error: Prediction index out of bounds.\n")
}

// Fault implements Reporter.
func (t *Text) Fault(msg string) {
	t.printf("%s\n", msg)
}

// Zap logs every event through a zap.Logger.
type Zap struct {
	log *zap.Logger
}

// NewZap returns a Zap reporter. A nil logger discards everything.
func NewZap(log *zap.Logger) *Zap {
	if log == nil {
		log = zap.NewNop()
	}
	return &Zap{log: log}
}

// Banner implements Reporter.
func (z *Zap) Banner(b Banner) {
	z.log.Info("classifier started",
		zap.String("title", b.Title),
		zap.Int("width", b.Width),
		zap.Int("height", b.Height),
		zap.Int("channels", b.Channels),
		zap.Int("input_bytes", b.InputSize()),
	)
}

// Ready implements Reporter.
func (z *Zap) Ready() {
	z.log.Debug("waiting for sample")
}

// PassStarted implements Reporter.
func (z *Zap) PassStarted(sample int) {
	z.log.Debug("inference started", zap.Int("sample", sample))
}

// Prediction implements Reporter.
func (z *Zap) Prediction(sample, index int, label string, cycles uint32) {
	z.log.Info("prediction",
		zap.Int("sample", sample),
		zap.Int("class", index),
		zap.String("label", label),
		zap.Uint32("cycles", cycles),
	)
}

// OutOfBounds implements Reporter.
func (z *Zap) OutOfBounds(sample, index int) {
	z.log.Warn("prediction index out of bounds",
		zap.Int("sample", sample),
		zap.Int("class", index),
	)
}

// Fault implements Reporter.
func (z *Zap) Fault(msg string) {
	z.log.Error("fault", zap.String("message", msg))
}

// Multi fans every event out to several reporters in order.
type Multi []Reporter

// Banner implements Reporter.
func (m Multi) Banner(b Banner) {
	for _, r := range m {
		r.Banner(b)
	}
}

// Ready implements Reporter.
func (m Multi) Ready() {
	for _, r := range m {
		r.Ready()
	}
}

// PassStarted implements Reporter.
func (m Multi) PassStarted(sample int) {
	for _, r := range m {
		r.PassStarted(sample)
	}
}

// Prediction implements Reporter.
func (m Multi) Prediction(sample, index int, label string, cycles uint32) {
	for _, r := range m {
		r.Prediction(sample, index, label, cycles)
	}
}

// OutOfBounds implements Reporter.
func (m Multi) OutOfBounds(sample, index int) {
	for _, r := range m {
		r.OutOfBounds(sample, index)
	}
}

// Fault implements Reporter.
func (m Multi) Fault(msg string) {
	for _, r := range m {
		r.Fault(msg)
	}
}

// Discard is a Reporter that drops everything.
var Discard Reporter = Multi(nil)
