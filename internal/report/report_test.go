package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestText_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)

	r.Banner(Banner{Title: "Retinopathy Classifier", Width: 32, Height: 32, Channels: 1})
	r.Ready()
	r.PassStarted(3)
	r.Prediction(3, 2, "No_DR", 81234)
	r.OutOfBounds(4, 9)
	r.Fault("HardFault Occurred!")

	want := "\n--- Retinopathy Classifier ---\n" +
		"Model Input Size: 32x32 Grayscale (1024 bytes)\n" +
		"Ready to receive image data via UART...\n" +
		"Running inference on sample #3...\n" +
		"----------------------------------------\n" +
		"Prediction: 2 (No_DR)\n" +
		"Timing: 81234 clock cycles\n" +
		"----------------------------------------\n\n" +
		"Error: Prediction index out of bounds.\n" +
		"HardFault Occurred!\n"
	assert.Equal(t, want, buf.String())
}

func TestZap_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewZap(zap.New(core))

	r.Prediction(7, 1, "Moderate", 500)
	r.OutOfBounds(8, 12)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "prediction", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(7), fields["sample"])
	assert.Equal(t, "Moderate", fields["label"])
	assert.Equal(t, uint32(500), fields["cycles"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(12), entries[1].ContextMap()["class"])
}

func TestZap_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewZap(nil).Fault("x")
	})
}

func TestMulti_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewText(&a), NewText(&b)}

	m.PassStarted(1)

	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "sample #1")

	assert.NotPanics(t, func() { Discard.Fault("ignored") })
}
