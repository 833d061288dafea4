package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"version"}, noEnv, nil, &out))
	assert.Equal(t, "drnet "+version+"\n", out.String())
}

func TestRun_ClassifiesFile(t *testing.T) {
	// Two all-zero samples and a trailing partial one.
	data := make([]byte, 2*1024+10)
	path := filepath.Join(t.TempDir(), "samples.bin")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := run(ctx, []string{
		"-input", path,
		"-poll", "1ms",
		"-cycle-hz", "48000000",
		"-log-level", "error",
		"-workers", "2",
	}, noEnv, nil, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "--- VSD Squadron Diabetic Retinopathy Classifier ---")
	assert.Contains(t, text, "Model Input Size: 32x32 Grayscale (1024 bytes)")
	assert.Contains(t, text, "Running inference on sample #1...")
	assert.Contains(t, text, "Running inference on sample #2...")
	assert.NotContains(t, text, "sample #3")
	assert.Equal(t, 2, strings.Count(text, "Prediction: 1 (Moderate)"))
}

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(),
		[]string{"-poll", "1ms", "-log-level", "error"},
		noEnv, bytes.NewReader(make([]byte, 1024)), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Prediction: 1 (Moderate)")
}

func TestRun_BadConfig(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-baud", "0"}, noEnv, nil, &out)
	require.Error(t, err)

	err = run(context.Background(), []string{"-input", filepath.Join(t.TempDir(), "missing.bin"), "-log-level", "error"}, noEnv, nil, &out)
	require.Error(t, err)
}
