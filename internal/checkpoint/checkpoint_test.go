package checkpoint

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCheckpoint writes a small checkpoint with one tensor per dtype.
func createTestCheckpoint(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.safetensors")
	err := WriteFile(path, map[string]string{"format": "pt"},
		Float32Tensor("fc.weight", []int{2, 3}, []float32{1, 2, 3, 4, 5, 6}),
		Float32Tensor("fc.bias", []int{2}, []float32{0.5, -0.25}),
		Int8Tensor("q.weight", []int{2, 2}, []int8{-128, -1, 0, 127}),
		Int32Tensor("q.bias", []int{2}, []int32{-70000, 70000}),
	)
	require.NoError(t, err)
	return path
}

func TestReader_RoundTrip(t *testing.T) {
	r, err := Open(createTestCheckpoint(t))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, map[string]string{"format": "pt"}, r.Metadata())
	assert.Equal(t, []string{"fc.bias", "fc.weight", "q.bias", "q.weight"}, r.TensorNames())

	w, err := r.Float32s("fc.weight", []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, w)

	b, err := r.Float32s("fc.bias", nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.25}, b)

	q, err := r.Int8s("q.weight", []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int8{-128, -1, 0, 127}, q)

	qb, err := r.Int32s("q.bias", []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int32{-70000, 70000}, qb)

	info, err := r.TensorInfo("fc.weight")
	require.NoError(t, err)
	assert.Equal(t, 6, info.NumElements())
	assert.Equal(t, [2]int64{0, 24}, info.DataOffsets)
}

func TestReader_Errors(t *testing.T) {
	r, err := Open(createTestCheckpoint(t))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Float32s("missing", nil)
	require.ErrorIs(t, err, ErrTensorNotFound)

	_, err = r.Float32s("fc.weight", []int{3, 2})
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = r.Int8s("fc.weight", nil)
	var dtErr *DTypeError
	require.ErrorAs(t, err, &dtErr)
	assert.Equal(t, F32, dtErr.Got)
	assert.Equal(t, I8, dtErr.Want)
	assert.Contains(t, dtErr.Error(), "fc.weight")
}

func TestNewReader_RejectsCorruptHeaders(t *testing.T) {
	t.Run("header too large", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(1<<40)))
		_, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.ErrorIs(t, err, ErrHeaderTooLarge)
	})

	t.Run("tensor beyond data", func(t *testing.T) {
		header := []byte(`{"w":{"dtype":"F32","shape":[4],"data_offsets":[0,16]}}`)
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(header))))
		buf.Write(header)
		buf.Write(make([]byte, 8))
		_, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("size disagrees with shape", func(t *testing.T) {
		header := []byte(`{"w":{"dtype":"F32","shape":[3],"data_offsets":[0,8]}}`)
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(header))))
		buf.Write(header)
		buf.Write(make([]byte, 8))
		_, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.ErrorIs(t, err, ErrBadOffsets)
	})

	t.Run("negative dimensions", func(t *testing.T) {
		header := []byte(`{"w":{"dtype":"F32","shape":[-1,-4],"data_offsets":[0,16]}}`)
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(header))))
		buf.Write(header)
		buf.Write(make([]byte, 16))
		_, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("zero dimension", func(t *testing.T) {
		header := []byte(`{"w":{"dtype":"F32","shape":[0,4],"data_offsets":[0,0]}}`)
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(header))))
		buf.Write(header)
		_, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("bad json", func(t *testing.T) {
		header := []byte(`{"w":`)
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(header))))
		buf.Write(header)
		_, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.Error(t, err)
	})
}

func TestWrite_HeaderAlignedAndValidated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, Int8Tensor("x", []int{3}, []int8{1, 2, 3})))

	headerSize := binary.LittleEndian.Uint64(buf.Bytes()[:8])
	assert.Zero(t, headerSize%8)

	err := Write(&buf, nil, Tensor{Name: "bad", DType: F32, Shape: []int{2}, Data: make([]byte, 4)})
	require.ErrorIs(t, err, ErrShapeMismatch)

	err = Write(&buf, nil, Int8Tensor("x", []int{1}, []int8{1}), Int8Tensor("x", []int{1}, []int8{1}))
	require.Error(t, err)
}

func TestChecksum(t *testing.T) {
	// SHA-256 of the empty input.
	sum, err := Checksum(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", sum)

	path := createTestCheckpoint(t)
	got, err := FileChecksum(path)
	require.NoError(t, err)
	assert.Len(t, got, 64)

	require.NoError(t, VerifyFile(path, strings.ToUpper(got)))
	assert.ErrorIs(t, VerifyFile(path, strings.Repeat("0", 64)), ErrChecksumMismatch)

	_, err = FileChecksum(filepath.Join(t.TempDir(), "missing.safetensors"))
	require.Error(t, err)
}
