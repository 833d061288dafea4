package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// Tensor is a named tensor ready to be written.
type Tensor struct {
	Name  string
	DType DType
	Shape []int
	Data  []byte
}

// Float32Tensor encodes values as an F32 tensor.
func Float32Tensor(name string, shape []int, values []float32) Tensor {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(v))
	}
	return Tensor{Name: name, DType: F32, Shape: shape, Data: data}
}

// Int8Tensor encodes values as an I8 tensor.
func Int8Tensor(name string, shape []int, values []int8) Tensor {
	data := make([]byte, len(values))
	for i, v := range values {
		data[i] = byte(v)
	}
	return Tensor{Name: name, DType: I8, Shape: shape, Data: data}
}

// Int32Tensor encodes values as an I32 tensor.
func Int32Tensor(name string, shape []int, values []int32) Tensor {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[4*i:], uint32(v))
	}
	return Tensor{Name: name, DType: I32, Shape: shape, Data: data}
}

// Write encodes tensors in the given order. The header is padded with spaces
// to an 8-byte boundary.
func Write(w io.Writer, metadata map[string]string, tensors ...Tensor) error {
	header := make(map[string]any, len(tensors)+1)
	if len(metadata) > 0 {
		header["__metadata__"] = metadata
	}

	var offset int64
	for _, t := range tensors {
		if _, dup := header[t.Name]; dup {
			return fmt.Errorf("duplicate tensor name %q", t.Name)
		}
		info := TensorInfo{DType: t.DType, Shape: t.Shape}
		if sz := t.DType.Size(); sz == 0 || info.NumElements()*sz != len(t.Data) {
			return fmt.Errorf("tensor %s: %w: %v %s with %d bytes", t.Name, ErrShapeMismatch, t.Shape, t.DType, len(t.Data))
		}
		info.DataOffsets = [2]int64{offset, offset + int64(len(t.Data))}
		offset += int64(len(t.Data))
		header[t.Name] = info
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	for len(headerJSON)%8 != 0 {
		headerJSON = append(headerJSON, ' ')
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, t := range tensors {
		if _, err := w.Write(t.Data); err != nil {
			return fmt.Errorf("failed to write tensor %s: %w", t.Name, err)
		}
	}
	return nil
}

// WriteFile writes a checkpoint to path.
func WriteFile(path string, metadata map[string]string, tensors ...Tensor) (err error) {
	//nolint:gosec // G304: output path comes from the caller.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Write(f, metadata, tensors...)
}
