package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"sort"
)

// DType is a SafeTensors element type.
type DType string

// Supported dtypes.
const (
	F32 DType = "F32"
	I8  DType = "I8"
	I32 DType = "I32"
)

// Size returns the element size in bytes, or 0 for unsupported dtypes.
func (d DType) Size() int {
	switch d {
	case F32, I32:
		return 4
	case I8:
		return 1
	default:
		return 0
	}
}

// maxHeaderSize bounds the JSON header.
const maxHeaderSize = 16 << 20

// TensorInfo describes a tensor in the header.
type TensorInfo struct {
	DType       DType    `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end) relative to the data section
}

// NumElements returns the product of the shape.
func (t TensorInfo) NumElements() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// Reader reads tensors from a SafeTensors checkpoint.
type Reader struct {
	r          io.ReaderAt
	closer     io.Closer
	metadata   map[string]string
	tensors    map[string]TensorInfo
	dataOffset int64
	dataSize   int64
}

// Open opens the checkpoint at path.
func Open(path string) (*Reader, error) {
	//nolint:gosec // G304: checkpoint paths come from the command line.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat checkpoint: %w", err)
	}
	r, err := NewReader(f, st.Size())
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader parses the header of a checkpoint of the given size held in r.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	var sizeBuf [8]byte
	if _, err := r.ReadAt(sizeBuf[:], 0); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	headerSize := binary.LittleEndian.Uint64(sizeBuf[:])
	if headerSize > maxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}
	if int64(8+headerSize) > size { //nolint:gosec // G115: bounded by maxHeaderSize.
		return nil, fmt.Errorf("header size %d exceeds file size %d", headerSize, size)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := r.ReadAt(headerBytes, 8); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	rd := &Reader{
		r:          r,
		tensors:    make(map[string]TensorInfo, len(raw)),
		dataOffset: int64(8 + headerSize), //nolint:gosec // G115: bounded by maxHeaderSize.
	}
	rd.dataSize = size - rd.dataOffset

	for name, value := range raw {
		if name == "__metadata__" {
			if err := json.Unmarshal(value, &rd.metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
			continue
		}
		var info TensorInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tensor %s: %w", name, err)
		}
		if err := rd.validate(name, info); err != nil {
			return nil, err
		}
		rd.tensors[name] = info
	}

	return rd, nil
}

func (r *Reader) validate(name string, info TensorInfo) error {
	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if start < 0 || end < start {
		return fmt.Errorf("tensor %s: %w: [%d, %d]", name, ErrBadOffsets, start, end)
	}
	for _, d := range info.Shape {
		if d <= 0 {
			return fmt.Errorf("tensor %s: %w: non-positive dimension in %v", name, ErrShapeMismatch, info.Shape)
		}
	}
	if end > r.dataSize {
		return fmt.Errorf("tensor %s: %w: ends at %d, data is %d bytes", name, ErrOutOfBounds, end, r.dataSize)
	}
	if sz := info.DType.Size(); sz > 0 && int64(info.NumElements()*sz) != end-start {
		return fmt.Errorf("tensor %s: %w: %v %s needs %d bytes, has %d",
			name, ErrBadOffsets, info.Shape, info.DType, info.NumElements()*sz, end-start)
	}
	return nil
}

// Close releases the underlying file, if Open created it.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Metadata returns the __metadata__ map of the header.
func (r *Reader) Metadata() map[string]string {
	return r.metadata
}

// TensorNames returns all tensor names in sorted order.
func (r *Reader) TensorNames() []string {
	names := make([]string, 0, len(r.tensors))
	for name := range r.tensors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TensorInfo returns the header entry for name.
func (r *Reader) TensorInfo(name string) (TensorInfo, error) {
	info, ok := r.tensors[name]
	if !ok {
		return TensorInfo{}, fmt.Errorf("%w: %s", ErrTensorNotFound, name)
	}
	return info, nil
}

// ReadTensorData returns the raw bytes of a tensor.
func (r *Reader) ReadTensorData(name string) ([]byte, error) {
	info, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}
	start := r.dataOffset + info.DataOffsets[0]
	data := make([]byte, info.DataOffsets[1]-info.DataOffsets[0])
	if _, err := r.r.ReadAt(data, start); err != nil {
		return nil, fmt.Errorf("failed to read tensor %s: %w", name, err)
	}
	return data, nil
}

func (r *Reader) read(name string, want DType, shape []int) ([]byte, error) {
	info, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}
	if info.DType != want {
		return nil, &DTypeError{Tensor: name, Got: info.DType, Want: want}
	}
	if shape != nil && !slices.Equal(info.Shape, shape) {
		return nil, fmt.Errorf("tensor %s: %w: expected %v, got %v", name, ErrShapeMismatch, shape, info.Shape)
	}
	return r.ReadTensorData(name)
}

// Float32s reads an F32 tensor. A non-nil shape must match exactly.
func (r *Reader) Float32s(name string, shape []int) ([]float32, error) {
	data, err := r.read(name, F32, shape)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return out, nil
}

// Int8s reads an I8 tensor. A non-nil shape must match exactly.
func (r *Reader) Int8s(name string, shape []int) ([]int8, error) {
	data, err := r.read(name, I8, shape)
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(data))
	for i, b := range data {
		out[i] = int8(b)
	}
	return out, nil
}

// Int32s reads an I32 tensor. A non-nil shape must match exactly.
func (r *Reader) Int32s(name string, shape []int) ([]int32, error) {
	data, err := r.read(name, I32, shape)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(data)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return out, nil
}
