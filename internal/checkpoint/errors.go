package checkpoint

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrTensorNotFound   = errors.New("tensor not found")
	ErrHeaderTooLarge   = errors.New("header exceeds maximum size")
	ErrOutOfBounds      = errors.New("tensor extends beyond data section")
	ErrBadOffsets       = errors.New("invalid data offsets")
	ErrShapeMismatch    = errors.New("tensor shape mismatch")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// DTypeError reports a tensor stored with an unexpected dtype.
type DTypeError struct {
	Tensor string
	Got    DType
	Want   DType
}

// Error implements the error interface.
func (e *DTypeError) Error() string {
	return fmt.Sprintf("tensor %q: dtype %s, expected %s", e.Tensor, e.Got, e.Want)
}
