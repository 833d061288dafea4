package qnn

import "errors"

// Layer and network construction errors.
var (
	ErrShape    = errors.New("parameter shape mismatch")
	ErrOverflow = errors.New("accumulator may overflow")
	ErrChain    = errors.New("layer dimensions do not chain")
)
