package engine

import "errors"

// Engine errors.
var (
	ErrBusy   = errors.New("inference pass already running")
	ErrHalted = errors.New("engine halted after fault")
)
