// Package intake assembles samples from an asynchronous byte stream and hands
// them to a single polling consumer without a lock.
//
// Ownership of the sample buffer alternates on the ready flag: the producer
// owns it while the flag is false, the consumer while it is true. The
// producer's buffer writes happen before the flag store that publishes them,
// and the consumer finishes reading before the store that clears it. Go's
// sync/atomic operations are sequentially consistent, which gives both edges.
package intake

import (
	"fmt"
	"sync/atomic"
)

// State is the protocol state observed by the producer.
type State int

// Protocol states.
const (
	Collecting State = iota
	Pending
)

func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Intake is the shared state between the byte-arrival producer and the
// inference consumer. Exactly one goroutine may call OnByte and exactly one
// may call Sample and Release.
type Intake struct {
	buf    []int8
	cursor atomic.Int32
	ready  atomic.Bool

	completed atomic.Uint64
	dropped   atomic.Uint64
}

// New returns an Intake collecting samples of capacity bytes.
func New(capacity int) *Intake {
	if capacity <= 0 {
		panic(fmt.Sprintf("intake.New: capacity must be positive, got %d", capacity))
	}
	return &Intake{buf: make([]int8, capacity)}
}

// OnByte handles one arriving byte. It reports whether the byte was stored.
//
// While a sample is pending the byte is discarded. Otherwise it is written at
// the cursor; when the buffer becomes full the cursor returns to zero and the
// ready flag is raised as the last effect.
func (in *Intake) OnByte(b byte) bool {
	if in.ready.Load() {
		in.dropped.Add(1)
		return false
	}

	n := in.cursor.Load()
	in.buf[n] = int8(b)
	n++

	if int(n) < len(in.buf) {
		in.cursor.Store(n)
		return true
	}

	in.cursor.Store(0)
	in.completed.Add(1)
	in.ready.Store(true)
	return true
}

// Ready reports whether a full sample awaits consumption.
func (in *Intake) Ready() bool {
	return in.ready.Load()
}

// State returns Pending while a sample awaits consumption.
func (in *Intake) State() State {
	if in.ready.Load() {
		return Pending
	}
	return Collecting
}

// Sample returns the pending sample. The slice aliases the shared buffer and
// is only valid until Release.
func (in *Intake) Sample() []int8 {
	if !in.ready.Load() {
		panic("intake.Sample: no pending sample")
	}
	return in.buf
}

// Release hands the buffer back to the producer. Call it only after every
// read of the slice returned by Sample.
func (in *Intake) Release() {
	if !in.ready.Load() {
		panic("intake.Release: no pending sample")
	}
	in.ready.Store(false)
}

// Capacity returns the sample length in bytes.
func (in *Intake) Capacity() int { return len(in.buf) }

// Cursor returns the number of bytes collected towards the next sample.
func (in *Intake) Cursor() int { return int(in.cursor.Load()) }

// Completed returns the number of samples handed to the consumer.
func (in *Intake) Completed() uint64 { return in.completed.Load() }

// Dropped returns the number of bytes discarded while a sample was pending.
func (in *Intake) Dropped() uint64 { return in.dropped.Load() }
