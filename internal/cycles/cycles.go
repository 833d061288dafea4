// Package cycles provides the monotonic cycle counter used to time inference
// passes.
//
// The counter is 32 bits wide like a microcontroller SysTick and wraps.
// Elapsed uses unsigned subtraction, so a single wrap between two readings
// still yields the right duration.
package cycles

import (
	"math/bits"
	"time"

	"github.com/klauspost/cpuid/v2"
)

// DeviceHz is the core clock of the reference board.
const DeviceHz = 48_000_000

// Counter is a free-running cycle counter.
type Counter interface {
	Now() uint32
}

// Elapsed returns end - start modulo 2^32.
func Elapsed(start, end uint32) uint32 {
	return end - start
}

// Clock derives cycle counts from a monotonic time source at a fixed rate.
type Clock struct {
	hz     uint64
	origin time.Time
	now    func() time.Time
}

// NewClock returns a Clock ticking hz times per second from now.
// hz of zero selects HostHz.
func NewClock(hz uint64) *Clock {
	return newClock(hz, time.Now)
}

func newClock(hz uint64, now func() time.Time) *Clock {
	if hz == 0 {
		hz = HostHz()
	}
	return &Clock{hz: hz, origin: now(), now: now}
}

// Hz returns the tick rate.
func (c *Clock) Hz() uint64 { return c.hz }

// Now returns the low 32 bits of the number of ticks since the clock was created.
func (c *Clock) Now() uint32 {
	ns := c.now().Sub(c.origin)
	if ns < 0 {
		ns = 0
	}
	hi, lo := bits.Mul64(uint64(ns), c.hz)
	// hi < 1e9 holds for any run shorter than ~584 years at 1 GHz.
	ticks, _ := bits.Div64(hi, lo, uint64(time.Second))
	return uint32(ticks)
}

// HostHz returns the nominal frequency of the host CPU as reported by cpuid,
// falling back to the boost frequency and then to DeviceHz.
func HostHz() uint64 {
	if hz := cpuid.CPU.Hz; hz > 0 {
		return uint64(hz)
	}
	if hz := cpuid.CPU.BoostFreq; hz > 0 {
		return uint64(hz)
	}
	return DeviceHz
}

// Duration converts a cycle count at hz back to wall time.
func Duration(n uint32, hz uint64) time.Duration {
	if hz == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(n), uint64(time.Second))
	d, _ := bits.Div64(hi, lo, hz)
	return time.Duration(d)
}
