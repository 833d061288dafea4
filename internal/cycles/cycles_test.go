package cycles

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func TestElapsed(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint32
		want       uint32
	}{
		{"forward", 100, 250, 150},
		{"same", 7, 7, 0},
		{"wrap", math.MaxUint32 - 9, 20, 30},
		{"wrap to zero", math.MaxUint32, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Elapsed(tt.start, tt.end))
		})
	}
}

func TestClock_TicksAtRate(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := newClock(DeviceHz, ft.now)

	assert.Equal(t, uint32(0), c.Now())

	ft.t = ft.t.Add(time.Millisecond)
	assert.Equal(t, uint32(48_000), c.Now())

	ft.t = ft.t.Add(time.Second)
	assert.Equal(t, uint32(48_048_000), c.Now())
}

func TestClock_Wraps(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := newClock(1_000_000_000, ft.now)

	ft.t = ft.t.Add(4 * time.Second)
	start := c.Now()
	ft.t = ft.t.Add(500 * time.Millisecond)
	end := c.Now()

	// 4e9 and 4.5e9 straddle 2^32.
	assert.Less(t, end, start)
	assert.Equal(t, uint32(500_000_000), Elapsed(start, end))
}

func TestClock_ClampsBackwardsTime(t *testing.T) {
	ft := &fakeTime{t: time.Unix(50, 0)}
	c := newClock(1000, ft.now)
	ft.t = time.Unix(10, 0)

	assert.Equal(t, uint32(0), c.Now())
}

func TestNewClock_DefaultsToHost(t *testing.T) {
	c := NewClock(0)
	assert.Equal(t, HostHz(), c.Hz())
	assert.Greater(t, c.Hz(), uint64(0))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Millisecond, Duration(48_000, DeviceHz))
	assert.Equal(t, time.Duration(0), Duration(5, 0))
}
