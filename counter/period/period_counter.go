package period

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/tprng/counter"
)

var _ counter.Counter = &periodCounter{}

// Clock returns the current time.
type Clock func() time.Time

type periodCounter struct {
	value      int64
	period     time.Duration
	ratePerSec int64
	now        Clock

	lastValue int64
	lastTime  time.Time
	mut       sync.Mutex
}

// NewPeriodCounter returns a counter whose rate is refreshed at most once
// per period.
func NewPeriodCounter(period time.Duration) counter.Counter {
	return NewPeriodCounterWithClock(period, time.Now)
}

// NewPeriodCounterWithClock is NewPeriodCounter with an explicit time source.
func NewPeriodCounterWithClock(period time.Duration, now Clock) counter.Counter {
	return &periodCounter{
		period:   period,
		now:      now,
		lastTime: now(),
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *periodCounter) RatePerSec() int64 {
	return atomic.LoadInt64(&c.ratePerSec)
}

// Add implements Counter.
func (c *periodCounter) Add(bytes int64) {
	atomic.AddInt64(&c.value, bytes)
	c.check()
}

func (c *periodCounter) check() {
	c.mut.Lock()
	defer c.mut.Unlock()

	now := c.now()
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.period || elapsed <= 0 {
		return
	}

	value := c.Value()
	atomic.StoreInt64(&c.ratePerSec, int64(float64(value-c.lastValue)/elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = now
}
