package period

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPeriodCounterRate(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	c := NewPeriodCounterWithClock(time.Second, clk.now)

	c.Add(100)
	if c.RatePerSec() != 0 {
		t.Fatalf("RatePerSec() = %d before a full period, want 0", c.RatePerSec())
	}

	clk.advance(2 * time.Second)
	c.Add(300)
	if c.Value() != 400 {
		t.Fatalf("Value() = %d, want 400", c.Value())
	}
	if c.RatePerSec() != 200 {
		t.Fatalf("RatePerSec() = %d, want 200", c.RatePerSec())
	}

	clk.advance(500 * time.Millisecond)
	c.Add(1000)
	if c.RatePerSec() != 200 {
		t.Fatalf("RatePerSec() = %d inside a period, want 200", c.RatePerSec())
	}

	clk.advance(500 * time.Millisecond)
	c.Add(0)
	if c.RatePerSec() != 1000 {
		t.Fatalf("RatePerSec() = %d, want 1000", c.RatePerSec())
	}
}

func TestPeriodCounterConcurrentAdd(t *testing.T) {
	c := NewPeriodCounter(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	if c.Value() != 10000 {
		t.Fatalf("Value() = %d, want 10000", c.Value())
	}
}
