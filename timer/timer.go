package timer

import (
	"sync"
	"time"
)

type Waiter interface {
	Wait(duration time.Duration)
}

/*
 * Simulated clock. Every Wait advances virtual time by the full duration
 * and, when Scale > 0, blocks for duration*Scale of real time.
 */
type Clock struct {
	Scale float64

	mu      sync.Mutex
	elapsed time.Duration
}

func NewClock(scale float64) *Clock {
	return &Clock{Scale: scale}
}

func (c *Clock) Wait(duration time.Duration) {
	if duration <= 0 {
		return
	}

	c.mu.Lock()
	c.elapsed += duration
	c.mu.Unlock()

	if c.Scale > 0 {
		time.Sleep(time.Duration(float64(duration) * c.Scale))
	}
}

func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.elapsed
}
