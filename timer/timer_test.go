package timer

import (
	"testing"
	"time"
)

func TestClockAdvancesVirtualTime(t *testing.T) {
	clock := NewClock(0)

	clock.Wait(2 * time.Second)
	clock.Wait(7 * time.Second)
	clock.Wait(-time.Second)

	if got := clock.Now(); got != 9*time.Second {
		t.Errorf("Now() = %v, expected %v", got, 9*time.Second)
	}
}

func TestClockScaledSleep(t *testing.T) {
	clock := NewClock(0.001)

	start := time.Now()
	clock.Wait(10 * time.Second)

	if real := time.Since(start); real < 10*time.Millisecond {
		t.Errorf("Wait slept %v, expected at least %v", real, 10*time.Millisecond)
	}
	if got := clock.Now(); got != 10*time.Second {
		t.Errorf("Now() = %v, expected %v", got, 10*time.Second)
	}
}
