package testutil

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/akyairhashvil/paradajz/internal/timer"
)

// Epoch is the default start instant of fake clocks built here.
var Epoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)

// ExpiryCounter counts OnExpiry calls.
type ExpiryCounter struct {
	calls atomic.Int32
}

func (c *ExpiryCounter) OnExpiry() { c.calls.Add(1) }

func (c *ExpiryCounter) Calls() int { return int(c.calls.Load()) }

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	duration time.Duration
	clock    *FakeClock
	counter  *ExpiryCounter
	paused   bool
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{
		duration: time.Minute,
		clock:    NewFakeClock(Epoch),
		counter:  &ExpiryCounter{},
	}
}

func (b *TimerBuilder) WithDuration(d time.Duration) *TimerBuilder {
	b.duration = d
	return b
}

func (b *TimerBuilder) WithClock(c *FakeClock) *TimerBuilder {
	b.clock = c
	return b
}

func (b *TimerBuilder) Paused() *TimerBuilder {
	b.paused = true
	return b
}

// Build returns the timer with its clock and expiry counter.
func (b *TimerBuilder) Build(t *testing.T) (*timer.Timer, *FakeClock, *ExpiryCounter) {
	t.Helper()
	tm, err := timer.New(b.duration, timer.WithClock(b.clock), timer.WithExpiryHandler(b.counter))
	if err != nil {
		t.Fatalf("timer.New(%s) failed: %v", b.duration, err)
	}
	if b.paused {
		tm.TogglePause()
	}
	return tm, b.clock, b.counter
}
