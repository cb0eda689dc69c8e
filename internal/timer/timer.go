// Package timer implements the countdown state machine. It performs no I/O;
// the caller drives it with Tick and reads it back for display.
package timer

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/paradajz/internal/models"
	"github.com/akyairhashvil/paradajz/internal/util"
)

var ErrNegativeDuration = errors.New("timer duration must not be negative")

// Option configures a Timer at construction.
type Option func(*Timer)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithExpiryHandler sets the handler fired once when the countdown runs out.
func WithExpiryHandler(h ExpiryHandler) Option {
	return func(t *Timer) {
		t.onExpiry = h
	}
}

// Timer counts down from a configured duration.
//
// Pausing is lazy: TogglePause only flips the flag, and every Tick while
// paused moves finishAt to now+remaining. The first Tick after resuming
// therefore counts down from the remaining time frozen at the last paused
// Tick.
type Timer struct {
	clock    Clock
	onExpiry ExpiryHandler

	duration   time.Duration
	remaining  time.Duration
	elapsed    time.Duration
	paused     bool
	terminated bool
	finishAt   time.Time
}

// New creates a running timer that expires after d.
func New(d time.Duration, opts ...Option) (*Timer, error) {
	t := &Timer{clock: SystemClock{}}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.Reset(d); err != nil {
		return nil, err
	}
	return t, nil
}

// Reset reinitializes the timer as if it was newly created with d.
func (t *Timer) Reset(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, d)
	}
	t.duration = d
	t.finishAt = t.clock.Now().Add(d)
	t.elapsed = 0
	t.remaining = d
	t.paused = false
	t.terminated = false
	return nil
}

// Tick recomputes remaining and elapsed time against the clock. It is a
// no-op once the timer has expired or was terminated. The expiry handler
// runs on the Tick that takes remaining from positive to zero or below.
func (t *Timer) Tick() {
	if t.terminated || t.Expired() {
		return
	}

	now := t.clock.Now()
	if t.paused {
		t.finishAt = now.Add(t.remaining)
		return
	}
	t.remaining = t.finishAt.Sub(now)
	t.elapsed = t.duration - t.remaining

	if t.Expired() && t.onExpiry != nil {
		t.onExpiry.OnExpiry()
	}
}

func (t *Timer) TogglePause() {
	t.paused = !t.paused
}

// Terminate marks the timer as stopped by the user. It cannot be undone
// except by Reset.
func (t *Timer) Terminate() {
	t.terminated = true
}

func (t *Timer) Expired() bool {
	return t.remaining <= 0
}

func (t *Timer) Terminated() bool { return t.terminated }

func (t *Timer) Paused() bool { return t.paused }

func (t *Timer) Duration() time.Duration { return t.duration }

// Remaining may be negative right after the expiring Tick.
func (t *Timer) Remaining() time.Duration { return t.remaining }

func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// FinishAt is the instant the countdown is currently scheduled to end.
func (t *Timer) FinishAt() time.Time { return t.finishAt }

// ElapsedRatio reports progress in [0, 1]. A zero-length timer is complete.
func (t *Timer) ElapsedRatio() float64 {
	if t.duration <= 0 {
		return 1
	}
	return util.Clamp(float64(t.elapsed)/float64(t.duration), 0, 1)
}

// Snapshot returns the display view of the timer.
func (t *Timer) Snapshot() models.Snapshot {
	return models.Snapshot{
		Remaining: t.RemainingFormatted(),
		FinishAt:  t.FinishFormatted(),
		Ratio:     t.ElapsedRatio(),
		Paused:    t.paused,
	}
}
