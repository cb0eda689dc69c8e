package timer

import "time"

// Clock supplies the current instant. Tests swap in a fake.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now. Its values carry a monotonic reading, so
// differences between them are unaffected by wall clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ExpiryHandler is notified when a timer runs out.
type ExpiryHandler interface {
	OnExpiry()
}

// ExpiryFunc adapts a plain function to ExpiryHandler.
type ExpiryFunc func()

func (f ExpiryFunc) OnExpiry() { f() }
