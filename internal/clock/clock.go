// Package clock abstracts time observation and one-shot scheduling so the
// countdown core can be driven deterministically in tests. Production code
// injects Real; tests inject a Fake and advance it manually.
package clock

import "time"

// Clock provides the current time and cancellable delayed callbacks. A
// recurring schedule is expressed as a self-rearming AfterFunc.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// AfterFunc waits for d to elapse and then calls fn. The returned
	// Timer cancels the pending call with Stop.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the
	// call was stopped before it ran.
	Stop() bool
}

// Real is a Clock backed by the time package.
type Real struct{}

// NewReal returns the wall-clock Clock.
func NewReal() Real {
	return Real{}
}

// Now returns time.Now().
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc.
func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return realTimer{timer: time.AfterFunc(d, fn)}
}

type realTimer struct {
	timer *time.Timer
}

func (t realTimer) Stop() bool {
	return t.timer.Stop()
}
