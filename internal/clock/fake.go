package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually driven Clock. Time only moves when Advance or Set is
// called; due callbacks fire synchronously on the advancing goroutine, in
// deadline order. Callbacks may schedule further timers and read Now.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	nextID int
}

// NewFake returns a Fake positioned at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake current time.
func (fake *Fake) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// AfterFunc registers fn to run once the fake clock reaches now+d.
func (fake *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.nextID++
	timer := &fakeTimer{
		clock:    fake,
		id:       fake.nextID,
		deadline: fake.now.Add(d),
		fn:       fn,
	}
	fake.timers = append(fake.timers, timer)
	return timer
}

// Advance moves the clock forward by d, firing every callback whose
// deadline falls within the window. The clock stops at each deadline while
// its callback runs, so rearming callbacks observe consistent times.
func (fake *Fake) Advance(d time.Duration) {
	fake.mu.Lock()
	target := fake.now.Add(d)
	fake.mu.Unlock()
	fake.advanceTo(target)
}

// Set jumps the clock to instant, firing intermediate callbacks. Instants
// before the current time are ignored.
func (fake *Fake) Set(instant time.Time) {
	fake.advanceTo(instant)
}

// Pending returns the number of scheduled callbacks that have not fired.
func (fake *Fake) Pending() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return len(fake.timers)
}

func (fake *Fake) advanceTo(target time.Time) {
	for {
		fake.mu.Lock()
		timer := fake.earliestLocked()
		if timer == nil || timer.deadline.After(target) {
			if target.After(fake.now) {
				fake.now = target
			}
			fake.mu.Unlock()
			return
		}
		fake.removeLocked(timer.id)
		if timer.deadline.After(fake.now) {
			fake.now = timer.deadline
		}
		fn := timer.fn
		fake.mu.Unlock()

		fn()
	}
}

func (fake *Fake) earliestLocked() *fakeTimer {
	if len(fake.timers) == 0 {
		return nil
	}
	sort.SliceStable(fake.timers, func(i, j int) bool {
		if fake.timers[i].deadline.Equal(fake.timers[j].deadline) {
			return fake.timers[i].id < fake.timers[j].id
		}
		return fake.timers[i].deadline.Before(fake.timers[j].deadline)
	})
	return fake.timers[0]
}

func (fake *Fake) removeLocked(id int) bool {
	for i, timer := range fake.timers {
		if timer.id == id {
			fake.timers = append(fake.timers[:i], fake.timers[i+1:]...)
			return true
		}
	}
	return false
}

type fakeTimer struct {
	clock    *Fake
	id       int
	deadline time.Time
	fn       func()
}

func (timer *fakeTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	return timer.clock.removeLocked(timer.id)
}
