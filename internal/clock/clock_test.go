package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

func TestFakeAdvanceFiresInDeadlineOrder(t *testing.T) {
	fake := NewFake(epoch)

	var fired []string
	fake.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	fake.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	fake.AfterFunc(3*time.Second, func() { fired = append(fired, "c") })

	fake.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, fake.Pending())

	fake.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, fake.Pending())
}

func TestFakeNowStopsAtDeadlineDuringCallback(t *testing.T) {
	fake := NewFake(epoch)

	var seen time.Time
	fake.AfterFunc(5*time.Second, func() { seen = fake.Now() })

	fake.Advance(time.Minute)
	assert.Equal(t, epoch.Add(5*time.Second), seen)
	assert.Equal(t, epoch.Add(time.Minute), fake.Now())
}

func TestFakeStopCancelsPendingOnly(t *testing.T) {
	fake := NewFake(epoch)

	fired := false
	timer := fake.AfterFunc(time.Second, func() { fired = true })
	require.True(t, timer.Stop())

	fake.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.False(t, timer.Stop())
}

func TestFakeCallbackMayRearm(t *testing.T) {
	fake := NewFake(epoch)

	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 3 {
			fake.AfterFunc(time.Second, tick)
		}
	}
	fake.AfterFunc(time.Second, tick)

	fake.Advance(10 * time.Second)
	assert.Equal(t, 3, ticks)
}

func TestFakeSetIgnoresPast(t *testing.T) {
	fake := NewFake(epoch)
	fake.Set(epoch.Add(-time.Hour))
	assert.Equal(t, epoch, fake.Now())
}

func TestRealAfterFuncFires(t *testing.T) {
	real := NewReal()
	done := make(chan struct{})
	real.AfterFunc(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}
}
