package sequencer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotray/internal/clock"
	"pomotray/internal/core/engine"
	"pomotray/internal/core/model"
)

type completion struct {
	completed model.SessionKind
	next      model.SessionKind
}

type fakeNotifier struct {
	completions []completion
}

func (notifier *fakeNotifier) SessionComplete(completed, next model.SessionKind) {
	notifier.completions = append(notifier.completions, completion{completed, next})
}

type harness struct {
	clock     *clock.Fake
	engine    *engine.Engine
	sequencer *Sequencer
	notifier  *fakeNotifier
	statuses  []Status
}

func newHarness(t *testing.T, config model.SessionConfig) *harness {
	t.Helper()
	h := &harness{
		clock:    clock.NewFake(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
		notifier: &fakeNotifier{},
	}
	h.engine = engine.New(config, h.clock, engine.Config{}, engine.Callbacks{
		Complete: func(kind model.SessionKind) {
			h.sequencer.HandleSessionComplete(kind)
		},
	})
	h.sequencer = New(h.engine, h.clock, config, h.notifier, Options{
		AutoAdvanceDelay: 3 * time.Second,
		GraceExpiry:      10 * time.Second,
	}, func(status Status) {
		h.statuses = append(h.statuses, status)
	})
	return h
}

// runSession drives the current mode's countdown to completion.
func (h *harness) runSession(t *testing.T) {
	t.Helper()
	h.sequencer.RequestStart()
	require.True(t, h.engine.IsRunning())
	h.clock.Advance(h.engine.Total())
	require.False(t, h.engine.IsRunning())
}

func shortConfig() model.SessionConfig {
	return model.SessionConfig{
		WorkDuration:           10 * time.Second,
		ShortBreakDuration:     30 * time.Second,
		LongBreakDuration:      60 * time.Second,
		SessionsUntilLongBreak: 4,
	}
}

func TestWorkCompletionOpensGraceWindow(t *testing.T) {
	h := newHarness(t, shortConfig())

	h.runSession(t)

	status := h.sequencer.Status()
	assert.True(t, status.PendingComplete)
	assert.Equal(t, 1, status.CompletedWork)
	// The mode does not advance until acknowledged or auto-started.
	assert.Equal(t, model.KindWork, status.Mode)

	require.Len(t, h.notifier.completions, 1)
	assert.Equal(t, completion{model.KindWork, model.KindShortBreak}, h.notifier.completions[0])
}

func TestLongBreakEveryNthWorkCompletion(t *testing.T) {
	h := newHarness(t, shortConfig())

	for i := 1; i <= 9; i++ {
		// Stay in work mode: acknowledge each completion, then switch
		// back off the advanced break mode.
		h.runSession(t)
		h.sequencer.Acknowledge()
		for h.sequencer.Mode() != model.KindWork {
			require.NoError(t, h.sequencer.RequestModeSwitch())
		}
	}

	require.Len(t, h.notifier.completions, 9)
	for i, c := range h.notifier.completions {
		nth := i + 1
		if nth%4 == 0 {
			assert.Equal(t, model.KindLongBreak, c.next, "completion %d", nth)
		} else {
			assert.Equal(t, model.KindShortBreak, c.next, "completion %d", nth)
		}
	}
	assert.Equal(t, 9, h.sequencer.Status().CompletedWork)
}

func TestBreakCompletionSelectsWork(t *testing.T) {
	h := newHarness(t, shortConfig())
	require.NoError(t, h.sequencer.RequestModeSwitch())
	require.Equal(t, model.KindShortBreak, h.sequencer.Mode())

	h.runSession(t)
	h.sequencer.Acknowledge()

	assert.Equal(t, model.KindWork, h.sequencer.Mode())
	// Break completions never count as work sessions.
	assert.Equal(t, 0, h.sequencer.Status().CompletedWork)
}

func TestAcknowledgeAdvancesModeWhenIdle(t *testing.T) {
	h := newHarness(t, shortConfig())

	h.runSession(t)
	h.sequencer.Acknowledge()

	status := h.sequencer.Status()
	assert.False(t, status.PendingComplete)
	assert.Equal(t, model.KindShortBreak, status.Mode)

	// Acknowledging twice is harmless.
	h.sequencer.Acknowledge()
	assert.Equal(t, model.KindShortBreak, h.sequencer.Mode())
}

func TestAutoStartBreaksAdvancesAfterGraceDelay(t *testing.T) {
	config := shortConfig()
	config.AutoStartBreaks = true
	h := newHarness(t, config)

	h.runSession(t)
	require.False(t, h.engine.IsRunning())

	h.clock.Advance(3 * time.Second)

	assert.True(t, h.engine.IsRunning())
	assert.Equal(t, model.KindShortBreak, h.sequencer.Mode())
	assert.Equal(t, 30*time.Second, h.engine.Total())

	// The grace expiry still fires but must not bump the mode of the
	// already-running break again.
	h.clock.Advance(7 * time.Second)
	assert.False(t, h.sequencer.Status().PendingComplete)
	assert.Equal(t, model.KindShortBreak, h.sequencer.Mode())
	assert.True(t, h.engine.IsRunning())
}

func TestAutoStartOffLeavesEngineIdle(t *testing.T) {
	h := newHarness(t, shortConfig())

	h.runSession(t)
	h.clock.Advance(10 * time.Second)

	assert.False(t, h.engine.IsRunning())
	status := h.sequencer.Status()
	assert.False(t, status.PendingComplete)
	// Expiry force-acknowledges, which advances the idle mode.
	assert.Equal(t, model.KindShortBreak, status.Mode)
}

func TestAutoStartFocusAfterBreak(t *testing.T) {
	config := shortConfig()
	config.AutoStartFocus = true
	h := newHarness(t, config)

	require.NoError(t, h.sequencer.RequestModeSwitch())
	h.runSession(t)

	h.clock.Advance(3 * time.Second)
	assert.True(t, h.engine.IsRunning())
	assert.Equal(t, model.KindWork, h.sequencer.Mode())

	// Work completions do not auto-start without AutoStartBreaks.
	h.clock.Advance(10 * time.Second)
	require.False(t, h.engine.IsRunning())
	h.clock.Advance(10 * time.Second)
	assert.False(t, h.engine.IsRunning())
}

func TestUserActionCancelsAutoAdvance(t *testing.T) {
	config := shortConfig()
	config.AutoStartBreaks = true
	h := newHarness(t, config)

	h.runSession(t)
	h.clock.Advance(time.Second)
	h.sequencer.Acknowledge()

	h.clock.Advance(time.Minute)
	assert.False(t, h.engine.IsRunning())
	assert.Equal(t, model.KindShortBreak, h.sequencer.Mode())
}

func TestModeSwitchRejectedWhileActive(t *testing.T) {
	h := newHarness(t, shortConfig())

	h.sequencer.RequestStart()
	err := h.sequencer.RequestModeSwitch()
	assert.ErrorIs(t, err, ErrTimerActive)
	assert.Equal(t, model.KindWork, h.sequencer.Mode())

	// Paused still counts as active; reset first.
	h.sequencer.RequestPauseResume()
	assert.ErrorIs(t, h.sequencer.RequestModeSwitch(), ErrTimerActive)

	h.sequencer.RequestReset()
	assert.NoError(t, h.sequencer.RequestModeSwitch())
	assert.Equal(t, model.KindShortBreak, h.sequencer.Mode())
}

func TestModeSwitchDuringGraceActsAsAcknowledge(t *testing.T) {
	h := newHarness(t, shortConfig())

	h.runSession(t)
	require.True(t, h.sequencer.Status().PendingComplete)

	require.NoError(t, h.sequencer.RequestModeSwitch())

	status := h.sequencer.Status()
	assert.False(t, status.PendingComplete)
	// Acknowledged, not cycled: the mode is the computed next mode.
	assert.Equal(t, model.KindShortBreak, status.Mode)
}

func TestStartDuringGraceActsAsAcknowledge(t *testing.T) {
	h := newHarness(t, shortConfig())

	h.runSession(t)
	h.sequencer.RequestStart()

	assert.False(t, h.engine.IsRunning())
	assert.False(t, h.sequencer.Status().PendingComplete)
	assert.Equal(t, model.KindShortBreak, h.sequencer.Mode())

	// The next start actually starts the break.
	h.sequencer.RequestStart()
	assert.True(t, h.engine.IsRunning())
	assert.Equal(t, 30*time.Second, h.engine.Total())
}

func TestPauseResumeToggle(t *testing.T) {
	h := newHarness(t, shortConfig())

	// Idle: toggling starts the current mode.
	h.sequencer.RequestPauseResume()
	require.True(t, h.engine.IsRunning())

	h.clock.Advance(2 * time.Second)
	h.sequencer.RequestPauseResume()
	require.False(t, h.engine.IsRunning())
	assert.Equal(t, 8*time.Second, h.engine.Remaining())

	h.sequencer.RequestPauseResume()
	require.True(t, h.engine.IsRunning())
	h.clock.Advance(8 * time.Second)
	assert.True(t, h.sequencer.Status().PendingComplete)
}

func TestStatusObserverSeesGraceWindow(t *testing.T) {
	h := newHarness(t, shortConfig())

	h.runSession(t)

	require.NotEmpty(t, h.statuses)
	last := h.statuses[len(h.statuses)-1]
	assert.True(t, last.PendingComplete)

	h.sequencer.Acknowledge()
	last = h.statuses[len(h.statuses)-1]
	assert.False(t, last.PendingComplete)
	assert.Equal(t, model.KindShortBreak, last.Mode)
}
