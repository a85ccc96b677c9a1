// Package sequencer owns the user-facing session cycle: which mode is
// current, how many work sessions completed, and what happens after a
// countdown reaches zero. It drives the engine and is the only writer of
// the mode rotation.
package sequencer

import (
	"errors"
	"sync"
	"time"

	"pomotray/internal/clock"
	"pomotray/internal/core/engine"
	"pomotray/internal/core/model"
)

// ErrTimerActive rejects a mode switch while a session is active or
// paused. Reset first.
var ErrTimerActive = errors.New("reset the timer before switching modes")

// Notifier receives host-facing side effects on completion. Failures are
// the implementation's problem; the sequencer never sees them.
type Notifier interface {
	SessionComplete(completed, next model.SessionKind)
}

// Status is the sequencer's user-facing state, reported to the host on
// every change.
type Status struct {
	Mode            model.SessionKind
	CompletedWork   int
	PendingComplete bool
}

// Options tunes the grace window. Zero values take the defaults.
type Options struct {
	// AutoAdvanceDelay is how long a completed session waits before the
	// applicable auto-start kicks in.
	AutoAdvanceDelay time.Duration
	// GraceExpiry force-acknowledges a completion the user never acted
	// on, so the "completed" affordance cannot persist forever.
	GraceExpiry time.Duration
}

const (
	defaultAutoAdvanceDelay = 3 * time.Second
	defaultGraceExpiry      = 10 * time.Second
)

// Sequencer advances the work / short break / long break rotation.
type Sequencer struct {
	mu       sync.Mutex
	engine   *engine.Engine
	clock    clock.Clock
	notifier Notifier
	options  Options
	onStatus func(Status)

	config model.SessionConfig

	mode          model.SessionKind
	completedWork int
	nextMode      model.SessionKind
	pending       bool

	autoTimer  clock.Timer
	graceTimer clock.Timer
}

// New creates a sequencer in work mode. Wire HandleSessionComplete as the
// engine's completion callback. onStatus may be nil.
func New(eng *engine.Engine, clk clock.Clock, config model.SessionConfig, notifier Notifier, options Options, onStatus func(Status)) *Sequencer {
	if options.AutoAdvanceDelay <= 0 {
		options.AutoAdvanceDelay = defaultAutoAdvanceDelay
	}
	if options.GraceExpiry <= 0 {
		options.GraceExpiry = defaultGraceExpiry
	}
	return &Sequencer{
		engine:   eng,
		clock:    clk,
		notifier: notifier,
		options:  options,
		onStatus: onStatus,
		config:   config.Normalized(),
		mode:     model.KindWork,
		nextMode: model.KindShortBreak,
	}
}

// UpdateConfig swaps the sequencing policy for future completions.
func (seq *Sequencer) UpdateConfig(config model.SessionConfig) {
	seq.mu.Lock()
	seq.config = config.Normalized()
	seq.mu.Unlock()
}

// Status returns the current user-facing state.
func (seq *Sequencer) Status() Status {
	seq.mu.Lock()
	defer seq.mu.Unlock()
	return seq.statusLocked()
}

// Mode returns the current user-facing session kind.
func (seq *Sequencer) Mode() model.SessionKind {
	seq.mu.Lock()
	defer seq.mu.Unlock()
	return seq.mode
}

// HandleSessionComplete reacts to a finished countdown: opens the grace
// window, computes the next mode, fires the notifier, and schedules the
// auto-advance and grace-expiry one-shots. Both one-shots re-check their
// premise at fire time; an intervening user action invalidates them.
func (seq *Sequencer) HandleSessionComplete(completed model.SessionKind) {
	seq.mu.Lock()
	seq.cancelTimersLocked()
	seq.pending = true

	if completed == model.KindWork {
		seq.completedWork++
		if seq.completedWork%seq.config.SessionsUntilLongBreak == 0 {
			seq.nextMode = model.KindLongBreak
		} else {
			seq.nextMode = model.KindShortBreak
		}
	} else {
		seq.nextMode = model.KindWork
	}
	next := seq.nextMode

	autoStart := seq.config.AutoStartBreaks
	if completed.IsBreak() {
		autoStart = seq.config.AutoStartFocus
	}
	if autoStart {
		seq.autoTimer = seq.clock.AfterFunc(seq.options.AutoAdvanceDelay, seq.autoAdvance)
	}
	// Scheduled unconditionally, even when auto-advance is pending; the
	// expiry re-reads the engine to decide whether to bump the mode.
	seq.graceTimer = seq.clock.AfterFunc(seq.options.GraceExpiry, seq.expireGrace)
	status := seq.statusLocked()
	seq.mu.Unlock()

	if seq.notifier != nil {
		seq.notifier.SessionComplete(completed, next)
	}
	seq.emitStatus(status)
}

// Acknowledge consumes a pending completion. The mode only advances when
// the engine is not running; an auto-started session already advanced it.
func (seq *Sequencer) Acknowledge() {
	seq.mu.Lock()
	if !seq.pending {
		seq.mu.Unlock()
		return
	}
	seq.cancelTimersLocked()
	seq.pending = false
	if !seq.engine.IsRunning() {
		seq.mode = seq.nextMode
	}
	status := seq.statusLocked()
	seq.mu.Unlock()

	seq.emitStatus(status)
}

// RequestModeSwitch cycles the mode forward. While a completion is
// pending the request is reinterpreted as an acknowledgement; while the
// engine is active or paused it is rejected.
func (seq *Sequencer) RequestModeSwitch() error {
	seq.mu.Lock()
	if seq.pending {
		seq.mu.Unlock()
		seq.Acknowledge()
		return nil
	}
	if seq.engine.Snapshot().Run != engine.RunIdle {
		seq.mu.Unlock()
		return ErrTimerActive
	}
	seq.mode = seq.mode.Next()
	status := seq.statusLocked()
	seq.mu.Unlock()

	seq.emitStatus(status)
	return nil
}

// RequestStart starts a countdown for the current mode. A pending
// completion is consumed as an acknowledgement instead.
func (seq *Sequencer) RequestStart() {
	if seq.consumePending() {
		return
	}
	seq.engine.Start(seq.Mode())
}

// RequestPauseResume toggles the engine. A pending completion is consumed
// as an acknowledgement instead.
func (seq *Sequencer) RequestPauseResume() {
	if seq.consumePending() {
		return
	}
	switch seq.engine.Snapshot().Run {
	case engine.RunRunning:
		seq.engine.Pause()
	case engine.RunPaused:
		seq.engine.Resume()
	default:
		seq.engine.Start(seq.Mode())
	}
}

// RequestReset passes through to the engine.
func (seq *Sequencer) RequestReset() {
	seq.engine.Reset()
}

func (seq *Sequencer) consumePending() bool {
	seq.mu.Lock()
	pending := seq.pending
	seq.mu.Unlock()
	if pending {
		seq.Acknowledge()
	}
	return pending
}

func (seq *Sequencer) autoAdvance() {
	seq.mu.Lock()
	if !seq.pending {
		// The user acted first.
		seq.mu.Unlock()
		return
	}
	seq.mode = seq.nextMode
	next := seq.nextMode
	status := seq.statusLocked()
	seq.mu.Unlock()

	seq.emitStatus(status)
	seq.engine.Start(next)
}

func (seq *Sequencer) expireGrace() {
	seq.mu.Lock()
	if !seq.pending {
		seq.mu.Unlock()
		return
	}
	seq.pending = false
	if !seq.engine.IsRunning() {
		seq.mode = seq.nextMode
	}
	status := seq.statusLocked()
	seq.mu.Unlock()

	seq.emitStatus(status)
}

func (seq *Sequencer) cancelTimersLocked() {
	if seq.autoTimer != nil {
		seq.autoTimer.Stop()
		seq.autoTimer = nil
	}
	if seq.graceTimer != nil {
		seq.graceTimer.Stop()
		seq.graceTimer = nil
	}
}

func (seq *Sequencer) statusLocked() Status {
	return Status{
		Mode:            seq.mode,
		CompletedWork:   seq.completedWork,
		PendingComplete: seq.pending,
	}
}

func (seq *Sequencer) emitStatus(status Status) {
	if seq.onStatus != nil {
		seq.onStatus(status)
	}
}
