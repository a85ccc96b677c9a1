// Package engine implements the countdown state machine. Remaining time is
// always derived from an absolute wall-clock deadline, never decremented
// per tick, so missed or delayed ticks (background throttling, suspend)
// cannot introduce drift: the first tick after resumption reports the
// exact remaining time.
package engine

import (
	"sync"
	"time"

	"pomotray/internal/clock"
	"pomotray/internal/core/model"
)

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Engine owns a single countdown. One instance lives for the whole
// process and is reused across sessions.
type Engine struct {
	mu        sync.Mutex
	clock     clock.Clock
	options   Config
	callbacks Callbacks

	session model.SessionConfig

	run       RunState
	kind      model.SessionKind
	remaining time.Duration
	total     time.Duration
	target    time.Time
	handle    clock.Timer
	gen       uint64
}

// New creates an idle Engine. The callbacks are fixed for the lifetime of
// the instance.
func New(session model.SessionConfig, clk clock.Clock, options Config, callbacks Callbacks) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Engine{
		clock:     clk,
		options:   options,
		callbacks: callbacks,
		session:   session.Normalized(),
		run:       RunIdle,
		kind:      model.KindWork,
	}
}

// UpdateConfig swaps the session snapshot used by future starts. A live
// countdown keeps its deadline and remaining time untouched.
func (engine *Engine) UpdateConfig(session model.SessionConfig) {
	engine.mu.Lock()
	engine.session = session.Normalized()
	engine.mu.Unlock()
}

// Start begins or resumes a countdown for kind. Invalid kinds are a
// no-op. A positive remaining time (a paused session) is preserved;
// otherwise the countdown is initialized to the configured duration. Any
// previously scheduled tick is cancelled before the new one is armed, so
// at most one countdown is ever live.
func (engine *Engine) Start(kind model.SessionKind) {
	if !kind.Valid() {
		return
	}

	engine.mu.Lock()
	engine.cancelLocked()
	if engine.remaining <= 0 {
		duration := engine.session.Duration(kind)
		engine.remaining = duration
		engine.total = duration
	}
	engine.run = RunRunning
	engine.kind = kind
	engine.target = engine.clock.Now().Add(engine.remaining)
	engine.armLocked()
	remaining, total := engine.remaining, engine.total
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	// Immediate tick so the UI never shows a stale value.
	engine.emitTick(remaining, total)
	engine.emitStateChange(snapshot)
}

// Pause freezes a running countdown. Remaining time is recomputed from
// the deadline at the instant of the pause, so resuming loses nothing.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	if engine.run != RunRunning {
		engine.mu.Unlock()
		return
	}
	engine.cancelLocked()
	remaining := ceilSeconds(engine.target.Sub(engine.clock.Now()))
	if remaining <= 0 {
		// Deadline passed while pausing; keep one second so the
		// resume does not reinitialize a fresh session.
		remaining = time.Second
	}
	engine.remaining = remaining
	engine.run = RunPaused
	engine.target = time.Time{}
	total := engine.total
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.emitTick(remaining, total)
	engine.emitStateChange(snapshot)
}

// Resume restarts a paused countdown from its frozen remaining time.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	if engine.run != RunPaused {
		engine.mu.Unlock()
		return
	}
	kind := engine.kind
	engine.mu.Unlock()

	engine.Start(kind)
}

// Stop cancels any countdown and returns the engine to idle, emitting a
// zero tick. Idempotent.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	engine.stopLocked()
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.emitTick(0, 0)
	engine.emitStateChange(snapshot)
}

// Reset is Stop plus one more unconditional zero tick, for callers that
// want a guaranteed UI refresh.
func (engine *Engine) Reset() {
	engine.Stop()
	engine.emitTick(0, 0)
}

// Snapshot returns a consistent view of the engine state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Remaining returns the frozen or last computed remaining time.
func (engine *Engine) Remaining() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.remaining
}

// Total returns the configured duration of the current session.
func (engine *Engine) Total() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.total
}

// IsRunning reports whether a countdown is actively ticking.
func (engine *Engine) IsRunning() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.run == RunRunning
}

func (engine *Engine) tick(gen uint64) {
	engine.mu.Lock()
	if gen != engine.gen || engine.run != RunRunning {
		// A cancelled handle that fired late; the world moved on.
		engine.mu.Unlock()
		return
	}

	remaining := ceilSeconds(engine.target.Sub(engine.clock.Now()))
	if remaining <= 0 {
		completed := engine.kind
		total := engine.total
		engine.stopLocked()
		snapshot := engine.snapshotLocked()
		snapshot.Kind = completed
		engine.mu.Unlock()

		engine.emitTick(0, total)
		if engine.callbacks.Complete != nil {
			engine.callbacks.Complete(completed)
		}
		engine.emitStateChange(snapshot)
		return
	}

	engine.remaining = remaining
	engine.handle = nil
	engine.armLocked()
	total := engine.total
	engine.mu.Unlock()

	engine.emitTick(remaining, total)
}

func (engine *Engine) armLocked() {
	gen := engine.gen
	engine.handle = engine.clock.AfterFunc(engine.options.TickInterval, func() {
		engine.tick(gen)
	})
}

func (engine *Engine) cancelLocked() {
	if engine.handle != nil {
		engine.handle.Stop()
		engine.handle = nil
	}
	engine.gen++
}

func (engine *Engine) stopLocked() {
	engine.cancelLocked()
	engine.run = RunIdle
	engine.remaining = 0
	engine.total = 0
	engine.target = time.Time{}
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Run:       engine.run,
		Kind:      engine.kind,
		Remaining: engine.remaining,
		Total:     engine.total,
	}
}

func (engine *Engine) emitTick(remaining, total time.Duration) {
	if engine.callbacks.Tick != nil {
		engine.callbacks.Tick(remaining, total)
	}
}

func (engine *Engine) emitStateChange(snapshot Snapshot) {
	if engine.callbacks.StateChange != nil {
		engine.callbacks.StateChange(snapshot)
	}
}

// ceilSeconds rounds d up to a whole second, clamping at zero.
func ceilSeconds(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return ((d + time.Second - 1) / time.Second) * time.Second
}
