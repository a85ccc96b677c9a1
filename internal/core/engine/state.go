package engine

import (
	"time"

	"pomotray/internal/core/model"
)

// RunState is the control status of the engine, orthogonal to the session
// kind. A paused engine keeps its session kind, so resuming needs no
// separate memory of what was suspended.
type RunState string

const (
	RunIdle    RunState = "idle"
	RunRunning RunState = "running"
	RunPaused  RunState = "paused"
)

// Snapshot is a consistent view of the engine taken under its lock.
type Snapshot struct {
	Run       RunState
	Kind      model.SessionKind
	Remaining time.Duration
	Total     time.Duration
}

// Callbacks are the host-facing observers. Each slot holds at most one
// handler, registered at construction; nil slots are skipped. Handlers are
// invoked after the engine lock is released, in the order the transition
// computed them: on completion the zero tick always precedes the
// completion callback.
type Callbacks struct {
	// Tick fires on every engine tick and on start, pause, resume, stop
	// and reset. Remaining and total are whole seconds, never negative.
	Tick func(remaining, total time.Duration)
	// Complete fires exactly once per finished countdown with the kind
	// that just ended.
	Complete func(kind model.SessionKind)
	// StateChange fires after every control-state transition. On
	// completion the snapshot is Idle but Kind still carries the session
	// that finished.
	StateChange func(snapshot Snapshot)
}
