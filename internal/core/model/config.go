package model

import "time"

// SessionKind identifies which of the three session types is active or
// queued next. Control status (running, paused, idle) is tracked
// separately by the engine.
type SessionKind string

const (
	KindWork       SessionKind = "work"
	KindShortBreak SessionKind = "short_break"
	KindLongBreak  SessionKind = "long_break"
)

// Valid reports whether kind is one of the three session kinds.
func (kind SessionKind) Valid() bool {
	switch kind {
	case KindWork, KindShortBreak, KindLongBreak:
		return true
	}
	return false
}

// IsBreak reports whether kind is a break session.
func (kind SessionKind) IsBreak() bool {
	return kind == KindShortBreak || kind == KindLongBreak
}

// Next returns the kind that follows in the manual switch cycle
// work -> short break -> long break -> work.
func (kind SessionKind) Next() SessionKind {
	switch kind {
	case KindWork:
		return KindShortBreak
	case KindShortBreak:
		return KindLongBreak
	default:
		return KindWork
	}
}

// SessionConfig is the per-session snapshot of durations and sequencing
// policy. It is supplied by the host and may be swapped between sessions
// but never mutates a countdown in flight.
type SessionConfig struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	SessionsUntilLongBreak int

	AutoStartBreaks bool
	AutoStartFocus  bool
}

// Duration returns the configured length for kind.
func (config SessionConfig) Duration(kind SessionKind) time.Duration {
	switch kind {
	case KindWork:
		return config.WorkDuration
	case KindShortBreak:
		return config.ShortBreakDuration
	case KindLongBreak:
		return config.LongBreakDuration
	}
	return 0
}

// Normalized returns a copy with out-of-range fields replaced by sane
// values. SessionsUntilLongBreak is at least 2.
func (config SessionConfig) Normalized() SessionConfig {
	normalized := config
	if normalized.WorkDuration <= 0 {
		normalized.WorkDuration = 25 * time.Minute
	}
	if normalized.ShortBreakDuration <= 0 {
		normalized.ShortBreakDuration = 5 * time.Minute
	}
	if normalized.LongBreakDuration <= 0 {
		normalized.LongBreakDuration = 15 * time.Minute
	}
	if normalized.SessionsUntilLongBreak < 2 {
		normalized.SessionsUntilLongBreak = 4
	}
	return normalized
}
