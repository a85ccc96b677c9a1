package preferences

import (
	"time"

	"pomotray/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	SessionsUntilLongBreak int

	AutoStartBreaks bool
	AutoStartFocus  bool

	NotificationsEnabled bool
	SoundEnabled         bool
	LaunchAtLogin        bool
}

// DefaultSettings returns the out-of-the-box pomodoro configuration.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:           25 * time.Minute,
		ShortBreakDuration:     5 * time.Minute,
		LongBreakDuration:      15 * time.Minute,
		SessionsUntilLongBreak: 4,
		NotificationsEnabled:   true,
		SoundEnabled:           true,
	}
}

// SessionConfig converts settings to the core session snapshot.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		WorkDuration:           settings.WorkDuration,
		ShortBreakDuration:     settings.ShortBreakDuration,
		LongBreakDuration:      settings.LongBreakDuration,
		SessionsUntilLongBreak: settings.SessionsUntilLongBreak,
		AutoStartBreaks:        settings.AutoStartBreaks,
		AutoStartFocus:         settings.AutoStartFocus,
	}.Normalized()
}
