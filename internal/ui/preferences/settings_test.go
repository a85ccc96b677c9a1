package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomotray/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, 25*time.Minute, settings.WorkDuration)
	assert.Equal(t, 5*time.Minute, settings.ShortBreakDuration)
	assert.Equal(t, 15*time.Minute, settings.LongBreakDuration)
	assert.Equal(t, 4, settings.SessionsUntilLongBreak)
	assert.False(t, settings.AutoStartBreaks)
	assert.False(t, settings.AutoStartFocus)
	assert.True(t, settings.NotificationsEnabled)
	assert.True(t, settings.SoundEnabled)
}

func TestSessionConfigConversion(t *testing.T) {
	settings := Settings{
		WorkDuration:           50 * time.Minute,
		ShortBreakDuration:     10 * time.Minute,
		LongBreakDuration:      20 * time.Minute,
		SessionsUntilLongBreak: 3,
		AutoStartBreaks:        true,
	}
	config := settings.SessionConfig()
	assert.Equal(t, 50*time.Minute, config.Duration(model.KindWork))
	assert.Equal(t, 10*time.Minute, config.Duration(model.KindShortBreak))
	assert.Equal(t, 20*time.Minute, config.Duration(model.KindLongBreak))
	assert.Equal(t, 3, config.SessionsUntilLongBreak)
	assert.True(t, config.AutoStartBreaks)
}

func TestSessionConfigNormalizesZeroValues(t *testing.T) {
	config := Settings{}.SessionConfig()
	assert.Equal(t, 25*time.Minute, config.WorkDuration)
	assert.Equal(t, 4, config.SessionsUntilLongBreak)
}

func TestParsePositiveInt(t *testing.T) {
	value, ok := parsePositiveInt("25")
	assert.True(t, ok)
	assert.Equal(t, 25, value)

	_, ok = parsePositiveInt("0")
	assert.False(t, ok)
	_, ok = parsePositiveInt("-3")
	assert.False(t, ok)
	_, ok = parsePositiveInt("abc")
	assert.False(t, ok)
}
