package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomotray/internal/core/model"
)

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "Focus", ModeLabel(model.KindWork))
	assert.Equal(t, "Short break", ModeLabel(model.KindShortBreak))
	assert.Equal(t, "Long break", ModeLabel(model.KindLongBreak))
}

func TestMenuLabelsFollowState(t *testing.T) {
	manager := New(nil, Callbacks{})

	manager.SetRunning(true, false)
	assert.Equal(t, "Pause", manager.startItem.Label)

	manager.SetRunning(false, true)
	assert.Equal(t, "Resume", manager.startItem.Label)

	manager.SetRunning(false, false)
	assert.Equal(t, "Start", manager.startItem.Label)

	manager.SetMode(model.KindShortBreak)
	assert.Equal(t, "Switch to Long break", manager.switchItem.Label)

	manager.SetCountdown("04:59")
	assert.Equal(t, "Short break — 04:59", manager.statusItem.Label)

	manager.SetRunning(false, true)
	assert.Equal(t, "Short break — 04:59 (paused)", manager.statusItem.Label)
}
