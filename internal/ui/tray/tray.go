package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomotray/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStartPause  func()
	OnReset       func()
	OnSwitchMode  func()
	OnShowTimer   func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	resetItem   *fyne.MenuItem
	switchItem  *fyne.MenuItem
	callbacks   Callbacks
	mode        model.SessionKind
	paused      bool
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		mode:      model.KindWork,
	}

	manager.statusItem = fyne.NewMenuItem("Focus — ready", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStartPause != nil {
			manager.callbacks.OnStartPause()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.switchItem = fyne.NewMenuItem("Switch to "+ModeLabel(model.KindShortBreak), func() {
		if manager.callbacks.OnSwitchMode != nil {
			manager.callbacks.OnSwitchMode()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetCountdown updates the status line with the current remaining time.
func (manager *Manager) SetCountdown(label string) {
	manager.statusLabel = label
	manager.refreshStatus()
}

// SetMode updates the session kind shown in the menu.
func (manager *Manager) SetMode(mode model.SessionKind) {
	manager.mode = mode
	manager.switchItem.Label = fmt.Sprintf("Switch to %s", ModeLabel(mode.Next()))
	manager.refreshStatus()
}

// SetRunning updates the start/pause toggle.
func (manager *Manager) SetRunning(running, paused bool) {
	manager.running = running
	manager.paused = paused
	switch {
	case running:
		manager.startItem.Label = "Pause"
	case paused:
		manager.startItem.Label = "Resume"
	default:
		manager.startItem.Label = "Start"
	}
	manager.refreshStatus()
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if status == "" {
		status = "ready"
	}
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("%s — %s", ModeLabel(manager.mode), status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomotray",
		manager.statusItem,
		manager.startItem,
		manager.resetItem,
		manager.switchItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShowTimer != nil {
				manager.callbacks.OnShowTimer()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

// ModeLabel returns the human-readable name of a session kind.
func ModeLabel(mode model.SessionKind) string {
	switch mode {
	case model.KindShortBreak:
		return "Short break"
	case model.KindLongBreak:
		return "Long break"
	default:
		return "Focus"
	}
}
