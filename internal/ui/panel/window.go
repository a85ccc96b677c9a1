// Package panel implements the timer window: a compact view of the
// current countdown with start/pause, reset and mode controls. It is a
// pure consumer of engine ticks and sequencer status.
package panel

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomotray/internal/core/model"
)

// Callbacks defines panel action handlers.
type Callbacks struct {
	OnStartPause func()
	OnReset      func()
	OnSwitchMode func()
}

// Window manages the timer panel UI.
type Window struct {
	window         fyne.Window
	modeLabel      *canvas.Text
	countdownLabel *canvas.Text
	completeLabel  *canvas.Text
	progressLabel  *canvas.Text
	startButton    *widget.Button
	callbacks      Callbacks

	sessionsUntilLongBreak int
}

var (
	workColor  = color.NRGBA{R: 217, G: 79, B: 61, A: 255}
	breakColor = color.NRGBA{R: 61, G: 139, B: 217, A: 255}
	dimColor   = color.NRGBA{R: 140, G: 140, B: 140, A: 255}
)

// New creates the timer panel window. It starts hidden; closing it hides
// instead of quitting, the tray owns the process lifetime.
func New(app fyne.App, sessionsUntilLongBreak int, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomotray")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	modeLabel := canvas.NewText("Focus", workColor)
	modeLabel.Alignment = fyne.TextAlignCenter
	modeLabel.TextStyle = fyne.TextStyle{Bold: true}
	modeLabel.TextSize = 18

	countdownLabel := canvas.NewText("--:--", color.NRGBA{R: 235, G: 235, B: 235, A: 255})
	countdownLabel.Alignment = fyne.TextAlignCenter
	countdownLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	countdownLabel.TextSize = 48

	completeLabel := canvas.NewText("", color.NRGBA{R: 120, G: 200, B: 120, A: 255})
	completeLabel.Alignment = fyne.TextAlignCenter
	completeLabel.TextSize = 14

	progressLabel := canvas.NewText(sessionDots(0, sessionsUntilLongBreak), dimColor)
	progressLabel.Alignment = fyne.TextAlignCenter
	progressLabel.TextSize = 14

	panel := &Window{
		window:                 window,
		modeLabel:              modeLabel,
		countdownLabel:         countdownLabel,
		completeLabel:          completeLabel,
		progressLabel:          progressLabel,
		callbacks:              callbacks,
		sessionsUntilLongBreak: sessionsUntilLongBreak,
	}

	panel.startButton = widget.NewButton("Start", func() {
		if panel.callbacks.OnStartPause != nil {
			panel.callbacks.OnStartPause()
		}
	})
	resetButton := widget.NewButton("Reset", func() {
		if panel.callbacks.OnReset != nil {
			panel.callbacks.OnReset()
		}
	})
	switchButton := widget.NewButton("Next", func() {
		if panel.callbacks.OnSwitchMode != nil {
			panel.callbacks.OnSwitchMode()
		}
	})

	content := container.NewVBox(
		modeLabel,
		countdownLabel,
		completeLabel,
		progressLabel,
		container.NewGridWithColumns(3, panel.startButton, resetButton, switchButton),
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(280, 230))
	window.SetCloseIntercept(func() {
		window.Hide()
	})
	window.Hide()

	return panel
}

// Show brings the panel to front.
func (panel *Window) Show() {
	panel.window.Show()
	panel.window.RequestFocus()
}

// Native returns the underlying Fyne window for tray wiring.
func (panel *Window) Native() fyne.Window {
	return panel.window
}

// SetCountdown updates the remaining-time display. Safe to call from
// timer goroutines.
func (panel *Window) SetCountdown(remaining, total time.Duration) {
	fyne.Do(func() {
		if total <= 0 {
			panel.countdownLabel.Text = "--:--"
		} else {
			panel.countdownLabel.Text = FormatDuration(remaining)
		}
		panel.countdownLabel.Refresh()
	})
}

// SetMode updates the mode headline and its color.
func (panel *Window) SetMode(mode model.SessionKind) {
	fyne.Do(func() {
		switch mode {
		case model.KindShortBreak:
			panel.modeLabel.Text = "Short break"
			panel.modeLabel.Color = breakColor
		case model.KindLongBreak:
			panel.modeLabel.Text = "Long break"
			panel.modeLabel.Color = breakColor
		default:
			panel.modeLabel.Text = "Focus"
			panel.modeLabel.Color = workColor
		}
		panel.modeLabel.Refresh()
	})
}

// SetRunning updates the start/pause toggle label.
func (panel *Window) SetRunning(running, paused bool) {
	fyne.Do(func() {
		switch {
		case running:
			panel.startButton.SetText("Pause")
		case paused:
			panel.startButton.SetText("Resume")
		default:
			panel.startButton.SetText("Start")
		}
	})
}

// SetCompletedWork updates the session-progress dots.
func (panel *Window) SetCompletedWork(completed int) {
	fyne.Do(func() {
		panel.progressLabel.Text = sessionDots(completed, panel.sessionsUntilLongBreak)
		panel.progressLabel.Refresh()
	})
}

// SetPendingComplete toggles the "session complete" affordance shown
// during the grace window.
func (panel *Window) SetPendingComplete(pending bool) {
	fyne.Do(func() {
		if pending {
			panel.completeLabel.Text = "Session complete — press any control to continue"
		} else {
			panel.completeLabel.Text = ""
		}
		panel.completeLabel.Refresh()
	})
}

// UpdateConfig applies a changed sessions-until-long-break count.
func (panel *Window) UpdateConfig(sessionsUntilLongBreak int) {
	fyne.Do(func() {
		panel.sessionsUntilLongBreak = sessionsUntilLongBreak
		panel.progressLabel.Refresh()
	})
}

// FormatDuration renders a countdown as mm:ss, never negative.
func FormatDuration(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func sessionDots(completed, untilLongBreak int) string {
	if untilLongBreak <= 0 {
		return ""
	}
	filled := completed % untilLongBreak
	if completed > 0 && filled == 0 {
		filled = untilLongBreak
	}
	dots := ""
	for i := 0; i < untilLongBreak; i++ {
		if i < filled {
			dots += "●"
		} else {
			dots += "○"
		}
		if i < untilLongBreak-1 {
			dots += " "
		}
	}
	return dots
}
