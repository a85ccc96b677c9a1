package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	workMinutes   *widget.Entry
	shortMinutes  *widget.Entry
	longMinutes   *widget.Entry
	sessionCount  *widget.Entry
	autoBreaks    *widget.Check
	autoFocus     *widget.Check
	notifications *widget.Check
	sound         *widget.Check
	loginStart    *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomotray Settings")

	workMinutes := widget.NewEntry()
	shortMinutes := widget.NewEntry()
	longMinutes := widget.NewEntry()
	sessionCount := widget.NewEntry()

	autoBreaks := widget.NewCheck("Auto-start breaks", nil)
	autoFocus := widget.NewCheck("Auto-start focus sessions", nil)
	notifications := widget.NewCheck("Desktop notifications", nil)
	sound := widget.NewCheck("Completion sound", nil)
	loginStart := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus"), workMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Sessions until long break"), sessionCount),
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autoBreaks,
		autoFocus,
		notifications,
		sound,
		loginStart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		workMinutes:   workMinutes,
		shortMinutes:  shortMinutes,
		longMinutes:   longMinutes,
		sessionCount:  sessionCount,
		autoBreaks:    autoBreaks,
		autoFocus:     autoFocus,
		notifications: notifications,
		sound:         sound,
		loginStart:    loginStart,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workMinutes.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.shortMinutes.SetText(fmt.Sprintf("%d", int(settings.ShortBreakDuration.Minutes())))
	prefs.longMinutes.SetText(fmt.Sprintf("%d", int(settings.LongBreakDuration.Minutes())))
	prefs.sessionCount.SetText(fmt.Sprintf("%d", settings.SessionsUntilLongBreak))
	prefs.autoBreaks.SetChecked(settings.AutoStartBreaks)
	prefs.autoFocus.SetChecked(settings.AutoStartFocus)
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.loginStart.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workMinutes.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortMinutes.Text); ok {
		settings.ShortBreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longMinutes.Text); ok {
		settings.LongBreakDuration = time.Duration(minutes) * time.Minute
	}
	if count, ok := parsePositiveInt(prefs.sessionCount.Text); ok && count >= 2 {
		settings.SessionsUntilLongBreak = count
	}

	settings.AutoStartBreaks = prefs.autoBreaks.Checked
	settings.AutoStartFocus = prefs.autoFocus.Checked
	settings.NotificationsEnabled = prefs.notifications.Checked
	settings.SoundEnabled = prefs.sound.Checked
	settings.LaunchAtLogin = prefs.loginStart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
