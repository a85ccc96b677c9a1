package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomotray/internal/clock"
	"pomotray/internal/core/engine"
	"pomotray/internal/core/model"
	"pomotray/internal/core/sequencer"
	"pomotray/internal/notify"
	"pomotray/internal/platform"
	"pomotray/internal/storage"
	"pomotray/internal/ui/panel"
	"pomotray/internal/ui/preferences"
	"pomotray/internal/ui/tray"
	"pomotray/resources"
)

const appName = "Pomotray"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomotray.app")
	fyneApp.SetIcon(resources.MustIcon("tomato.svg"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	activeIcon := resources.MustIcon("tomato.svg")
	pausedIcon := resources.MustIcon("tomato-paused.svg")
	breakIcon := resources.MustIcon("tomato-break.svg")

	wallClock := clock.NewReal()
	notifier := notify.NewDesktop(fyneApp, platform.NewChime(), notify.Options{
		Notifications: settings.NotificationsEnabled,
		Sound:         settings.SoundEnabled,
	})

	var seq *sequencer.Sequencer
	var trayManager *tray.Manager
	var timerPanel *panel.Window

	timerEngine := engine.New(settings.SessionConfig(), wallClock, engine.Config{TickInterval: time.Second}, engine.Callbacks{
		Tick: func(remaining, total time.Duration) {
			handleTick(remaining, total, timerPanel, trayManager)
		},
		Complete: func(kind model.SessionKind) {
			seq.HandleSessionComplete(kind)
		},
		StateChange: func(snapshot engine.Snapshot) {
			handleStateChange(snapshot, desktopApp, timerPanel, trayManager, activeIcon, pausedIcon, breakIcon)
		},
	})

	seq = sequencer.New(timerEngine, wallClock, settings.SessionConfig(), notifier, sequencer.Options{}, func(status sequencer.Status) {
		handleStatus(status, timerPanel, trayManager)
	})

	timerPanel = panel.New(fyneApp, settings.SessionConfig().SessionsUntilLongBreak, panel.Callbacks{
		OnStartPause: func() { seq.RequestPauseResume() },
		OnReset:      func() { seq.RequestReset() },
		OnSwitchMode: func() { switchMode(seq, trayManager) },
	})
	desktopApp.SetSystemTrayWindow(timerPanel.Native())

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		applySettings(settings, updated, timerEngine, seq, notifier, timerPanel)
		settings = updated
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnStartPause: func() { seq.RequestPauseResume() },
		OnReset:      func() { seq.RequestReset() },
		OnSwitchMode: func() { switchMode(seq, trayManager) },
		OnShowTimer: func() {
			timerPanel.Show()
		},
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnQuit: func() {
			timerEngine.Stop()
			fyneApp.Quit()
		},
	})

	desktopApp.SetSystemTrayIcon(activeIcon)
	timerPanel.Show()

	fyneApp.Run()
}

func handleTick(remaining, total time.Duration, timerPanel *panel.Window, trayManager *tray.Manager) {
	if timerPanel != nil {
		timerPanel.SetCountdown(remaining, total)
	}
	if trayManager != nil {
		label := "ready"
		if total > 0 {
			label = panel.FormatDuration(remaining)
		}
		fyne.Do(func() {
			trayManager.SetCountdown(label)
		})
	}
}

func handleStateChange(snapshot engine.Snapshot, desktopApp desktop.App, timerPanel *panel.Window, trayManager *tray.Manager, activeIcon, pausedIcon, breakIcon fyne.Resource) {
	running := snapshot.Run == engine.RunRunning
	paused := snapshot.Run == engine.RunPaused

	icon := activeIcon
	switch {
	case paused:
		icon = pausedIcon
	case running && snapshot.Kind.IsBreak():
		icon = breakIcon
	}

	fyne.Do(func() {
		desktopApp.SetSystemTrayIcon(icon)
		if trayManager != nil {
			trayManager.SetRunning(running, paused)
		}
	})
	if timerPanel != nil {
		timerPanel.SetRunning(running, paused)
	}
}

func handleStatus(status sequencer.Status, timerPanel *panel.Window, trayManager *tray.Manager) {
	if timerPanel != nil {
		timerPanel.SetMode(status.Mode)
		timerPanel.SetCompletedWork(status.CompletedWork)
		timerPanel.SetPendingComplete(status.PendingComplete)
	}
	if trayManager != nil {
		fyne.Do(func() {
			trayManager.SetMode(status.Mode)
		})
	}
}

func switchMode(seq *sequencer.Sequencer, trayManager *tray.Manager) {
	if err := seq.RequestModeSwitch(); err != nil {
		log.Printf("switch mode: %v", err)
		if trayManager != nil {
			trayManager.SetCountdown("reset first")
		}
	}
}

func applySettings(previous, updated preferences.Settings, timerEngine *engine.Engine, seq *sequencer.Sequencer, notifier *notify.Desktop, timerPanel *panel.Window) {
	if err := storage.SaveSettings(appName, updated); err != nil {
		log.Printf("save settings: %v", err)
	}

	timerEngine.UpdateConfig(updated.SessionConfig())
	seq.UpdateConfig(updated.SessionConfig())
	notifier.UpdateOptions(notify.Options{
		Notifications: updated.NotificationsEnabled,
		Sound:         updated.SoundEnabled,
	})
	timerPanel.UpdateConfig(updated.SessionConfig().SessionsUntilLongBreak)

	if previous.LaunchAtLogin != updated.LaunchAtLogin {
		if err := platform.ApplyAutostart(platform.NewService(), appName, updated.LaunchAtLogin); err != nil {
			log.Printf("autostart: %v", err)
		}
	}
}
