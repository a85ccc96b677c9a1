// Package notify delivers the end-of-session side effects: a desktop
// notification and a chime. It is a pure consumer of the sequencer's
// completion signal; nothing here can affect timer state.
package notify

import (
	"sync"

	"fyne.io/fyne/v2"

	"pomotray/internal/core/model"
)

// SoundPlayer plays the completion chime.
type SoundPlayer interface {
	Play()
}

// Options toggles the two delivery channels.
type Options struct {
	Notifications bool
	Sound         bool
}

// Desktop sends Fyne desktop notifications and plays the system chime.
type Desktop struct {
	mu      sync.Mutex
	app     fyne.App
	sound   SoundPlayer
	options Options
}

// NewDesktop creates a notifier bound to the Fyne application.
func NewDesktop(app fyne.App, sound SoundPlayer, options Options) *Desktop {
	return &Desktop{app: app, sound: sound, options: options}
}

// UpdateOptions applies changed preferences.
func (desktop *Desktop) UpdateOptions(options Options) {
	desktop.mu.Lock()
	desktop.options = options
	desktop.mu.Unlock()
}

// SessionComplete implements sequencer.Notifier.
func (desktop *Desktop) SessionComplete(completed, next model.SessionKind) {
	desktop.mu.Lock()
	options := desktop.options
	desktop.mu.Unlock()

	if options.Notifications {
		title, body := completionCopy(completed, next)
		desktop.app.SendNotification(fyne.NewNotification(title, body))
	}
	if options.Sound && desktop.sound != nil {
		desktop.sound.Play()
	}
}

func completionCopy(completed, next model.SessionKind) (string, string) {
	switch completed {
	case model.KindWork:
		if next == model.KindLongBreak {
			return "Focus session complete", "Great run. Time for a long break."
		}
		return "Focus session complete", "Time for a short break."
	case model.KindShortBreak:
		return "Break over", "Back to focus."
	case model.KindLongBreak:
		return "Long break over", "Ready for the next focus session."
	}
	return "Session complete", ""
}
