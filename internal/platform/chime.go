package platform

import (
	"log"
	"os/exec"
)

// Chime plays the end-of-session sound through whatever player the OS
// ships. Playback is fire-and-forget; failures are logged and swallowed,
// the timer never depends on them.
type Chime struct{}

// NewChime returns the system sound player.
func NewChime() *Chime {
	return &Chime{}
}

// Play triggers the chime asynchronously.
func (chime *Chime) Play() {
	command := chimeCommand()
	if command == nil {
		return
	}
	go func() {
		if err := command.Run(); err != nil {
			log.Printf("chime playback: %v", err)
		}
	}()
}

func commandIfAvailable(name string, args ...string) *exec.Cmd {
	if _, err := exec.LookPath(name); err != nil {
		return nil
	}
	return exec.Command(name, args...)
}
