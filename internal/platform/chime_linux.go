//go:build linux

package platform

import "os/exec"

func chimeCommand() *exec.Cmd {
	if command := commandIfAvailable("canberra-gtk-play", "-i", "complete"); command != nil {
		return command
	}
	if command := commandIfAvailable("paplay", "/usr/share/sounds/freedesktop/stereo/complete.oga"); command != nil {
		return command
	}
	return commandIfAvailable("aplay", "/usr/share/sounds/alsa/Front_Center.wav")
}
