//go:build darwin

package platform

import "os/exec"

func chimeCommand() *exec.Cmd {
	return commandIfAvailable("afplay", "/System/Library/Sounds/Glass.aiff")
}
