//go:build windows

package platform

import "os/exec"

func chimeCommand() *exec.Cmd {
	return commandIfAvailable(
		"powershell",
		"-NoProfile",
		"-Command",
		`(New-Object Media.SoundPlayer "$env:WINDIR\Media\Windows Notify.wav").PlaySync()`,
	)
}
