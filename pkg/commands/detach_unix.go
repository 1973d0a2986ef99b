//go:build unix

package commands

import (
	"os/exec"
	"syscall"
)

// detach starts the child in its own process group so it outlives the
// launcher and does not get the terminal's signals.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
}
