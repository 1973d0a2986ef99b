//go:build !unix

package commands

import "os/exec"

func detach(cmd *exec.Cmd) {}
