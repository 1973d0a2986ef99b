//go:build linux || darwin

package commands

import (
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestExecuteUsesOwnProcessGroup(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pid")

	res := NewExecutor("sh", zaptest.NewLogger(t)).Execute("echo $$ > '" + pidFile + "'; exec sleep 5")
	if !res.Spawned {
		t.Fatalf("Execute() = %+v", res)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(waitForFile(t, pidFile)))
	if err != nil {
		t.Fatalf("bad pid: %v", err)
	}
	t.Cleanup(func() { _ = syscall.Kill(-pid, syscall.SIGKILL) })

	pgid, err := syscall.Getpgid(pid)
	if err != nil {
		t.Fatalf("Getpgid(%d) error = %v", pid, err)
	}
	if pgid != pid {
		t.Errorf("pgid = %d, want the child's own pid %d", pgid, pid)
	}
	if pgid == syscall.Getpgrp() {
		t.Error("child shares the test's process group")
	}
}
