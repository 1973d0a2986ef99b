package commands

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/lvim-tech/rofi-keys/pkg/config"
)

// Executor spawns commands through a shell and forgets about them.
type Executor struct {
	shell  string
	logger *zap.Logger
}

// NewExecutor създава executor с даден shell
func NewExecutor(shell string, logger *zap.Logger) *Executor {
	if shell == "" {
		shell = config.DefaultShell
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{shell: shell, logger: logger}
}

// Execute starts `shell -c command` as a detached process: stdio goes to
// the null device, the child gets its own process group, and it is never
// waited on. A failure to start is reported in Result, not returned.
func (e *Executor) Execute(command string) Result {
	cmd := exec.Command(e.shell, "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return Result{
			Spawned: false,
			Err:     fmt.Errorf("%w: %s -c %q: %w", ErrSpawnFailed, e.shell, command, err),
		}
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		e.logger.Debug("failed to release process", zap.Int("pid", pid), zap.Error(err))
	}

	e.logger.Debug("command spawned",
		zap.String("shell", e.shell),
		zap.String("command", command),
		zap.Int("pid", pid),
	)

	return Result{Spawned: true}
}
