// Package launcher provides an abstraction layer for different menu programs.
// It supports rofi, fzf, dmenu, bemenu, and fuzzel behind the Launcher
// interface. Backends with a key-accelerator facility (rofi, fzf) bind each
// entry key directly; the others fall back to row selection.
package launcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/lvim-tech/rofi-keys/pkg/config"
	"github.com/lvim-tech/rofi-keys/pkg/utils"
)

// Adapter runs a Launcher as a blocking subprocess and turns the outcome
// into a Selection.
type Adapter struct {
	launcher Launcher
	logger   *zap.Logger
	lookPath func(string) (string, error)
}

// NewAdapter създава adapter за даден launcher
func NewAdapter(l Launcher, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		launcher: l,
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

// LauncherName връща името на текущия launcher
func (a *Adapter) LauncherName() string {
	return a.launcher.Name()
}

// NewPrompt builds the menu contents from cfg, keeping entry order.
func NewPrompt(cfg *config.Config) Prompt {
	p := Prompt{
		Title: cfg.GetMenuTitle(),
		Theme: utils.ExpandHomeDir(cfg.Theme),
		Items: make([]Item, 0, len(cfg.Entries)),
	}
	for _, e := range cfg.Entries {
		p.Items = append(p.Items, Item{Key: e.Key, Label: e.Label})
	}
	return p
}

// Present shows the entries of cfg and waits for the user. There is no
// timeout: the call returns when the menu program exits.
func (a *Adapter) Present(ctx context.Context, cfg *config.Config) Selection {
	return a.Show(ctx, NewPrompt(cfg))
}

// Show runs the menu program for p.
func (a *Adapter) Show(ctx context.Context, p Prompt) Selection {
	l := a.launcher

	path, err := a.lookPath(l.Program())
	if err != nil {
		return Failure(&Error{
			Kind:    ErrProgramNotFound,
			Program: l.Program(),
			Reason:  err.Error(),
		})
	}

	args := l.Args(p)
	a.logger.Debug("presenting menu",
		zap.String("launcher", l.Name()),
		zap.String("program", path),
		zap.Strings("args", args),
		zap.Int("entries", len(p.Items)),
	)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(p.Input())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if l.Interactive() {
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Failure(&Error{
				Kind:    ErrNonZeroExit,
				Program: l.Program(),
				Reason:  "failed to start: " + err.Error(),
			})
		}
		exitCode = exitErr.ExitCode()
		if exitCode < 0 {
			return Failure(&Error{
				Kind:    ErrNonZeroExit,
				Program: l.Program(),
				Reason:  exitErr.String(),
			})
		}
	}

	sel := l.Decode(p, Result{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   strings.TrimSpace(stderr.String()),
	})
	a.logger.Debug("menu returned",
		zap.String("launcher", l.Name()),
		zap.Int("exit_code", exitCode),
		zap.Stringer("selection", sel.Kind),
	)

	return sel
}
