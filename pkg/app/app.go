// Package app wires the rofi-keys pipeline together: load the config,
// present the menu, resolve the pressed key, and launch its command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/lvim-tech/rofi-keys/pkg/commands"
	"github.com/lvim-tech/rofi-keys/pkg/config"
	"github.com/lvim-tech/rofi-keys/pkg/launcher"
	"github.com/lvim-tech/rofi-keys/pkg/utils"
)

// Name is used as the notification title.
const Name = "rofi-keys"

// Exit codes returned by the CLI.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitConfig  = 2
	ExitMenu    = 3
)

// Settings is everything the command line can change about a run.
type Settings struct {
	ConfigPath string
	Launcher   string // overrides config; "" keeps it
	DryRun     bool
}

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Notifier shows failures to the user. Notify is for anomalies that do
// not fail the run.
type Notifier interface {
	Notify(title, message string)
	Error(title, message string)
}

// App runs the pipeline once per Run call.
type App struct {
	settings Settings
	logger   *zap.Logger
	stdout   io.Writer
	lookPath func(string) (string, error)

	// notifier overrides the one built from the loaded config
	notifier Notifier
}

// New създава App с дадените настройки
func New(settings Settings, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		settings: settings,
		logger:   logger,
		stdout:   os.Stdout,
		lookPath: exec.LookPath,
	}
}

// SetOutput redirects what a dry run prints.
func (a *App) SetOutput(w io.Writer) {
	a.stdout = w
}

// Run executes one pass: ConfigStore → MenuAdapter → CommandResolver →
// Substitutor → Executor. Cancelling the menu, pressing an unbound key, or
// failing to spawn the command all end the run with a nil error. Config
// and menu failures return an *ExitError.
func (a *App) Run(ctx context.Context) error {
	cfg, err := config.Load(a.settings.ConfigPath)
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}

	notifier := a.notifier
	if notifier == nil {
		notifier = utils.NewNotifier(cfg.Notifications)
	}

	name := a.settings.Launcher
	if name == "" {
		name = cfg.GetDefaultLauncher()
	}
	if name == launcher.Auto {
		name, err = launcher.Detect(a.lookPath)
		if err != nil {
			notifier.Error(Name, err.Error())
			return &ExitError{Code: ExitMenu, Err: err}
		}
	}

	l, err := launcher.New(name, cfg.LauncherArgs(name))
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}

	adapter := launcher.NewAdapter(l, a.logger)
	sel := adapter.Present(ctx, cfg)

	res, err := commands.Resolve(cfg, sel)
	switch {
	case errors.Is(err, commands.ErrUnknownKey):
		a.logger.Warn("no entry bound to pressed key",
			zap.String("launcher", adapter.LauncherName()),
			zap.String("key", string(sel.Key)),
		)
		notifier.Notify(Name, err.Error())
		return nil
	case err != nil:
		notifier.Error(Name, err.Error())
		return &ExitError{Code: ExitMenu, Err: err}
	}

	if res.NoAction {
		a.logger.Debug("menu cancelled", zap.String("launcher", adapter.LauncherName()))
		return nil
	}

	exp := commands.Expand(res.Command.Command)
	a.logger.Debug("resolved command",
		zap.String("key", string(res.Command.Key)),
		zap.String("label", res.Command.Label),
		zap.String("command", exp.Command),
		zap.Strings("deferred", exp.Deferred),
	)

	if a.settings.DryRun {
		fmt.Fprintln(a.stdout, exp.Command)
		return nil
	}

	out := commands.NewExecutor(cfg.GetShell(), a.logger).Execute(exp.Command)
	if !out.Spawned {
		a.logger.Error("failed to launch command",
			zap.String("label", res.Command.Label),
			zap.Error(out.Err),
		)
		notifier.Error(Name, fmt.Sprintf("Failed to launch %s: %v", res.Command.Label, out.Err))
	}

	return nil
}
