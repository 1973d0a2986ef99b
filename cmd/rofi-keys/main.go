package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/rofi-keys/internal/logging"
	"github.com/lvim-tech/rofi-keys/pkg/app"
	"github.com/lvim-tech/rofi-keys/pkg/config"
	"github.com/lvim-tech/rofi-keys/pkg/launcher"
	"github.com/lvim-tech/rofi-keys/pkg/utils"
)

// Version is set at build time with -ldflags.
var Version = "0.1.0"

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
)

type options struct {
	init       bool
	configPath string
	launcher   string
	dryRun     bool
	debug      bool
	version    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		errorColor.Fprint(stderr, "Error: ")
		fmt.Fprintln(stderr, err)
		return app.ExitCode(err)
	}
	return app.ExitOK
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "rofi-keys",
		Short: "Keyboard-driven launcher: one key, one command",
		Long: `rofi-keys shows a menu of key-bound entries from a config file.
Pressing an entry's key launches its shell command detached, so the
menu can be bound to a window manager hotkey.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				fmt.Fprintf(cmd.OutOrStdout(), "rofi-keys version %s\n", Version)
				return nil
			}

			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			path = utils.ExpandHomeDir(path)

			if opts.init {
				return handleInit(cmd.OutOrStdout(), path)
			}

			logger := logging.New(opts.debug)
			defer func() { _ = logger.Sync() }()

			a := app.New(app.Settings{
				ConfigPath: path,
				Launcher:   opts.launcher,
				DryRun:     opts.dryRun,
			}, logger)
			a.SetOutput(cmd.OutOrStdout())

			return a.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.init, "init", false, "write the default config and exit")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/rofi-keys/config.json)")
	flags.StringVarP(&opts.launcher, "launcher", "l", "",
		fmt.Sprintf("menu program: %s, or %s", strings.Join(launcher.Names(), ", "), launcher.Auto))
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the selected command instead of running it")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVarP(&opts.version, "version", "V", false, "print version and exit")

	return cmd
}

func handleInit(out io.Writer, path string) error {
	if err := config.InitDefault(path); err != nil {
		return &app.ExitError{Code: app.ExitConfig, Err: err}
	}

	successColor.Fprintf(out, "Config initialized at: %s\n", path)
	fmt.Fprintln(out, "Edit it to bind your own keys, then run 'rofi-keys'.")
	return nil
}
