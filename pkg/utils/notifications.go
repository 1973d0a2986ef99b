// Package utils provides notification utilities for rofi-keys.
// Supports configurable notification behavior via config.NotificationConfig.
package utils

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/rofi-keys/pkg/config"
)

// Notifier sends desktop notifications according to a NotificationConfig.
// When launched from a terminal with ShowInTerminal set, messages are
// printed to Out instead.
type Notifier struct {
	cfg config.NotificationConfig

	// Out receives terminal messages. Defaults to os.Stderr.
	Out io.Writer

	lookPath   func(string) (string, error)
	isTerminal func() bool
	start      func(*exec.Cmd) error
}

// NewNotifier creates a Notifier for the given settings.
func NewNotifier(cfg config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:        cfg,
		Out:        os.Stderr,
		lookPath:   exec.LookPath,
		isTerminal: IsTerminal,
		start:      (*exec.Cmd).Start,
	}
}

// Notify sends a notification with the configured urgency, for anomalies
// that do not fail the run.
func (n *Notifier) Notify(title, message string) {
	n.send(title, message, n.cfg.Urgency, "normal")
}

// Error sends a notification with critical urgency.
func (n *Notifier) Error(title, message string) {
	n.send(title, message, "critical", "critical")
}

func (n *Notifier) send(title, message, urgency, fallbackUrgency string) {
	if !n.cfg.Enabled {
		return
	}

	// If in terminal and ShowInTerminal is enabled, print instead
	if n.cfg.ShowInTerminal && n.isTerminal() {
		fmt.Fprintf(n.Out, "[%s] %s\n", title, message)
		return
	}

	// Determine which notification tool to use
	tool := n.cfg.Tool
	if tool == "" || tool == "auto" {
		tool = n.detectNotificationTool()
	}

	args := notificationArgs(tool, title, message, n.cfg.Timeout, urgency, fallbackUrgency)
	if args == nil {
		return
	}

	cmd := exec.Command(tool, args...)
	cmd.Env = os.Environ()
	if err := n.start(cmd); err == nil && cmd.Process != nil {
		cmd.Process.Release()
	}
}

// ============================================================================
// Internal Helper Functions
// ============================================================================

// detectNotificationTool detects which notification tool is available
func (n *Notifier) detectNotificationTool() string {
	for _, tool := range []string{"dunstify", "notify-send"} {
		if _, err := n.lookPath(tool); err == nil {
			return tool
		}
	}
	return ""
}

// notificationArgs builds the argument list for the specified tool, or nil
// when the tool is unknown
func notificationArgs(tool, title, message string, timeout int, urgency, fallbackUrgency string) []string {
	// Use fallback urgency if urgency is not set
	if urgency == "" {
		urgency = fallbackUrgency
	}

	// 0 means the notification never expires
	if timeout < 0 {
		timeout = 5000
	}

	switch tool {
	case "dunstify", "notify-send":
		return []string{
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message,
		}
	default:
		return nil
	}
}
