// Package utils provides common utility functions for rofi-keys.
// It includes helpers for path expansion, terminal detection, and desktop
// notifications.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ============================================================================
// File System Utilities
// ============================================================================

// ExpandHomeDir expands a leading ~ or ~/ to the home directory.
// Other paths, including ~user forms, are returned unchanged.
func ExpandHomeDir(path string) string {
	if path == "~" {
		return GetHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(GetHomeDir(), path[2:])
	}
	return path
}

// GetHomeDir returns home directory
func GetHomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if program is running in a terminal
func IsTerminal() bool {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	stdinIsTTY := (stdinInfo.Mode() & os.ModeCharDevice) != 0

	if !stdinIsTTY {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	tty.Close()

	return true
}
