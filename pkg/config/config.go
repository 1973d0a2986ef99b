// Package config provides configuration management for rofi-keys.
// It loads, validates, and writes the key→label→command mapping that the
// launcher presents, in JSON, TOML, or YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMenuTitle is shown when the config leaves menu_title empty.
	DefaultMenuTitle = "Shortcuts"
	DefaultLauncher  = "rofi"
	DefaultShell     = "sh"
)

// Entry is one key binding.
type Entry struct {
	Key     rune
	Label   string
	Command string
}

// Config is the validated, read-only view of a config file.
type Config struct {
	Theme         string
	MenuTitle     string
	Entries       []Entry
	Launcher      string
	Launchers     map[string]LauncherCommand
	Shell         string
	Notifications NotificationConfig
}

// NotificationConfig controls desktop notifications for failures.
type NotificationConfig struct {
	Enabled        bool
	Tool           string
	Timeout        int
	Urgency        string
	ShowInTerminal bool
}

// DefaultNotifications връща default настройки за notifications
func DefaultNotifications() NotificationConfig {
	return NotificationConfig{
		Enabled:        true,
		Tool:           "auto",
		Timeout:        5000,
		Urgency:        "critical",
		ShowInTerminal: false,
	}
}

// Default returns the canonical mapping written by InitDefault.
func Default() *Config {
	return &Config{
		MenuTitle: "Applications",
		Entries: []Entry{
			{Key: 'f', Label: "Firefox", Command: "firefox"},
			{Key: 'p', Label: "Firefox Private", Command: "firefox --private-window"},
			{Key: 'm', Label: "MPV", Command: "mpv"},
			{Key: 'v', Label: "MPV (clipboard)", Command: `mpv "$(xclip -o)"`},
		},
		Launcher:      DefaultLauncher,
		Launchers:     map[string]LauncherCommand{},
		Shell:         DefaultShell,
		Notifications: DefaultNotifications(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rofi-keys/config.json, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "rofi-keys", "config.json")
}

// Load reads and validates the config at path. It never returns a Config
// together with an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Op: "load", Path: path, Kind: ErrNotFound}
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	file, err := decode(FormatFor(path), data)
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Kind: ErrMalformedSyntax, Err: err}
	}

	cfg, err := file.toConfig()
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Kind: ErrInvalidEntry, Err: err}
	}

	return cfg, nil
}

// Save writes cfg to path in the format implied by its extension,
// replacing any existing file.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg, FormatFor(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// InitDefault writes the default config to path. It fails with
// ErrAlreadyExists instead of replacing an existing file.
func InitDefault(path string) error {
	data, err := Marshal(Default(), FormatFor(path))
	if err != nil {
		return err
	}

	// Провери дали вече съществува
	if _, err := os.Lstat(path); err == nil {
		return &Error{Op: "init", Path: path, Kind: ErrAlreadyExists}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &Error{Op: "init", Path: path, Kind: ErrAlreadyExists}
		}
		return fmt.Errorf("failed to create config file: %w", err)
	}

	_, writeErr := f.Write(data)
	if closeErr := f.Close(); closeErr != nil && writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write config file: %w", writeErr)
	}

	return nil
}

// Lookup finds the entry bound to key. The match is exact and case-sensitive.
func (c *Config) Lookup(key rune) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// GetMenuTitle returns the title with the default applied.
func (c *Config) GetMenuTitle() string {
	if c.MenuTitle == "" {
		return DefaultMenuTitle
	}
	return c.MenuTitle
}

// GetDefaultLauncher returns the configured menu program name.
func (c *Config) GetDefaultLauncher() string {
	if c.Launcher == "" {
		return DefaultLauncher
	}
	return c.Launcher
}

// GetShell returns the interpreter used to run entry commands.
func (c *Config) GetShell() string {
	if c.Shell == "" {
		return DefaultShell
	}
	return c.Shell
}

// validateEntries checks every entry and reports all problems at once.
func validateEntries(entries []Entry, rawKeys []string) error {
	var problems []error
	seen := make(map[rune]int, len(entries))

	for i, e := range entries {
		raw := rawKeys[i]
		if strings.TrimSpace(e.Command) == "" {
			problems = append(problems, fmt.Errorf("entry %d (%q): command is empty", i, e.Label))
		}
		// Менюто е ред по ред
		if strings.ContainsAny(e.Label, "\r\n") {
			problems = append(problems, fmt.Errorf("entry %d (%q): label contains a line break", i, e.Label))
		}

		switch {
		case raw == "":
			problems = append(problems, fmt.Errorf("entry %d (%q): key is empty", i, e.Label))
			continue
		case utf8.RuneCountInString(raw) != 1:
			problems = append(problems, fmt.Errorf("entry %d (%q): key %q must be a single character", i, e.Label, raw))
			continue
		case !unicode.IsPrint(e.Key):
			problems = append(problems, fmt.Errorf("entry %d (%q): key %q is not printable", i, e.Label, raw))
			continue
		}

		if first, dup := seen[e.Key]; dup {
			problems = append(problems, fmt.Errorf("entry %d (%q): key %q already bound by entry %d", i, e.Label, raw, first))
			continue
		}
		seen[e.Key] = i
	}

	return errors.Join(problems...)
}
