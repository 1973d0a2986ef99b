package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a config file.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

// FormatFor picks the format from the file extension. Anything that is not
// TOML or YAML is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// fileEntry е за четене от файл
type fileEntry struct {
	Key     string `json:"key" toml:"key" yaml:"key" mapstructure:"key"`
	Label   string `json:"label" toml:"label" yaml:"label" mapstructure:"label"`
	Command string `json:"command" toml:"command" yaml:"command" mapstructure:"command"`
}

type launcherFile struct {
	Args []string `json:"args" toml:"args" yaml:"args" mapstructure:"args"`
}

// notificationFile uses pointers so absent fields keep their defaults.
type notificationFile struct {
	Enabled        *bool   `json:"enabled,omitempty" toml:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Tool           *string `json:"tool,omitempty" toml:"tool" yaml:"tool" mapstructure:"tool"`
	Timeout        *int    `json:"timeout,omitempty" toml:"timeout" yaml:"timeout" mapstructure:"timeout"`
	Urgency        *string `json:"urgency,omitempty" toml:"urgency" yaml:"urgency" mapstructure:"urgency"`
	ShowInTerminal *bool   `json:"show_in_terminal,omitempty" toml:"show_in_terminal" yaml:"show_in_terminal" mapstructure:"show_in_terminal"`
}

// fileConfig is the schema shared by all three formats.
type fileConfig struct {
	Theme         *string                 `json:"theme" toml:"theme,omitempty" yaml:"theme" mapstructure:"theme"`
	MenuTitle     string                  `json:"menu_title" toml:"menu_title" yaml:"menu_title" mapstructure:"menu_title"`
	Entries       []fileEntry             `json:"entries" toml:"entries" yaml:"entries" mapstructure:"entries"`
	Launcher      string                  `json:"launcher,omitempty" toml:"launcher,omitempty" yaml:"launcher,omitempty" mapstructure:"launcher"`
	Shell         string                  `json:"shell,omitempty" toml:"shell,omitempty" yaml:"shell,omitempty" mapstructure:"shell"`
	Launchers     map[string]launcherFile `json:"launchers,omitempty" toml:"launchers,omitempty" yaml:"launchers,omitempty" mapstructure:"launchers"`
	Notifications *notificationFile       `json:"notifications,omitempty" toml:"notifications,omitempty" yaml:"notifications,omitempty" mapstructure:"notifications"`
}

// decode parses data into a generic document and maps it onto fileConfig.
func decode(format Format, data []byte) (*fileConfig, error) {
	var raw map[string]interface{}

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	var file fileConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &file,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return &file, nil
}

// Marshal encodes cfg in the given format.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	file := toFile(cfg)

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(file); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(file)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
}

func (f *fileConfig) toConfig() (*Config, error) {
	cfg := &Config{
		MenuTitle:     f.MenuTitle,
		Entries:       make([]Entry, 0, len(f.Entries)),
		Launcher:      f.Launcher,
		Shell:         f.Shell,
		Launchers:     mergeLauncherConfigs(f.Launchers),
		Notifications: DefaultNotifications(),
	}
	if f.Theme != nil {
		cfg.Theme = *f.Theme
	}

	rawKeys := make([]string, 0, len(f.Entries))
	for _, fe := range f.Entries {
		key, _ := utf8.DecodeRuneInString(fe.Key)
		cfg.Entries = append(cfg.Entries, Entry{Key: key, Label: fe.Label, Command: fe.Command})
		rawKeys = append(rawKeys, fe.Key)
	}

	if err := validateEntries(cfg.Entries, rawKeys); err != nil {
		return nil, err
	}

	mergeNotificationConfig(&cfg.Notifications, f.Notifications)

	return cfg, nil
}

func toFile(cfg *Config) *fileConfig {
	file := &fileConfig{
		MenuTitle: cfg.MenuTitle,
		Entries:   make([]fileEntry, 0, len(cfg.Entries)),
		Launcher:  cfg.Launcher,
		Shell:     cfg.Shell,
	}
	if cfg.Theme != "" {
		theme := cfg.Theme
		file.Theme = &theme
	}

	for _, e := range cfg.Entries {
		file.Entries = append(file.Entries, fileEntry{
			Key:     string(e.Key),
			Label:   e.Label,
			Command: e.Command,
		})
	}

	if len(cfg.Launchers) > 0 {
		file.Launchers = make(map[string]launcherFile, len(cfg.Launchers))
		for name, lc := range cfg.Launchers {
			file.Launchers[name] = launcherFile{Args: lc.Args}
		}
	}

	if n := cfg.Notifications; n != DefaultNotifications() {
		file.Notifications = &notificationFile{
			Enabled:        &n.Enabled,
			Tool:           &n.Tool,
			Timeout:        &n.Timeout,
			Urgency:        &n.Urgency,
			ShowInTerminal: &n.ShowInTerminal,
		}
	}

	return file
}
