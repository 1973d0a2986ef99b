package launcher

import (
	"fmt"
	"sort"
	"strings"
)

// Auto selects the first installed launcher, see Detect.
const Auto = "auto"

var registry = map[string]func(args []string) Launcher{
	"rofi":   func(args []string) Launcher { return NewRofi(args) },
	"fzf":    func(args []string) Launcher { return NewFzf(args) },
	"dmenu":  func(args []string) Launcher { return NewDmenu(args) },
	"bemenu": func(args []string) Launcher { return NewBemenu(args) },
	"fuzzel": func(args []string) Launcher { return NewFuzzel(args) },
}

// New връща launcher по име
func New(name string, args []string) (Launcher, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownLauncher, name, strings.Join(Names(), ", "))
	}
	return factory(args), nil
}

// Names връща имената на всички launchers
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect намира първия наличен launcher
func Detect(lookPath func(string) (string, error)) (string, error) {
	// Приоритет: rofi > fzf > dmenu > bemenu > fuzzel
	priority := []string{"rofi", "fzf", "dmenu", "bemenu", "fuzzel"}

	for _, name := range priority {
		if _, err := lookPath(name); err == nil {
			return name, nil
		}
	}

	return "", ErrNoLauncher
}
