package launcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fzf runs in the terminal with filtering disabled. Entry keys are passed
// to --expect, so fzf exits as soon as one is pressed and prints it on the
// first output line.
type Fzf struct {
	args []string
}

func NewFzf(args []string) *Fzf {
	return &Fzf{args: args}
}

func (f *Fzf) Name() string {
	return "fzf"
}

func (f *Fzf) Program() string {
	return "fzf"
}

func (f *Fzf) Interactive() bool {
	return true
}

func (f *Fzf) Args(p Prompt) []string {
	args := append([]string{}, f.args...)
	args = append(args,
		"--disabled",
		"--no-sort",
		"--no-multi",
		"--layout=reverse",
		"--prompt", p.Title+"> ",
	)

	if keys := expectKeys(p.Items); len(keys) > 0 {
		args = append(args, "--expect="+strings.Join(keys, ","))
	}

	return args
}

func (f *Fzf) Decode(p Prompt, res Result) Selection {
	switch res.ExitCode {
	case 0:
	case 1, 130:
		// 1: no match, 130: ESC / CTRL-C
		return Cancel()
	default:
		return nonZeroExit(f.Program(), res)
	}

	lines := strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n")

	if len(expectKeys(p.Items)) > 0 {
		if key := lines[0]; key != "" {
			r, size := utf8.DecodeRuneInString(key)
			if size != len(key) || r == utf8.RuneError {
				return unreadable(f.Program(), "unexpected key %q", key)
			}
			return Pressed(r)
		}
		lines = lines[1:]
	}

	var row string
	if len(lines) > 0 {
		row = strings.TrimSpace(lines[0])
	}
	if row == "" {
		return Cancel()
	}

	key, ok := ParseRow(row)
	if !ok {
		return unreadable(f.Program(), "unexpected row %q", row)
	}
	return Pressed(key)
}

// expectKeys returns the keys fzf can bind as-is. A comma separates the
// --expect list and whitespace has named aliases, so both are left to
// row selection.
func expectKeys(items []Item) []string {
	var keys []string
	for _, item := range items {
		if item.Key == ',' || unicode.IsSpace(item.Key) {
			continue
		}
		keys = append(keys, string(item.Key))
	}
	return keys
}
