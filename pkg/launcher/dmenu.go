package launcher

import (
	"strings"
)

// lineLauncher is a menu program without key bindings: it prints the
// chosen row and the key is parsed back out of it.
type lineLauncher struct {
	name       string
	args       []string
	promptArgs func(title string) []string
}

func (l *lineLauncher) Name() string {
	return l.name
}

func (l *lineLauncher) Program() string {
	return l.name
}

func (l *lineLauncher) Interactive() bool {
	return false
}

func (l *lineLauncher) Args(p Prompt) []string {
	args := append([]string{}, l.args...)
	return append(args, l.promptArgs(p.Title)...)
}

func (l *lineLauncher) Decode(p Prompt, res Result) Selection {
	switch res.ExitCode {
	case 0:
	case 1:
		return Cancel()
	default:
		return nonZeroExit(l.Program(), res)
	}

	row, _, _ := strings.Cut(res.Stdout, "\n")
	row = strings.TrimSpace(row)
	if row == "" {
		return Cancel()
	}

	key, ok := ParseRow(row)
	if !ok {
		return unreadable(l.Program(), "unexpected row %q", row)
	}
	return Pressed(key)
}

type Dmenu struct {
	lineLauncher
}

func NewDmenu(args []string) *Dmenu {
	return &Dmenu{lineLauncher{
		name: "dmenu",
		args: args,
		promptArgs: func(title string) []string {
			return []string{"-p", title}
		},
	}}
}
