package launcher

import (
	"fmt"
	"strconv"
	"strings"
)

// rofi exits with 10 for kb-custom-1, 11 for kb-custom-2 and so on, up to
// kb-custom-19.
const (
	rofiCustomExitBase = 10
	rofiMaxCustomKeys  = 19
)

// Rofi binds every entry key with -kb-custom-N, so a single keystroke
// selects the entry without filtering.
type Rofi struct {
	args []string
}

func NewRofi(args []string) *Rofi {
	return &Rofi{args: args}
}

func (r *Rofi) Name() string {
	return "rofi"
}

func (r *Rofi) Program() string {
	return "rofi"
}

func (r *Rofi) Interactive() bool {
	return false
}

func (r *Rofi) Args(p Prompt) []string {
	args := append([]string{}, r.args...)
	args = append(args,
		"-dmenu",
		"-p", p.Title,
		"-no-fork",
		"-markup-rows",
		"-no-custom",
		"-format", "i",
		"-theme-str", `configuration { matching: "regex"; }`,
	)

	if p.Theme != "" {
		args = append(args, "-theme", p.Theme)
	}

	// Entries past kb-custom-19 stay reachable with Enter only
	for i, item := range p.Items {
		if i >= rofiMaxCustomKeys {
			break
		}
		args = append(args, fmt.Sprintf("-kb-custom-%d", i+1), string(item.Key))
	}

	return args
}

func (r *Rofi) Decode(p Prompt, res Result) Selection {
	switch {
	case res.ExitCode == 0:
		out := strings.TrimSpace(res.Stdout)
		if out == "" {
			return Cancel()
		}
		idx, err := strconv.Atoi(out)
		if err != nil || idx < 0 || idx >= len(p.Items) {
			return unreadable(r.Program(), "unexpected selection %q", out)
		}
		return Pressed(p.Items[idx].Key)

	case res.ExitCode == 1:
		return Cancel()

	case res.ExitCode >= rofiCustomExitBase && res.ExitCode < rofiCustomExitBase+rofiMaxCustomKeys:
		idx := res.ExitCode - rofiCustomExitBase
		if idx >= len(p.Items) {
			return unreadable(r.Program(), "custom key %d has no entry", idx+1)
		}
		return Pressed(p.Items[idx].Key)

	default:
		return nonZeroExit(r.Program(), res)
	}
}
