package launcher

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Launcher describes a menu program. Implementations only build the
// invocation and interpret what the program returned; Adapter runs it.
type Launcher interface {
	Name() string                         // "rofi", "fzf", etc.
	Program() string                      // executable looked up in PATH
	Args(p Prompt) []string               // full argument list for one invocation
	Interactive() bool                    // needs the terminal on stderr
	Decode(p Prompt, res Result) Selection // maps exit code and output to a Selection
}

// Item is one visible row bound to a single key.
type Item struct {
	Key   rune
	Label string
}

// Row returns the text written to the menu program for the item.
func (i Item) Row() string {
	return fmt.Sprintf("[%c] %s", i.Key, i.Label)
}

// Prompt is everything a menu program is asked to show.
type Prompt struct {
	Title string
	Theme string
	Items []Item
}

// Input returns the rows in order, one per line.
func (p Prompt) Input() string {
	var b strings.Builder
	for _, item := range p.Items {
		b.WriteString(item.Row())
		b.WriteByte('\n')
	}
	return b.String()
}

// Result is the raw outcome of a menu program run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// SelectionKind tells what happened in the menu.
type SelectionKind int

const (
	KeyPressed SelectionKind = iota + 1
	Cancelled
	Failed
)

func (k SelectionKind) String() string {
	switch k {
	case KeyPressed:
		return "key-pressed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Selection is the result of one menu interaction. Key is set for
// KeyPressed, Err for Failed.
type Selection struct {
	Kind SelectionKind
	Key  rune
	Err  *Error
}

// Pressed returns a KeyPressed selection.
func Pressed(key rune) Selection {
	return Selection{Kind: KeyPressed, Key: key}
}

// Cancel returns a Cancelled selection.
func Cancel() Selection {
	return Selection{Kind: Cancelled}
}

// Failure returns a Failed selection carrying err.
func Failure(err *Error) Selection {
	return Selection{Kind: Failed, Err: err}
}

// ParseRow extracts the key from a row produced by Item.Row.
func ParseRow(row string) (rune, bool) {
	if !strings.HasPrefix(row, "[") {
		return 0, false
	}
	key, size := utf8.DecodeRuneInString(row[1:])
	if key == utf8.RuneError && size <= 1 {
		return 0, false
	}
	if !strings.HasPrefix(row[1+size:], "]") {
		return 0, false
	}
	return key, true
}
