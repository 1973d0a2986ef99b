package launcher

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFzfArgs(t *testing.T) {
	p := Prompt{
		Title: "Apps",
		Theme: "/ignored.rasi",
		Items: []Item{
			{Key: 'f', Label: "Firefox"},
			{Key: ',', Label: "Comma"},
			{Key: ' ', Label: "Space"},
			{Key: '?', Label: "Help"},
		},
	}

	got := NewFzf([]string{"--height", "40%"}).Args(p)
	want := []string{
		"--height", "40%",
		"--disabled",
		"--no-sort",
		"--no-multi",
		"--layout=reverse",
		"--prompt", "Apps> ",
		"--expect=f,?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() =\n%q\nwant\n%q", got, want)
	}

	empty := NewFzf(nil).Args(Prompt{Title: "Empty"})
	for _, arg := range empty {
		if strings.HasPrefix(arg, "--expect") {
			t.Errorf("empty prompt args %q contain %q", empty, arg)
		}
	}
}

func TestFzfDecode(t *testing.T) {
	p := Prompt{Items: []Item{
		{Key: 'f', Label: "Firefox"},
		{Key: 'm', Label: "MPV"},
	}}

	tests := []struct {
		name    string
		p       Prompt
		res     Result
		kind    SelectionKind
		key     rune
		errKind error
	}{
		{"expected key", p, Result{Stdout: "m\n[f] Firefox\n"}, KeyPressed, 'm', nil},
		{"key not in menu", p, Result{Stdout: "z\n[f] Firefox\n"}, KeyPressed, 'z', nil},
		{"enter on row", p, Result{Stdout: "\n[m] MPV\n"}, KeyPressed, 'm', nil},
		{"enter without rows", p, Result{Stdout: "\n"}, Cancelled, 0, nil},
		{"multi rune key line", p, Result{Stdout: "ctrl-x\n[m] MPV\n"}, Failed, 0, ErrUnreadableOutput},
		{"bad row", p, Result{Stdout: "\nMPV\n"}, Failed, 0, ErrUnreadableOutput},
		{"no expect", Prompt{Items: []Item{{Key: ',', Label: "Comma"}}}, Result{Stdout: "[,] Comma\n"}, KeyPressed, ',', nil},
		{"no match", p, Result{ExitCode: 1}, Cancelled, 0, nil},
		{"interrupted", p, Result{ExitCode: 130}, Cancelled, 0, nil},
		{"error", p, Result{ExitCode: 2}, Failed, 0, ErrNonZeroExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewFzf(nil).Decode(tt.p, tt.res)
			if sel.Kind != tt.kind || sel.Key != tt.key {
				t.Fatalf("Decode() = %+v, want kind %v key %q", sel, tt.kind, tt.key)
			}
			if tt.errKind != nil && !errors.Is(sel.Err, tt.errKind) {
				t.Errorf("Err = %v, want %v", sel.Err, tt.errKind)
			}
		})
	}
}
