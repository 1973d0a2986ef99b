package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrProgramNotFound се връща когато menu програмата не е в PATH
	ErrProgramNotFound = errors.New("program not found")

	// ErrNonZeroExit is returned when the menu program fails for a reason
	// other than the user cancelling.
	ErrNonZeroExit = errors.New("menu program failed")

	// ErrUnreadableOutput is returned when the output does not map to an entry.
	ErrUnreadableOutput = errors.New("unreadable menu output")

	// ErrUnknownLauncher се връща когато няма такъв launcher
	ErrUnknownLauncher = errors.New("unknown launcher")

	// ErrNoLauncher is returned by Detect when no supported program is installed.
	ErrNoLauncher = errors.New("no launcher available - please install rofi, fzf, dmenu, bemenu, or fuzzel")
)

// Error is a menu adapter failure. Kind is ErrProgramNotFound,
// ErrNonZeroExit, or ErrUnreadableOutput.
type Error struct {
	Kind     error
	Program  string
	ExitCode int
	Reason   string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Program, e.Kind)
	if e.Kind == ErrNonZeroExit && e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit status %d)", e.ExitCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func nonZeroExit(program string, res Result) Selection {
	return Failure(&Error{
		Kind:     ErrNonZeroExit,
		Program:  program,
		ExitCode: res.ExitCode,
		Reason:   res.Stderr,
	})
}

func unreadable(program, format string, args ...any) Selection {
	return Failure(&Error{
		Kind:    ErrUnreadableOutput,
		Program: program,
		Reason:  fmt.Sprintf(format, args...),
	})
}
