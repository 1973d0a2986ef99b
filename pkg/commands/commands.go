// Package commands turns a menu selection into a running process.
// It resolves the pressed key to its entry, inspects the command for
// deferred shell substitutions, and spawns it detached.
package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey се връща когато натиснатият клавиш няма entry
	ErrUnknownKey = errors.New("unknown key")

	// ErrAdapterFailure wraps a failed menu interaction.
	ErrAdapterFailure = errors.New("menu adapter failure")

	// ErrSpawnFailed is carried by Result.Err when the shell could not be started.
	ErrSpawnFailed = errors.New("failed to spawn command")
)

// ResolvedCommand is the command of the selected entry. Key and Label are
// kept for logs and messages.
type ResolvedCommand struct {
	Key     rune
	Label   string
	Command string
}

// Resolution is the outcome of Resolve. NoAction means the user closed
// the menu and there is nothing to run.
type Resolution struct {
	NoAction bool
	Command  ResolvedCommand
}

// Result represents the result of command execution. The spawned process
// is not tracked after start.
type Result struct {
	Spawned bool
	Err     error
}

// ResolveError is returned by Resolve. Kind is ErrUnknownKey or
// ErrAdapterFailure; Err holds the launcher error for the latter.
type ResolveError struct {
	Kind error
	Key  rune
	Err  error
}

func (e *ResolveError) Error() string {
	if e.Kind == ErrUnknownKey {
		return fmt.Sprintf("%v %q", e.Kind, e.Key)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func (e *ResolveError) Is(target error) bool {
	return target == e.Kind
}
