package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound се връща когато config файлът не съществува
	ErrNotFound = errors.New("config not found")

	// ErrMalformedSyntax is returned when the document cannot be parsed
	// or does not match the config schema.
	ErrMalformedSyntax = errors.New("malformed config")

	// ErrInvalidEntry is returned when an entry breaks the key or command rules.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrAlreadyExists is returned by InitDefault when the target file is present.
	ErrAlreadyExists = errors.New("config already exists")
)

// Error describes a failed config operation. Kind is one of the sentinel
// errors above and can be matched with errors.Is.
type Error struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}
