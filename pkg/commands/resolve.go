package commands

import (
	"github.com/lvim-tech/rofi-keys/pkg/config"
	"github.com/lvim-tech/rofi-keys/pkg/launcher"
)

// Resolve maps a menu selection back to the entry it came from.
//
// A cancelled menu resolves to NoAction with a nil error. A key with no
// entry yields ErrUnknownKey, and a failed menu yields ErrAdapterFailure
// wrapping the launcher error.
func Resolve(cfg *config.Config, sel launcher.Selection) (Resolution, error) {
	switch sel.Kind {
	case launcher.Cancelled:
		return Resolution{NoAction: true}, nil

	case launcher.KeyPressed:
		entry, ok := cfg.Lookup(sel.Key)
		if !ok {
			return Resolution{}, &ResolveError{Kind: ErrUnknownKey, Key: sel.Key}
		}
		return Resolution{Command: ResolvedCommand{
			Key:     entry.Key,
			Label:   entry.Label,
			Command: entry.Command,
		}}, nil

	case launcher.Failed:
		if sel.Err == nil {
			return Resolution{}, &ResolveError{Kind: ErrAdapterFailure}
		}
		return Resolution{}, &ResolveError{Kind: ErrAdapterFailure, Err: sel.Err}

	default:
		return Resolution{}, &ResolveError{Kind: ErrAdapterFailure}
	}
}
