// file: internal/catalog/errors.go
// version: 1.0.0
// guid: 6d2f8a41-b7c3-4e95-a01d-3c9e7b5f2d84

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingInput = errors.New("missing input")
	ErrDuplicate    = errors.New("already catalogued")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage error")
)

// wrap tags err (which may be nil) with marker and a short step label.
func wrap(marker error, step, detail string, err error) error {
	msg := strings.TrimSpace(step)
	if detail = strings.TrimSpace(detail); detail != "" {
		msg += ": " + detail
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, msg, err)
	}
	return fmt.Errorf("%w: %s", marker, msg)
}

// StateOf classifies an error produced by Reconcile back into its terminal state.
func StateOf(err error) State {
	switch {
	case err == nil:
		return StateAdded
	case errors.Is(err, ErrMissingInput):
		return StateMissingInput
	case errors.Is(err, ErrDuplicate):
		return StateDuplicate
	case errors.Is(err, ErrNotFound):
		return StateNotFound
	default:
		return StateStorageError
	}
}
