package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrUnknownAction is returned when the driver answers the action menu
	// with an index outside the offered options.
	ErrUnknownAction = errors.New("tui: unknown action")
)
