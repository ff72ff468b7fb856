package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrDesignMode is returned when asked to prompt a question that is in
	// design mode.
	ErrDesignMode = errors.New("tui: question is in design mode")
	// ErrNoChoices is returned when a question has nothing to pick from.
	ErrNoChoices = errors.New("tui: question has no selectable choices")
)
