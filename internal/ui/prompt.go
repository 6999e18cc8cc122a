package ui

import "errors"

// ErrCancelled reports that the user backed out of a text or number prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter is the console input seam. The menu flows depend only on this
// interface, so they are testable without a terminal.
type Prompter interface {
	// Select presents options and returns the chosen one. ok=false means the
	// user backed out without choosing; it is not an error.
	Select(title string, options []string, defaultOption string) (choice string, ok bool, err error)
	// Confirm asks a yes/no question. Backing out answers no.
	Confirm(title string, defaultYes bool) (bool, error)
	// Input asks for freeform text. Backing out returns ErrCancelled.
	Input(title string) (string, error)
	// Int asks for a whole number no smaller than minAllowed. Backing out
	// returns ErrCancelled.
	Int(title string, minAllowed int64) (int64, error)
}
