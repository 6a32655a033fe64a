package views

import "errors"

var (
	// ErrKeyNotFound is a missed resource, definition or statement
	// lookup. It never invalidates the rest of the view.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNoLine is a per-line lookup on a line owning no statement.
	ErrNoLine = errors.New("no statement at line")
)
