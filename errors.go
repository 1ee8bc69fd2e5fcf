package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrStaleCursor is returned when an operation receives a cursor
	// that was invalidated by a structural mutation of its container.
	ErrStaleCursor errorkit.Error = "ErrStaleCursor"
	// ErrOutOfRange is returned when a dereference, advance or removal
	// targets a position at or beyond the current length.
	ErrOutOfRange errorkit.Error = "ErrOutOfRange"
	// ErrForeignCursor is returned when a cursor is used with a container
	// other than the one that issued it.
	ErrForeignCursor errorkit.Error = "ErrForeignCursor"
)
