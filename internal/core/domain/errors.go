package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrStatusConflict = errors.New("column status already in use")
	ErrMissingID      = errors.New("id is required")
	ErrEmptyTitle     = errors.New("title is required")

	// ErrMalformedImport marks import payloads that are not a JSON array of
	// board records. Nothing is written when it is returned.
	ErrMalformedImport = errors.New("malformed import data")
)

// CapacityError is returned when a move would push a column past its WIP
// limit. It carries what the UI needs to tell the user which column is full.
type CapacityError struct {
	ColumnTitle string
	Limit       int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("column %q is at its WIP limit of %d", e.ColumnTitle, e.Limit)
}
