package repository

import (
	"errors"
)

var (
	// ErrNegativeOffset is returned when a caller supplies an offset below zero.
	ErrNegativeOffset = errors.New("offset value should be greater than zero")

	// ErrNegativeLimit is returned when a caller supplies a limit below zero.
	ErrNegativeLimit = errors.New("limit value should be greater than zero")
)

// Page represents offset/limit pagination for list queries. There is no upper
// bound on Limit; callers get exactly what they ask for.
type Page struct {
	Offset int
	Limit  int
}

// NewPage validates the given offset and limit and builds a Page.
func NewPage(offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, ErrNegativeOffset
	}
	if limit < 0 {
		return Page{}, ErrNegativeLimit
	}
	return Page{Offset: offset, Limit: limit}, nil
}
