package domain

import "errors"

var (
	// ErrInvalidQuery signals a malformed search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSourceUnavailable signals that a record source could not be read.
	ErrSourceUnavailable = errors.New("source unavailable")
)
