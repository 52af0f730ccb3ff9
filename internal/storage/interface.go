// Package storage defines the URL record model shared by every storage
// backend and provides the in-memory backend.
package storage

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("url not found")

	// ErrConflict is returned when a unique short code could not be
	// allocated within MaxCreateAttempts.
	ErrConflict = errors.New("short url conflict")
)

// MaxCreateAttempts bounds how many short codes a backend draws for a
// single create before giving up with ErrConflict.
const MaxCreateAttempts = 3

// Generator produces candidate short codes.
type Generator interface {
	Generate() string
}
