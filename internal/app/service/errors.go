package service

import (
	"errors"

	"github.com/atinyakov/url-registry/internal/storage"
)

// Kind tags a storage failure by cause.
type Kind string

const (
	KindNone     Kind = ""
	KindNotFound Kind = "not_found"
	KindConflict Kind = "conflict"
	KindBackend  Kind = "backend"
)

// KindOf classifies err. Anything that is neither a missing record nor a
// short code conflict counts as a backend failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, storage.ErrNotFound):
		return KindNotFound
	case errors.Is(err, storage.ErrConflict):
		return KindConflict
	default:
		return KindBackend
	}
}
