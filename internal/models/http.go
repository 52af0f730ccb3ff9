// Package models defines the request payloads accepted by the HTTP API.
package models

// NewURLRequest is the body of a create request. Every other field of the
// stored record is assigned by the server.
type NewURLRequest struct {
	// LongURL is the target the short code will stand for. It is nil when
	// the key is missing or null.
	LongURL *string `json:"long_url"`
}
