// Package generator produces the short codes handed out for new URL records.
package generator

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultLength is the number of characters in a generated short code.
const DefaultLength = 10

// NanoID generates URL-safe random tokens from the nanoid alphabet (A-Za-z0-9_-).
type NanoID struct {
	size int
}

// NewNanoID returns a generator of tokens with the given number of characters.
// A non-positive size falls back to DefaultLength.
func NewNanoID(size int) *NanoID {
	if size <= 0 {
		size = DefaultLength
	}

	return &NanoID{size: size}
}

// Generate returns a fresh token. It panics if the system random source fails.
func (g *NanoID) Generate() string {
	return gonanoid.Must(g.size)
}

// Size reports the length of the tokens produced by g.
func (g *NanoID) Size() int {
	return g.size
}
