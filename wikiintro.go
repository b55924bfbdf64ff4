// Package wikiintro prints the introduction of an encyclopedia article.
// It fetches the article's raw markup, scans it line by line between a
// start and an end marker, strips markup tags and writes plain text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, slog/).
package wikiintro

import (
	"context"
	"io"
)

// DefaultBaseURL is the address prefix article titles are appended to.
const DefaultBaseURL = "http://en.wikipedia.org/wiki/"

// PageOpener opens a streaming read of an article's raw markup.
type PageOpener interface {
	// Open requests the address and returns the response body.
	// The caller must close the returned reader.
	//
	// Returns EUNAVAILABLE if the address could not be reached at all and
	// ENOTFOUND if the server answered with a non-success status.
	Open(ctx context.Context, address string) (io.ReadCloser, error)
}

// Extractor extracts the introductory text from raw page markup.
type Extractor interface {
	// Extract consumes r and returns the plain-text introduction.
	// Text accumulated before a read error is discarded.
	Extract(r io.Reader) (string, error)
}
