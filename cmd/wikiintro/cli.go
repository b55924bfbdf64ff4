package main

import (
	"context"
	"io"

	"github.com/fwojciec/wikiintro"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Opener    wikiintro.PageOpener
	Extractor wikiintro.Extractor
}

// IntroCmd prints the introduction of one article.
type IntroCmd struct {
	Topic   []string
	BaseURL string
}

// Diagnostic prefixes written to stderr for fatal errors.
const (
	malformedURLPrefix = "Caught MalformedURLException: "
	pageNotFoundPrefix = "Caught IOException: Page Not Found!!! "
)

// FatalError is a diagnostic that ends the run with a non-zero exit code.
// Its text is the complete line written to stderr.
type FatalError struct {
	Prefix  string
	Message string
}

func (e *FatalError) Error() string {
	return e.Prefix + e.Message
}
