// Package markup provides a line-oriented implementation of
// wikiintro.Extractor for raw article markup.
package markup

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/wikiintro"
)

// Markers delimiting the introduction in article markup.
const (
	StartMarker = "<p>"
	EndMarker   = `<div id="toc" class="toc">`
)

// tagPattern matches a single markup tag on one line.
var tagPattern = regexp.MustCompile(`<.*?>`)

// Ensure Extractor implements wikiintro.Extractor at compile time.
var _ wikiintro.Extractor = (*Extractor)(nil)

// Extractor collects the lines between the first line containing
// StartMarker and the first later line containing EndMarker, with tags
// removed. Tags spanning several lines are not recognized.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans r line by line and returns the stripped introduction.
// If the end marker never appears, everything after the start marker is
// returned.
func (e *Extractor) Extract(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	var (
		b              strings.Builder
		contentStarted bool
		contentEnded   bool
	)

	for {
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return "", err
		}

		if !contentStarted {
			contentStarted = strings.Contains(line, StartMarker)
		}
		if !contentStarted {
			continue
		}

		contentEnded = strings.Contains(line, EndMarker)
		if contentEnded {
			break
		}

		b.WriteString(StripTags(line))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// StripTags removes every markup tag from line.
func StripTags(line string) string {
	return tagPattern.ReplaceAllString(line, "")
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned with a nil error; io.EOF is returned only
// when no bytes remain.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
