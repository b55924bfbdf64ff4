package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errNoTopic is returned when stdin ends before a topic line is read.
var errNoTopic = errors.New("no topic provided: standard input closed")

// readTopic reads one line from r. A last line without a newline counts.
func readTopic(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", errNoTopic
	} else if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read topic: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
