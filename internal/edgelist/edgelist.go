// Package edgelist reads .dl edge lists: one edge per line, two whitespace-separated
// base-10 integers per line, no header and no comments.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrTokenCount = errors.New("expected exactly two tokens")
	ErrNotInteger = errors.New("token is not an integer")
)

// maxLineSize bounds a single line. Anything longer is certainly not a pair of ints.
const maxLineSize = 1 << 20

type Edge struct {
	From int
	To   int
}

// ParseError reports the first malformed line. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadLines returns every line of r with the line ending removed. A trailing newline
// does not produce an extra empty line.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseLine parses a single "a b" line.
func ParseLine(line string) (Edge, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Edge{}, fmt.Errorf("%w, got %d", ErrTokenCount, len(tokens))
	}

	from, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Edge{}, fmt.Errorf("%w: %w", ErrNotInteger, err)
	}
	to, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Edge{}, fmt.Errorf("%w: %w", ErrNotInteger, err)
	}

	return Edge{From: from, To: to}, nil
}

// ParseLines parses lines in order and stops at the first bad one.
func ParseLines(lines []string) ([]Edge, error) {
	edges := make([]Edge, 0, len(lines))
	for i, line := range lines {
		edge, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

// Parse is ReadLines followed by ParseLines.
func Parse(r io.Reader) ([]Edge, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}
