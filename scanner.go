package gamess

import (
	"bufio"
	"errors"
	"io"
)

// ErrExhausted is returned when a section parser asks for a line past
// the end of the log. Sections are only entered when a complete block
// is expected, so running out of lines mid-block always fails the
// whole parse.
var ErrExhausted = errors.New("unexpected end of GAMESS log")

// Scanner is a forward-only cursor over the lines of a log file.
// Unlike bufio.Scanner it keeps blank lines, since blank lines
// terminate many GAMESS sections.
type Scanner struct {
	lines []string
	pos   int
}

// NewScanner reads all of r and returns a Scanner positioned before
// the first line.
func NewScanner(r io.Reader) (*Scanner, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Scanner{lines: lines, pos: -1}, nil
}

// Next advances the cursor and returns the new current line, or
// ErrExhausted if the input is used up.
func (s *Scanner) Next() (string, error) {
	if s.pos+1 >= len(s.lines) {
		s.pos = len(s.lines)
		return "", ErrExhausted
	}
	s.pos++
	return s.lines[s.pos], nil
}

// Line returns the current line without advancing.
func (s *Scanner) Line() string {
	if s.pos < 0 || s.pos >= len(s.lines) {
		return ""
	}
	return s.lines[s.pos]
}

// AtEnd reports whether Next would fail.
func (s *Scanner) AtEnd() bool {
	return s.pos+1 >= len(s.lines)
}
