// Package dialogue parses the story script shown between levels.
//
// A script is a list of sections. A section starts at a line containing
// "---" followed by its tag; every following non-blank line up to the next
// section is "[speaker][phrase]". A backslash in a phrase is a line break.
package dialogue

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is one spoken phrase.
type Line struct {
	Speaker string
	Text    string
}

// Script maps section tags to their lines.
type Script struct {
	sections map[string][]Line
	order    []string
}

// Parse reads a whole script.
func Parse(r io.Reader) (*Script, error) {
	s := &Script{sections: map[string][]Line{}}
	current := ""
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		if i := strings.Index(raw, "---"); i >= 0 {
			fields := strings.Fields(strings.Trim(raw[i+3:], "-"))
			if len(fields) == 0 {
				return nil, fmt.Errorf("dialogue: line %d: section without tag", lineNo)
			}
			current = fields[0]
			if _, dup := s.sections[current]; dup {
				return nil, fmt.Errorf("dialogue: line %d: section %q repeated", lineNo, current)
			}
			s.sections[current] = nil
			s.order = append(s.order, current)
			continue
		}

		if current == "" {
			return nil, fmt.Errorf("dialogue: line %d: text before the first section", lineNo)
		}
		line, err := parseLine(raw)
		if err != nil {
			return nil, fmt.Errorf("dialogue: line %d: %w", lineNo, err)
		}
		s.sections[current] = append(s.sections[current], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dialogue: %w", err)
	}
	return s, nil
}

func parseLine(raw string) (Line, error) {
	speaker, rest, ok := bracketed(raw)
	if !ok {
		return Line{}, fmt.Errorf("expected [speaker][phrase], got %q", raw)
	}
	phrase, rest, ok := bracketed(rest)
	if !ok || strings.TrimSpace(rest) != "" {
		return Line{}, fmt.Errorf("expected [speaker][phrase], got %q", raw)
	}
	return Line{
		Speaker: strings.TrimSpace(speaker),
		Text:    strings.ReplaceAll(phrase, `\`, "\n"),
	}, nil
}

// bracketed splits "[inner]rest".
func bracketed(s string) (inner, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(s, "[") {
		return "", "", false
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return "", "", false
	}
	return s[1:end], s[end+1:], true
}

// Lines returns the lines of the tagged section, nil when there is none.
func (s *Script) Lines(tag string) []Line {
	return s.sections[tag]
}

// Has reports whether the script contains a section with this tag.
func (s *Script) Has(tag string) bool {
	_, ok := s.sections[tag]
	return ok
}

// Tags lists the section tags in script order.
func (s *Script) Tags() []string {
	return s.order
}

// LevelTag is the section shown before level n.
func LevelTag(n int) string {
	return fmt.Sprintf("level%d", n)
}
