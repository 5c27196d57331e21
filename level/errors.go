package level

import "fmt"

// LoadError reports level content that cannot be turned into a grid or
// metadata. It is never recovered from: the content is corrupt.
type LoadError struct {
	Source string // file or field the problem was found in, may be empty
	Reason string
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return "level load: " + e.Reason
	}
	return fmt.Sprintf("level load %s: %s", e.Source, e.Reason)
}

// LinkageError reports metadata that does not agree with the grid, such as a
// swamp link pointing at a cell that is not a swamp.
type LinkageError struct {
	At     Coord
	Reason string
}

func (e *LinkageError) Error() string {
	return fmt.Sprintf("level linkage at %s: %s", e.At, e.Reason)
}

func loadErrorf(source, format string, args ...any) *LoadError {
	return &LoadError{Source: source, Reason: fmt.Sprintf(format, args...)}
}
