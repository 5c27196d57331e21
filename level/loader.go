package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"
)

// Level is a grid together with the metadata it was linked against.
type Level struct {
	Number int
	Grid   *Grid
	Meta   *Metadata
}

// Assemble validates meta against g, applies swamp links and saved fire
// states, and checks that no swamp is left unlinked.
func Assemble(number int, g *Grid, meta *Metadata) (*Level, error) {
	if err := meta.Validate(g); err != nil {
		return nil, err
	}
	if err := g.LinkSwamps(meta.Swamps); err != nil {
		return nil, err
	}
	if err := g.ApplyFireStates(meta.Fires); err != nil {
		return nil, err
	}
	if err := g.CheckLinked(); err != nil {
		return nil, err
	}
	return &Level{Number: number, Grid: g, Meta: meta}, nil
}

// LoadLevel reads level number n from dir: the grid from <n>.txt, or from a
// Tiled map <n>.tmx when no text file exists, and the metadata from <n>.json.
func LoadLevel(fsys fs.FS, dir string, n, width, height int) (*Level, error) {
	stem := path.Join(dir, strconv.Itoa(n))

	var g *Grid
	text, err := fs.ReadFile(fsys, stem+".txt")
	switch {
	case err == nil:
		g, err = ParseGrid(string(text), width, height)
		if err != nil {
			return nil, fmt.Errorf("level %d grid: %w", n, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		g, err = LoadTMX(fsys, stem+".tmx", width, height)
		if err != nil {
			return nil, fmt.Errorf("level %d grid: %w", n, err)
		}
	default:
		return nil, fmt.Errorf("level %d grid: %w", n, err)
	}

	raw, err := fs.ReadFile(fsys, stem+".json")
	if err != nil {
		return nil, fmt.Errorf("level %d metadata: %w", n, err)
	}
	meta, err := ParseMetadata(raw)
	if err != nil {
		return nil, fmt.Errorf("level %d metadata: %w", n, err)
	}

	lvl, err := Assemble(n, g, meta)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}
	return lvl, nil
}

// Count returns N such that levels 1..N all have metadata in dir.
func Count(fsys fs.FS, dir string) int {
	n := 0
	for {
		if _, err := fs.Stat(fsys, path.Join(dir, strconv.Itoa(n+1)+".json")); err != nil {
			return n
		}
		n++
	}
}
