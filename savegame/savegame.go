// Package savegame stores a level in progress in a named slot and restores it.
//
// A slot holds one JSON record: the grid as level text, the level metadata
// with every fire's state, and a snapshot of the live spirits and enemies.
// Loading re-runs the full level consistency checks, so a record that
// disagrees with itself is rejected rather than half restored.
package savegame

import (
	"encoding/json"
	"errors"
	"fmt"

	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
)

// DefaultSlot is the slot used by quick save and the Continue menu entry.
const DefaultSlot = "quick"

// ErrNoSave is returned by Load when the slot is empty.
var ErrNoSave = errors.New("savegame: slot is empty")

// Store is the subset of a gdata manager saves need.
type Store interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// SpiritRecord is one live spirit.
type SpiritRecord struct {
	ID        int         `json:"id"`
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	Direction level.Coord `json:"direction"`
	State     string      `json:"state"`
	Target    level.Coord `json:"target"`
}

// EnemyRecord is one enemy's pixel center.
type EnemyRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is everything needed to resume a level.
type Snapshot struct {
	Level       int            `json:"level"`
	Grid        string         `json:"grid"`
	Metadata    level.Metadata `json:"metadata"`
	SpiritCount int            `json:"spiritCount"`
	Spirits     []SpiritRecord `json:"spirits"`
	Enemies     []EnemyRecord  `json:"enemies"`
	Wood        uint           `json:"wood"`
	Escaped     int            `json:"escaped"`
	NextID      int            `json:"nextId"`
}

// Restored is a validated snapshot with its level rebuilt.
type Restored struct {
	Level    *level.Level
	Snapshot Snapshot
}

func slotKey(slot string) string {
	return "save_" + slot
}

// Save clears the slot and writes snap into it.
func Save(store Store, slot string, snap Snapshot) error {
	snap.SpiritCount = len(snap.Spirits)
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("savegame: encode: %w", err)
	}
	if err := Clear(store, slot); err != nil {
		return err
	}
	if err := store.SaveItem(slotKey(slot), data); err != nil {
		return fmt.Errorf("savegame: write slot %q: %w", slot, err)
	}
	return nil
}

// Clear empties the slot.
func Clear(store Store, slot string) error {
	if err := store.SaveItem(slotKey(slot), nil); err != nil {
		return fmt.Errorf("savegame: clear slot %q: %w", slot, err)
	}
	return nil
}

// Exists reports whether the slot holds a record. Read errors count as empty.
func Exists(store Store, slot string) bool {
	data, err := store.LoadItem(slotKey(slot))
	return err == nil && len(data) > 0
}

// Load reads and validates the record in slot. An empty slot yields
// ErrNoSave; any inconsistency in the record is an error.
func Load(store Store, slot string, width, height int) (*Restored, error) {
	data, err := store.LoadItem(slotKey(slot))
	if err != nil {
		return nil, fmt.Errorf("savegame: read slot %q: %w", slot, err)
	}
	if len(data) == 0 {
		return nil, ErrNoSave
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("savegame: decode slot %q: %w", slot, err)
	}
	return Restore(snap, width, height)
}

// Restore validates snap and rebuilds its level.
func Restore(snap Snapshot, width, height int) (*Restored, error) {
	if snap.Level <= 0 {
		return nil, fmt.Errorf("savegame: invalid level number %d", snap.Level)
	}
	g, err := level.ParseGrid(snap.Grid, width, height)
	if err != nil {
		return nil, fmt.Errorf("savegame: grid: %w", err)
	}
	meta := snap.Metadata
	lvl, err := level.Assemble(snap.Level, g, &meta)
	if err != nil {
		return nil, fmt.Errorf("savegame: %w", err)
	}
	if err := validateSpirits(snap, g); err != nil {
		return nil, fmt.Errorf("savegame: %w", err)
	}
	if err := validateEnemies(snap.Enemies, g); err != nil {
		return nil, fmt.Errorf("savegame: %w", err)
	}
	return &Restored{Level: lvl, Snapshot: snap}, nil
}

func validateSpirits(snap Snapshot, g *level.Grid) error {
	if snap.SpiritCount != len(snap.Spirits) {
		return fmt.Errorf("spirit count %d does not match %d records", snap.SpiritCount, len(snap.Spirits))
	}
	if snap.Escaped < 0 {
		return fmt.Errorf("negative escaped count %d", snap.Escaped)
	}
	if total := snap.Metadata.TotalSpirits(); len(snap.Spirits)+snap.Escaped > total {
		return fmt.Errorf("%d live and %d escaped spirits exceed the level's %d", len(snap.Spirits), snap.Escaped, total)
	}

	ids := make(map[int]bool, len(snap.Spirits))
	for _, s := range snap.Spirits {
		if ids[s.ID] {
			return fmt.Errorf("duplicate spirit id %d", s.ID)
		}
		ids[s.ID] = true
		if s.ID >= snap.NextID {
			return fmt.Errorf("spirit id %d not below next id %d", s.ID, snap.NextID)
		}
		if !inPixelBounds(g, s.X, s.Y) {
			return fmt.Errorf("spirit %d at (%.1f,%.1f) outside level", s.ID, s.X, s.Y)
		}
		if !isStep(s.Direction) {
			return fmt.Errorf("spirit %d has direction %s", s.ID, s.Direction)
		}

		state, ok := cfg.ParseSpiritState(s.State)
		if !ok {
			return fmt.Errorf("spirit %d has unknown state %q", s.ID, s.State)
		}
		if state != cfg.StatePatrol && !g.InBounds(s.Target.X, s.Target.Y) {
			return fmt.Errorf("spirit %d targets %s outside grid", s.ID, s.Target)
		}
	}
	return nil
}

func validateEnemies(enemies []EnemyRecord, g *level.Grid) error {
	for i, e := range enemies {
		if !inPixelBounds(g, e.X, e.Y) {
			return fmt.Errorf("enemy %d at (%.1f,%.1f) outside level", i, e.X, e.Y)
		}
	}
	return nil
}

func inPixelBounds(g *level.Grid, x, y float64) bool {
	c := level.TileAt(x, y, cfg.C.TileSize)
	return g.InBounds(c.X, c.Y)
}

func isStep(d level.Coord) bool {
	ok := func(v int) bool { return v >= -1 && v <= 1 }
	return ok(d.X) && ok(d.Y) && (d.X != 0 || d.Y != 0)
}
