package level

import (
	"encoding/json"
	"fmt"
)

// Metadata is the JSON companion of a level grid.
type Metadata struct {
	Survive int          `json:"survive"`
	Spirits []SpawnGroup `json:"spirits"`
	Swamps  []SwampLink  `json:"swamps"`
	Enemies []Coord      `json:"enemies,omitempty"`
	// Fires carries fire activity that the grid text cannot encode. Level
	// files leave it empty, saves fill it.
	Fires []FireState `json:"fires,omitempty"`
}

// SpawnGroup places Amount spirits on one cell, all facing Direction.
type SpawnGroup struct {
	Position  Coord `json:"position"`
	Amount    int   `json:"amount"`
	Direction Coord `json:"direction"`
}

// SwampLink pairs a swamp cell with the cell it teleports to.
type SwampLink struct {
	Swamp    Coord `json:"swamp"`
	Teleport Coord `json:"teleport"`
}

// FireState is the activity of one fire cell.
type FireState struct {
	Position Coord `json:"position"`
	Active   bool  `json:"active"`
}

// MarshalJSON encodes a coordinate as [x,y].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes a coordinate from [x,y].
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate needs 2 components, got %d", len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// ParseMetadata decodes level metadata.
func ParseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &LoadError{Source: "metadata", Reason: err.Error()}
	}
	return &m, nil
}

// TotalSpirits is the number of spirits all spawn groups create.
func (m *Metadata) TotalSpirits() int {
	n := 0
	for _, s := range m.Spirits {
		n += s.Amount
	}
	return n
}

// Validate checks the metadata against the grid it belongs to. Swamp links
// are checked by Grid.LinkSwamps.
func (m *Metadata) Validate(g *Grid) error {
	if m.Survive < 0 {
		return loadErrorf("metadata", "negative survive threshold %d", m.Survive)
	}
	for i, s := range m.Spirits {
		if !g.InBounds(s.Position.X, s.Position.Y) {
			return loadErrorf("metadata", "spirit group %d at %s outside grid", i, s.Position)
		}
		if s.Amount <= 0 {
			return loadErrorf("metadata", "spirit group %d has amount %d", i, s.Amount)
		}
		if !isUnitStep(s.Direction) {
			return loadErrorf("metadata", "spirit group %d has direction %s", i, s.Direction)
		}
	}
	if total := m.TotalSpirits(); m.Survive > total {
		return loadErrorf("metadata", "survive threshold %d exceeds %d spirits", m.Survive, total)
	}
	for i, e := range m.Enemies {
		if !g.InBounds(e.X, e.Y) {
			return loadErrorf("metadata", "enemy %d at %s outside grid", i, e)
		}
	}
	return nil
}

func isUnitStep(d Coord) bool {
	if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
		return false
	}
	return d.X != 0 || d.Y != 0
}
