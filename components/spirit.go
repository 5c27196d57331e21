package components

import (
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Behavior is the spirit's current order. Target is meaningful for
// StateChopTree and StateLightFire only.
type Behavior struct {
	State  cfg.SpiritState
	Target level.Coord
}

// Patrol is the default behavior.
var Patrol = Behavior{State: cfg.StatePatrol}

type SpiritData struct {
	ID        int       // stable for the lifetime of the level
	Direction math.Vec2 // unit step while patrolling
	Behavior  Behavior
	Alive     bool
	Escaped   bool        // left through an exit; Alive is false as well
	LastTile  level.Coord // cell occupied after the previous tick
}

var Spirit = donburi.NewComponentType[SpiritData]()
