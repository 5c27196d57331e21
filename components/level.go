package components

import (
	"github.com/automoto/spiritfire/level"
	"github.com/yohamta/donburi"
)

// LevelStatus is the outcome of the level so far.
type LevelStatus int

const (
	LevelPlaying LevelStatus = iota
	LevelWon
	LevelLost
)

type LevelData struct {
	Current    *level.Level
	LevelCount int // number of levels shipped with the game
	Escaped    int // spirits that reached an exit
	NextID     int // next spirit ID to hand out
	Status     LevelStatus
}

var Level = donburi.NewComponentType[LevelData]()
