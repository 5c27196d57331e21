package components

import (
	"github.com/automoto/spiritfire/level"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Path        []level.Coord // remaining cells to walk, next first
	RepathTimer int           // ticks until the next path search
}

var Enemy = donburi.NewComponentType[EnemyData]()
