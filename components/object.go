package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData places an entity in the collision space. X/Y is the top-left
// corner of the box.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the object's box.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// MoveCenter puts the middle of the box at (x,y) and refreshes the space cells.
func (o ObjectData) MoveCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space sized to the level.
var Space = donburi.NewComponentType[resolv.Space]()
