package components

import (
	"github.com/automoto/spiritfire/dialogue"
	"github.com/yohamta/donburi"
)

// DialogueData is the story card shown before a level.
type DialogueData struct {
	Level int
	Lines []dialogue.Line
	Index int // line on screen
}

var Dialogue = donburi.NewComponentType[DialogueData]()
