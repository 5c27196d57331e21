package components

import "github.com/yohamta/donburi"

// MessageStateData is the status line shown for a while after an action
// such as a quick save.
type MessageStateData struct {
	Text         string
	DisplayTimer int // ticks left on screen
}

var MessageState = donburi.NewComponentType[MessageStateData]()
