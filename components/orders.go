package components

import "github.com/yohamta/donburi"

// OrdersData is the order coordinator's state.
type OrdersData struct {
	Selected donburi.Entity // donburi.Null when nothing is selected
	// Line endpoint follows the pointer while a spirit is selected.
	HasLine      bool
	LineX, LineY float64
	Wood         uint
}

var Orders = donburi.NewComponentType[OrdersData]()
