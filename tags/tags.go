package tags

import "github.com/yohamta/donburi"

var (
	Spirit = donburi.NewTag().SetName("Spirit")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for spatial queries
const (
	ResolvSpirit = "spirit"
	ResolvEnemy  = "enemy"
	ResolvProbe  = "probe"
)
