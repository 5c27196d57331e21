package systems

import (
	"github.com/automoto/spiritfire/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelProgress decides whether the level is won or lost. The outcome
// is latched: once decided it no longer changes.
func UpdateLevelProgress(e *ecs.ECS) {
	lvl, ok := getLevel(e)
	if !ok || lvl.Status != components.LevelPlaying {
		return
	}
	lvl.Status = LevelOutcome(lvl.Escaped, LiveSpirits(e), lvl.Current.Meta.Survive)
}

// LevelOutcome applies the survive rule: the level is lost as soon as the
// spirits that escaped plus those still alive cannot reach survive, and won
// once no spirit is left in play and enough escaped.
func LevelOutcome(escaped, alive, survive int) components.LevelStatus {
	switch {
	case escaped+alive < survive:
		return components.LevelLost
	case alive == 0:
		return components.LevelWon
	}
	return components.LevelPlaying
}

// HasNextLevel reports whether another level follows the current one.
func HasNextLevel(lvl *components.LevelData) bool {
	return lvl.Current.Number < lvl.LevelCount
}
