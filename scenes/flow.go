package scenes

import (
	"github.com/automoto/spiritfire/savegame"
	"github.com/automoto/spiritfire/transition"
)

func goToMenu(sc SceneChanger) bool {
	return sc.ChangeScene(transition.MainMenu, func() Scene { return NewMenuScene(sc) })
}

func goToLevelSelection(sc SceneChanger) bool {
	return sc.ChangeScene(transition.LevelSelection, func() Scene { return NewLevelSelectScene(sc) })
}

// goToTransition shows the story card for level n, which then starts it.
func goToTransition(sc SceneChanger, n int) bool {
	return sc.ChangeScene(transition.Transition, func() Scene { return NewTransitionScene(sc, n) })
}

// goToLevel starts level n fresh, or resumes it when restored is set.
func goToLevel(sc SceneChanger, n int, restored *savegame.Restored) bool {
	return sc.ChangeScene(transition.Level, func() Scene { return NewLevelScene(sc, n, restored) })
}

func goToGameOver(sc SceneChanger, n int) bool {
	return sc.ChangeScene(transition.GameOver, func() Scene { return NewGameOverScene(sc, n) })
}

func goToGameEnd(sc SceneChanger) bool {
	return sc.ChangeScene(transition.GameEnd, func() Scene { return NewGameEndScene(sc) })
}
