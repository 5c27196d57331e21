package ui

import (
	"strconv"

	"github.com/automoto/spiritfire/locale"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

const levelsPerRow = 5

// LevelSelectUI lists every level as a button. Levels past the highest
// unlocked one are disabled.
type LevelSelectUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSelect func(n int)
	OnBack   func()

	count    int
	unlocked int
	buttons  []*widget.Button
	faces    faces
}

// NewLevelSelectUI creates the level list for count levels
func NewLevelSelectUI(count, unlocked int, onSelect func(int), onBack func()) *LevelSelectUI {
	lui := &LevelSelectUI{
		OnSelect: onSelect,
		OnBack:   onBack,
		count:    count,
		unlocked: unlocked,
		faces:    loadFaces(),
	}
	lui.buildUI()
	return lui
}

func (lui *LevelSelectUI) buildUI() {
	root, content := newScreen()

	content.AddChild(newLabel(locale.Get("LEVELS_TITLE"), &lui.faces.title, titleColor))

	var row *widget.Container
	for n := 1; n <= lui.count; n++ {
		if (n-1)%levelsPerRow == 0 {
			row = newRow(6)
			content.AddChild(row)
		}
		level := n
		button := newButton(strconv.Itoa(n), &lui.faces.normal, 44, 32, func() {
			if level <= lui.unlocked && lui.OnSelect != nil {
				lui.OnSelect(level)
			}
		})
		button.GetWidget().Disabled = n > lui.unlocked
		lui.buttons = append(lui.buttons, button)
		row.AddChild(button)
	}

	content.AddChild(newButton(locale.Get("BACK"), &lui.faces.normal, 100, 26, func() {
		if lui.OnBack != nil {
			lui.OnBack()
		}
	}))

	lui.UI = &ebitenui.UI{
		Container: root,
	}
}

// Unlocked is the highest level the list lets the player pick.
func (lui *LevelSelectUI) Unlocked() int {
	return lui.unlocked
}

// Update calls the UI's Update method
func (lui *LevelSelectUI) Update() {
	lui.UI.Update()
}
