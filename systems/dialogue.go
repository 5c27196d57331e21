package systems

import (
	"strings"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/dialogue"
	"github.com/automoto/spiritfire/fonts"
	"github.com/automoto/spiritfire/locale"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const dialogueLineHeight = 20

// CreateDialogue spawns the story card for levelNumber.
func CreateDialogue(e *ecs.ECS, levelNumber int, lines []dialogue.Line) *components.DialogueData {
	ent := e.World.Entry(e.World.Create(components.Dialogue))
	components.Dialogue.SetValue(ent, components.DialogueData{
		Level: levelNumber,
		Lines: lines,
	})
	return components.Dialogue.Get(ent)
}

// NewUpdateDialogue advances the story card one line per select or click and
// calls done after the last line. Back skips the rest.
func NewUpdateDialogue(done func()) ecs.System {
	finished := false
	return func(e *ecs.ECS) {
		entry, ok := components.Dialogue.First(e.World)
		if !ok || finished {
			return
		}
		d := components.Dialogue.Get(entry)
		input := getOrCreateInput(e)

		_, _, clicked := pointerClicked(input)
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			d.Index = len(d.Lines)
		} else if clicked || GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			d.Index++
		}

		if d.Index >= len(d.Lines) {
			d.Index = len(d.Lines)
			finished = true
			done()
		}
	}
}

// DrawDialogue renders the level title, the current speaker and phrase.
func DrawDialogue(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Dialogue.First(e.World)
	if !ok {
		return
	}
	d := components.Dialogue.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, locale.Get("LEVEL_N", d.Level), fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	if d.Index < len(d.Lines) {
		line := d.Lines[d.Index]
		y := int(cfg.Menu.MenuStartY)
		drawCentered(screen, line.Speaker, fonts.Bold.Get(), y, cfg.Menu.TextColorSelected)
		for i, row := range strings.Split(line.Text, "\n") {
			drawCentered(screen, row, fonts.Regular.Get(), y+(i+1)*dialogueLineHeight+6, cfg.Menu.TextColorNormal)
		}
	}

	drawCentered(screen, locale.Get("TRANSITION_HINT"), fonts.Small.Get(), int(height)-12, cfg.Menu.TextColorNormal)
}
