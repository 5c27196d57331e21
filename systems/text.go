package systems

import (
	"image/color"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawCentered draws s horizontally centered on the screen with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	width := font.MeasureString(face, s).Ceil()
	x := (screen.Bounds().Dx() - width) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// menuItemAt maps a pointer y to the index of a text menu row, or -1.
func menuItemAt(y, startY, itemHeight, gap float64, count int) int {
	if y < startY {
		return -1
	}
	i := int((y - startY) / (itemHeight + gap))
	if i >= count {
		return -1
	}
	return i
}

// pointerClicked reports a pointer release this tick and where it happened.
func pointerClicked(input *components.InputData) (float64, float64, bool) {
	if input.Pointer.Down || !input.PreviousPointer.Down {
		return 0, 0, false
	}
	return input.Pointer.X, input.Pointer.Y, true
}

// drawRightAligned draws s with its right edge margin pixels from the screen edge.
func drawRightAligned(screen *ebiten.Image, s string, face font.Face, margin, y int) {
	width := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, screen.Bounds().Dx()-width-margin, y, cfg.HUD.TextColor)
}
