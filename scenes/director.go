package scenes

import (
	"image/color"

	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/transition"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene is one top-level game mode.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions. create builds the new
// scene when the fade reaches full black. A false result means a transition
// is already under way and the request was dropped.
type SceneChanger interface {
	ChangeScene(target transition.Scene, create func() Scene) bool
}

// Director owns the scene state machine and the active scene.
type Director struct {
	machine *transition.Machine
	scene   Scene
	create  func() Scene
}

// NewDirector starts on scene, which is identified as initial.
func NewDirector(initial transition.Scene, create func(SceneChanger) Scene) *Director {
	d := &Director{machine: transition.New(initial, cfg.Transition.FadeRate)}
	d.scene = create(d)
	return d
}

// ChangeScene requests a fade to target.
func (d *Director) ChangeScene(target transition.Scene, create func() Scene) bool {
	if !d.machine.Request(target) {
		return false
	}
	d.create = create
	return true
}

// Current identifies the active scene.
func (d *Director) Current() transition.Scene {
	return d.machine.Current()
}

// Update runs the active scene, then advances the fade. The outgoing scene is
// frozen while the screen darkens.
func (d *Director) Update() {
	if !d.machine.Locked() {
		d.scene.Update()
	}
	if d.machine.Tick(1 / float64(cfg.C.TPS)) {
		d.scene = d.create()
		d.create = nil
	}
}

// Draw renders the active scene under the fade overlay.
func (d *Director) Draw(screen *ebiten.Image) {
	d.scene.Draw(screen)

	p := d.machine.Progress()
	if p <= 0 {
		return
	}
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), fadeColor(p), false)
}

// fadeColor scales the overlay color by p, keeping it premultiplied.
func fadeColor(p float64) color.RGBA {
	c := cfg.Transition.OverlayColor
	scale := func(v uint8) uint8 { return uint8(float64(v) * p) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
