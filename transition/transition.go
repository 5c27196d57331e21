// Package transition is the scene state machine. A scene change fades the
// screen to black, swaps scenes at full black and fades back in.
package transition

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scene identifies one of the game's top-level modes.
type Scene int

const (
	MainMenu Scene = iota
	Level
	Transition
	GameOver
	GameEnd
	LevelSelection
)

func (s Scene) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case Level:
		return "level"
	case Transition:
		return "transition"
	case GameOver:
		return "game_over"
	case GameEnd:
		return "game_end"
	case LevelSelection:
		return "level_selection"
	}
	return "unknown"
}

// Phase is where the machine is in a fade.
type Phase int

const (
	Idle Phase = iota
	// FadingIn darkens the screen toward the commit point. New requests are
	// refused during this phase.
	FadingIn
	// FadingOut reveals the newly committed scene.
	FadingOut
)

// Machine tracks the current scene and the fade toward the next one.
// Progress is 0 with the scene fully visible and 1 at full black.
type Machine struct {
	current  Scene
	next     Scene
	hasNext  bool
	phase    Phase
	progress float64
	rate     float64
	tween    *gween.Tween
}

// New returns an idle machine showing initial. rate is fade progress per
// second in each direction.
func New(initial Scene, rate float64) *Machine {
	if rate <= 0 {
		panic("transition: fade rate must be positive")
	}
	return &Machine{current: initial, rate: rate}
}

func (m *Machine) Current() Scene      { return m.current }
func (m *Machine) Phase() Phase        { return m.phase }
func (m *Machine) Progress() float64   { return m.progress }
func (m *Machine) Locked() bool        { return m.phase == FadingIn }
func (m *Machine) Next() (Scene, bool) { return m.next, m.hasNext }

// Request starts a fade toward s. It is refused while another fade in is
// under way. A request during fade out turns the fade around from the
// current darkness.
func (m *Machine) Request(s Scene) bool {
	if m.Locked() {
		return false
	}
	m.next = s
	m.hasNext = true
	m.phase = FadingIn
	m.tween = m.fade(m.progress, 1)
	return true
}

// Tick advances the fade by dt seconds and reports whether the scene was
// committed during this tick.
func (m *Machine) Tick(dt float64) bool {
	switch m.phase {
	case FadingIn:
		v, done := m.tween.Update(float32(dt))
		m.progress = float64(v)
		if !done {
			return false
		}
		m.progress = 1
		m.current = m.next
		m.hasNext = false
		m.phase = FadingOut
		m.tween = m.fade(1, 0)
		return true
	case FadingOut:
		v, done := m.tween.Update(float32(dt))
		m.progress = float64(v)
		if done {
			m.progress = 0
			m.phase = Idle
			m.tween = nil
		}
	}
	return false
}

func (m *Machine) fade(from, to float64) *gween.Tween {
	distance := to - from
	if distance < 0 {
		distance = -distance
	}
	return gween.New(float32(from), float32(to), float32(distance/m.rate), ease.Linear)
}
