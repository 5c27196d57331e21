package systems

import (
	"errors"
	"log"
	"math"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/automoto/spiritfire/locale"
	"github.com/automoto/spiritfire/savegame"
	"github.com/automoto/spiritfire/settings"
	"github.com/automoto/spiritfire/systems/factory"
	"github.com/automoto/spiritfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var errNoPersistence = errors.New("persistence is not available")

var gdataManager *gdata.Manager
var gdataInitialized bool

// shaderEnabled mirrors the shader setting for the level scene.
var shaderEnabled bool

// InitPersistence initializes the gdata manager for settings and saves
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spiritfire",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings returns the stored settings, or the defaults when nothing
// usable is stored.
func LoadSettings() settings.Settings {
	if !gdataInitialized {
		return settings.Default()
	}
	return settings.Load(gdataManager)
}

// SaveSettings writes s to disk.
func SaveSettings(s settings.Settings) error {
	if !gdataInitialized {
		return nil
	}
	if err := settings.Save(gdataManager, s); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySettings pushes s into the audio mixer, the window and the string
// catalog.
func ApplySettings(s settings.Settings) {
	s = s.Normalize()

	SetMusicVolume(settings.Volume(s.MusicVolume))
	SetSFXVolume(settings.Volume(s.SoundVolume))

	if err := locale.SetLanguage(s.Language); err != nil {
		log.Printf("Warning: Could not switch language to %q: %v", s.Language, err)
	}

	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen {
		ebiten.SetWindowSize(cfg.C.Width*s.PixelScale, cfg.C.Height*s.PixelScale)
	}
	shaderEnabled = s.Shader
}

// ShaderEnabled reports whether the post-processing shader is switched on.
func ShaderEnabled() bool {
	return shaderEnabled
}

// CaptureSnapshot records the level in progress: grid, fire states, the live
// spirits and the enemies.
func CaptureSnapshot(e *ecs.ECS) savegame.Snapshot {
	lvl := components.Level.Get(components.Level.MustFirst(e.World))
	orders := GetOrCreateOrders(e)
	grid := lvl.Current.Grid

	meta := *lvl.Current.Meta
	meta.Fires = grid.FireStates()

	snap := savegame.Snapshot{
		Level:    lvl.Current.Number,
		Grid:     grid.Serialize(),
		Metadata: meta,
		Wood:     orders.Wood,
		Escaped:  lvl.Escaped,
		NextID:   lvl.NextID,
	}

	tags.Spirit.Each(e.World, func(entry *donburi.Entry) {
		spirit := components.Spirit.Get(entry)
		if !spirit.Alive {
			return
		}
		x, y := components.Object.Get(entry).Center()
		snap.Spirits = append(snap.Spirits, savegame.SpiritRecord{
			ID: spirit.ID,
			X:  x,
			Y:  y,
			Direction: level.Coord{
				X: int(math.Round(spirit.Direction.X)),
				Y: int(math.Round(spirit.Direction.Y)),
			},
			State:  spirit.Behavior.State.String(),
			Target: spirit.Behavior.Target,
		})
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		x, y := components.Object.Get(entry).Center()
		snap.Enemies = append(snap.Enemies, savegame.EnemyRecord{X: x, Y: y})
	})
	return snap
}

// RestoreSnapshot populates an empty world from a validated save.
func RestoreSnapshot(e *ecs.ECS, r *savegame.Restored, levelCount int) {
	entry := factory.CreateEmptyLevel(e, r.Level, levelCount)
	lvl := components.Level.Get(entry)
	lvl.Escaped = r.Snapshot.Escaped
	lvl.NextID = r.Snapshot.NextID
	GetOrCreateOrders(e).Wood = r.Snapshot.Wood

	for _, s := range r.Snapshot.Spirits {
		// Restore validated the state name already.
		state, _ := cfg.ParseSpiritState(s.State)
		dir := dmath.Vec2{X: float64(s.Direction.X), Y: float64(s.Direction.Y)}
		spirit := factory.CreateSpirit(e, s.ID, s.X, s.Y, dir)
		components.Spirit.Get(spirit).Behavior = components.Behavior{State: state, Target: s.Target}
	}
	for _, en := range r.Snapshot.Enemies {
		factory.CreateEnemyAt(e, en.X, en.Y)
	}
}

// SaveGame writes the level in progress to the quick save slot.
func SaveGame(e *ecs.ECS) error {
	if !gdataInitialized {
		return errNoPersistence
	}
	if err := savegame.Save(gdataManager, savegame.DefaultSlot, CaptureSnapshot(e)); err != nil {
		log.Printf("Warning: Could not save game: %v", err)
		return err
	}
	return nil
}

// LoadGame reads the quick save slot. savegame.ErrNoSave means there is
// nothing to load; any other error means the slot is corrupt.
func LoadGame() (*savegame.Restored, error) {
	if !gdataInitialized {
		return nil, savegame.ErrNoSave
	}
	return savegame.Load(gdataManager, savegame.DefaultSlot, cfg.C.GridWidth, cfg.C.GridHeight)
}

// HasSaveGame returns true if the quick save slot holds a record
func HasSaveGame() bool {
	if !gdataInitialized {
		return false
	}
	return savegame.Exists(gdataManager, savegame.DefaultSlot)
}

// ClearSaveGame empties the quick save slot
func ClearSaveGame() {
	if !gdataInitialized {
		return
	}
	if err := savegame.Clear(gdataManager, savegame.DefaultSlot); err != nil {
		log.Printf("Warning: Could not clear saved game: %v", err)
	}
}

// UnlockLevel makes level n selectable from the level list.
func UnlockLevel(n int) {
	if !gdataInitialized {
		return
	}
	if err := savegame.Unlock(gdataManager, n); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
	}
}

// UnlockedLevel is the highest level the player may start.
func UnlockedLevel() int {
	if !gdataInitialized {
		return 1
	}
	return savegame.LoadProgress(gdataManager).Unlocked
}
