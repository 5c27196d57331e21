package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	TPS        int // logical ticks per second
	GridWidth  int
	GridHeight int
	TileSize   float64
	LevelDir   string
}

// SpiritConfig contains spirit movement and order tuning
type SpiritConfig struct {
	PatrolSpeed   float64 // pixels per tick while patrolling
	OrderSpeed    float64 // pixels per tick while walking to an order target
	ArriveEpsilon float64 // distance to the target center that counts as arrived
	SelectRadius  float64 // max pointer distance for selecting a spirit
	Size          float64 // collision box edge
}

// EnemyConfig contains enemy pursuit tuning
type EnemyConfig struct {
	Speed          float64 // pixels per tick
	RepathInterval int     // ticks between path searches
	Size           float64
}

// TransitionConfig contains scene fade tuning
type TransitionConfig struct {
	FadeRate     float64 // progress per second, 1/FadeRate seconds each way
	OverlayColor color.RGBA
}

// MenuConfig contains text menu layout values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// BoardConfig contains the tile palette used to draw a level
type BoardConfig struct {
	Air          color.RGBA
	Tree         color.RGBA
	FireInactive color.RGBA
	FireActive   color.RGBA
	Swamp        color.RGBA
	Exit         color.RGBA
	Spirit       color.RGBA
	Selected     color.RGBA
	Enemy        color.RGBA
	OrderLine    color.RGBA
	GridLine     color.RGBA
}

// HUDConfig contains heads-up display values
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	BgColor   color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to a level
	StartLevel int
	Overlay    bool // Draw collision boxes and enemy paths
}

// MessageConfig contains status message box values
type MessageConfig struct {
	DisplayDuration int // ticks
	BoxPadding      float64
	BottomMargin    float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
}

// Global configuration instances
var C *Config
var Spirit SpiritConfig
var Enemy EnemyConfig
var Transition TransitionConfig
var Menu MenuConfig
var GameOver MenuConfig
var Pause MenuConfig
var Board BoardConfig
var HUD HUDConfig
var Debug DebugConfig
var Message MessageConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:      640,
		Height:     360,
		TPS:        60,
		GridWidth:  16,
		GridHeight: 9,
		TileSize:   40,
		LevelDir:   "levels",
	}

	Spirit = SpiritConfig{
		PatrolSpeed:   1.0,
		OrderSpeed:    2.0,
		ArriveEpsilon: 0.5,
		SelectRadius:  40,
		Size:          20,
	}

	Enemy = EnemyConfig{
		Speed:          0.5,
		RepathInterval: 30,
		Size:           24,
	}

	Transition = TransitionConfig{
		FadeRate:     2.0,
		OverlayColor: Black,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 30, B: 25, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            70,
		MenuStartY:        120,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	GameOver = MenuConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Pause = MenuConfig{
		BackgroundColor:   BlackOverlay,
		TitleColor:        White,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            110,
		MenuStartY:        140,
		MenuItemHeight:    24,
		MenuItemGap:       10,
	}

	Board = BoardConfig{
		Air:          color.RGBA{R: 34, G: 52, B: 38, A: 255},
		Tree:         color.RGBA{R: 20, G: 90, B: 35, A: 255},
		FireInactive: color.RGBA{R: 90, G: 60, B: 40, A: 255},
		FireActive:   color.RGBA{R: 255, G: 120, B: 20, A: 255},
		Swamp:        color.RGBA{R: 60, G: 70, B: 40, A: 255},
		Exit:         color.RGBA{R: 200, G: 200, B: 120, A: 255},
		Spirit:       color.RGBA{R: 180, G: 230, B: 255, A: 230},
		Selected:     color.RGBA{R: 255, G: 255, B: 160, A: 255},
		Enemy:        color.RGBA{R: 120, G: 20, B: 60, A: 255},
		OrderLine:    color.RGBA{R: 255, G: 255, B: 160, A: 200},
		GridLine:     color.RGBA{R: 0, G: 0, B: 0, A: 40},
	}

	HUD = HUDConfig{
		Margin:    6,
		TextColor: White,
		BgColor:   BlackOverlay,
	}

	Message = MessageConfig{
		DisplayDuration: 120,
		BoxPadding:      6,
		BottomMargin:    10,
		BoxColor:        BlackOverlay,
		TextColor:       White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:   false,
		StartLevel: 1,
	}
}
