// Package settings holds the player's preferences and their stored form.
package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	cfg "github.com/automoto/spiritfire/config"
)

// ItemKey is the store item settings live under.
const ItemKey = "settings"

// Settings is the persisted preferences record. Volumes are percentages.
type Settings struct {
	Language    string `json:"language"`
	MusicVolume int    `json:"musicVolume"`
	SoundVolume int    `json:"soundVolume"`
	PixelScale  int    `json:"pixelScale"`
	Shader      bool   `json:"shader"`
	Fullscreen  bool   `json:"fullscreen"`
}

// Store is the subset of a gdata manager settings need.
type Store interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// Default returns the settings used when nothing valid is stored.
func Default() Settings {
	return Settings{
		Language:    "ru",
		MusicVolume: 100,
		SoundVolume: 100,
		PixelScale:  2,
	}
}

// Normalize clamps numeric fields into range and replaces an unknown
// language with the default one.
func (s Settings) Normalize() Settings {
	s.MusicVolume = clamp(s.MusicVolume, 0, 100)
	s.SoundVolume = clamp(s.SoundVolume, 0, 100)
	s.PixelScale = clamp(s.PixelScale, cfg.SettingsMenu.PixelScaleMin, cfg.SettingsMenu.PixelScaleMax)
	if !slices.Contains(cfg.SettingsMenu.Languages, s.Language) {
		s.Language = Default().Language
	}
	return s
}

// Decode parses a stored record. Fields missing from the record keep their
// default values. Malformed data yields the defaults and an error.
func Decode(data []byte) (Settings, error) {
	s := Default()
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: decode: %w", err)
	}
	return s.Normalize(), nil
}

// Load reads settings from the store, falling back to defaults when the
// record is absent or unreadable.
func Load(store Store) Settings {
	data, err := store.LoadItem(ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return Default()
	}
	s, err := Decode(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
	}
	return s
}

// Save normalizes and writes s to the store.
func Save(store Store, s Settings) error {
	data, err := json.Marshal(s.Normalize())
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := store.SaveItem(ItemKey, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Volume converts a percentage to the 0..1 range the audio player uses.
func Volume(percent int) float64 {
	return float64(clamp(percent, 0, 100)) / 100
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
