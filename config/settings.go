package config

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	VolumeSteps   []int // percent
	PixelScaleMin int
	PixelScaleMax int
	Languages     []string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:   []int{0, 25, 50, 75, 100},
		PixelScaleMin: 1,
		PixelScaleMax: 3,
		Languages:     []string{"ru", "en"},
	}
}
