package settings

import (
	"slices"

	cfg "github.com/automoto/spiritfire/config"
)

// NextLanguage returns the language after lang in the supported list,
// wrapping around. An unknown lang yields the first language.
func NextLanguage(lang string) string {
	langs := cfg.SettingsMenu.Languages
	i := slices.Index(langs, lang)
	return langs[(i+1)%len(langs)]
}

// StepVolume moves a volume percentage to the neighbouring step in dir
// (+1 or -1). Values between steps snap to the next step in that direction.
func StepVolume(v, dir int) int {
	steps := cfg.SettingsMenu.VolumeSteps
	if dir > 0 {
		for _, s := range steps {
			if s > v {
				return s
			}
		}
		return steps[len(steps)-1]
	}
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < v {
			return steps[i]
		}
	}
	return steps[0]
}

// CyclePixelScale returns the next pixel scale, wrapping from the largest
// back to the smallest.
func CyclePixelScale(scale int) int {
	lo, hi := cfg.SettingsMenu.PixelScaleMin, cfg.SettingsMenu.PixelScaleMax
	if scale < lo || scale >= hi {
		return lo
	}
	return scale + 1
}
