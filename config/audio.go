package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundChop
	SoundLight
	SoundDeath
	SoundTeleport
	SoundEscape
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Tone describes a synthesized sound effect
type Tone struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Slide     float64 // Hz per second, negative falls
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Tones      map[SoundID]Tone
	Ambient    []Tone // mixed into the looping music track
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Tones: map[SoundID]Tone{
			SoundChop:         {Frequency: 180, Duration: 0.12, Slide: -400},
			SoundLight:        {Frequency: 520, Duration: 0.25, Slide: 600},
			SoundDeath:        {Frequency: 300, Duration: 0.3, Slide: -700},
			SoundTeleport:     {Frequency: 700, Duration: 0.15, Slide: -1200},
			SoundEscape:       {Frequency: 660, Duration: 0.2, Slide: 900},
			SoundMenuNavigate: {Frequency: 440, Duration: 0.04},
			SoundMenuSelect:   {Frequency: 880, Duration: 0.06},
		},
		Ambient: []Tone{
			{Frequency: 110, Duration: 4},
			{Frequency: 164.81, Duration: 4},
			{Frequency: 220, Duration: 4, Slide: 2},
		},
	}
}
