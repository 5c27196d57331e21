package systems

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalMusicVolume  float64 = 1
	globalSFXVolume    float64 = 1
	globalMusicPlayer  *audio.Player
	sfxCache           = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio plays the sound effects queued during this tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	pcm, ok := sfxCache[soundID]
	if !ok {
		tone, known := cfg.Audio.Tones[soundID]
		if !known {
			return
		}
		pcm = SynthesizeTone(tone, cfg.Audio.SampleRate)
		sfxCache[soundID] = pcm
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// SynthesizeTone renders a sliding sine tone as 16-bit little-endian stereo
// PCM with a linear fade out.
func SynthesizeTone(tone cfg.Tone, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := tone.Frequency + tone.Slide*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		envelope := 1 - float64(i)/float64(n)
		v := int16(math.Sin(phase) * envelope * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// PlayMusic starts the looping ambient track if it is not already playing
func PlayMusic() {
	initGlobalAudio()
	if globalMusicPlayer != nil {
		return
	}

	var pcm []byte
	for _, tone := range cfg.Audio.Ambient {
		pcm = mixPCM(pcm, SynthesizeTone(tone, cfg.Audio.SampleRate))
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("Warning: Could not start music: %v", err)
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
}

// PauseMusic pauses the music without losing its position
func PauseMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic continues paused music
func ResumeMusic() {
	if globalMusicPlayer != nil && !globalMusicPlayer.IsPlaying() {
		globalMusicPlayer.Play()
	}
}

// mixPCM sums two 16-bit sample streams, clamping on overflow.
func mixPCM(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a))
	copy(out, a)
	for i := 0; i+1 < len(b); i += 2 {
		sum := int32(int16(binary.LittleEndian.Uint16(out[i:]))) + int32(int16(binary.LittleEndian.Uint16(b[i:])))
		sum = max(math.MinInt16, min(math.MaxInt16, sum))
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(sum)))
	}
	return out
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
