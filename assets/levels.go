package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"sync"

	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/dialogue"
	"github.com/automoto/spiritfire/level"
)

var (
	//go:embed levels
	levelFS embed.FS

	//go:embed dialogue/script.txt
	scriptData []byte
)

var (
	levels     = NewCache[*level.Level]("level", nil)
	levelsOnce sync.Once
	levelCount int

	script     *dialogue.Script
	scriptOnce sync.Once
)

// LevelFS exposes the embedded level directory.
func LevelFS() fs.FS {
	return levelFS
}

// LevelCount is the number of consecutive levels shipped with the game.
func LevelCount() int {
	loadLevels()
	return levelCount
}

// MustLoadLevel returns a fresh, playable copy of level n. Levels are parsed
// once; broken level content panics.
func MustLoadLevel(n int) *level.Level {
	loadLevels()
	pristine := levels.MustGet(strconv.Itoa(n))
	return &level.Level{
		Number: pristine.Number,
		Grid:   pristine.Grid.Clone(),
		Meta:   pristine.Meta,
	}
}

func loadLevels() {
	levelsOnce.Do(func() {
		levelCount = level.Count(levelFS, cfg.C.LevelDir)
		if levelCount == 0 {
			panic("no levels found in " + cfg.C.LevelDir)
		}
		for n := 1; n <= levelCount; n++ {
			lvl, err := level.LoadLevel(levelFS, cfg.C.LevelDir, n, cfg.C.GridWidth, cfg.C.GridHeight)
			if err != nil {
				panic(fmt.Sprintf("Failed to load level: %v", err))
			}
			levels.Put(strconv.Itoa(n), lvl)
		}
	})
}

// MustLoadScript returns the parsed dialogue script.
func MustLoadScript() *dialogue.Script {
	scriptOnce.Do(func() {
		s, err := dialogue.Parse(bytes.NewReader(scriptData))
		if err != nil {
			panic(fmt.Sprintf("Failed to parse dialogue: %v", err))
		}
		script = s
	})
	return script
}
