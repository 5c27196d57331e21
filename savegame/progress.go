package savegame

import (
	"encoding/json"
	"fmt"
	"log"
)

const progressKey = "progress"

// Progress is how far the player has got through the level list.
type Progress struct {
	Unlocked int `json:"unlocked"` // highest level that may be started
}

// LoadProgress returns the stored progress. Level 1 is always unlocked.
func LoadProgress(store Store) Progress {
	p := Progress{Unlocked: 1}
	data, err := store.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return p
	}
	if len(data) == 0 {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return Progress{Unlocked: 1}
	}
	p.Unlocked = max(1, p.Unlocked)
	return p
}

// Unlock raises the unlocked level to n. It never lowers it.
func Unlock(store Store, n int) error {
	p := LoadProgress(store)
	if n <= p.Unlocked {
		return nil
	}
	p.Unlocked = n
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("savegame: encode progress: %w", err)
	}
	if err := store.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("savegame: save progress: %w", err)
	}
	return nil
}
