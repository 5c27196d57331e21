package savegame

import (
	"errors"
	"strings"
	"testing"

	"github.com/automoto/spiritfire/level"
)

const testGrid = "" +
	"................\n" +
	".....1..........\n" +
	"................\n" +
	"................\n" +
	"...#...........>\n" +
	"................\n" +
	"................\n" +
	"..s.........s...\n" +
	"................\n"

type memStore struct {
	items  map[string][]byte
	writes []string
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.writes = append(m.writes, key)
	m.items[key] = data
	return nil
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func validSnapshot() Snapshot {
	return Snapshot{
		Level: 2,
		Grid:  testGrid,
		Metadata: level.Metadata{
			Survive: 1,
			Spirits: []level.SpawnGroup{{Position: level.Coord{X: 0, Y: 4}, Amount: 3, Direction: level.Coord{X: 1, Y: 0}}},
			Swamps: []level.SwampLink{
				{Swamp: level.Coord{X: 2, Y: 7}, Teleport: level.Coord{X: 12, Y: 6}},
				{Swamp: level.Coord{X: 12, Y: 7}, Teleport: level.Coord{X: 2, Y: 6}},
			},
			Fires: []level.FireState{{Position: level.Coord{X: 5, Y: 1}, Active: true}},
		},
		Spirits: []SpiritRecord{
			{ID: 0, X: 60, Y: 180, Direction: level.Coord{X: 1, Y: 0}, State: "patrol"},
			{ID: 2, X: 100, Y: 180, Direction: level.Coord{X: 1, Y: 0}, State: "chop_tree", Target: level.Coord{X: 3, Y: 4}},
		},
		Enemies: []EnemyRecord{{X: 500, Y: 300}},
		Wood:    1,
		Escaped: 1,
		NextID:  3,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newMemStore()
	if err := Save(store, DefaultSlot, validSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	r, err := Load(store, DefaultSlot, 16, 9)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Level.Number != 2 || r.Snapshot.Wood != 1 || r.Snapshot.Escaped != 1 || len(r.Snapshot.Spirits) != 2 {
		t.Fatalf("unexpected restore %+v", r.Snapshot)
	}
	if got := r.Level.Grid.Serialize(); got != testGrid {
		t.Fatalf("grid changed:\n%s", got)
	}
	fire, ok := r.Level.Grid.Get(5, 1).(level.Fire)
	if !ok || !fire.Active {
		t.Fatalf("fire state lost: %#v", r.Level.Grid.Get(5, 1))
	}
	swamp := r.Level.Grid.Get(2, 7).(level.Swamp)
	if swamp.Target == nil || *swamp.Target != (level.Coord{X: 12, Y: 6}) {
		t.Fatalf("swamp link lost: %#v", swamp)
	}
}

func TestSave_ClearsSlotFirst(t *testing.T) {
	store := newMemStore()
	if err := Save(store, "a", validSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(store.writes) != 2 || store.writes[0] != store.writes[1] {
		t.Fatalf("expected clear then write on one key, got %v", store.writes)
	}
}

func TestLoad_EmptySlot(t *testing.T) {
	store := newMemStore()
	if _, err := Load(store, DefaultSlot, 16, 9); !errors.Is(err, ErrNoSave) {
		t.Fatalf("expected ErrNoSave, got %v", err)
	}
	if Exists(store, DefaultSlot) {
		t.Fatal("Exists on empty slot")
	}
}

func TestClear(t *testing.T) {
	store := newMemStore()
	if err := Save(store, DefaultSlot, validSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(store, DefaultSlot) {
		t.Fatal("slot should exist after Save")
	}
	if err := Clear(store, DefaultSlot); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := Load(store, DefaultSlot, 16, 9); !errors.Is(err, ErrNoSave) {
		t.Fatalf("expected ErrNoSave after Clear, got %v", err)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	store := newMemStore()
	if err := Save(store, "one", validSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if Exists(store, "two") {
		t.Fatal("slot two should be empty")
	}
}

func TestLoad_Malformed(t *testing.T) {
	store := newMemStore()
	store.items[slotKey(DefaultSlot)] = []byte(`{"level": 1, "grid": `)
	_, err := Load(store, DefaultSlot, 16, 9)
	if err == nil || errors.Is(err, ErrNoSave) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestRestore_RejectsInconsistentRecords(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"short grid", func(s *Snapshot) { s.Grid = s.Grid[1:] }},
		{"fire on air", func(s *Snapshot) {
			s.Metadata.Fires = []level.FireState{{Position: level.Coord{X: 0, Y: 0}, Active: true}}
		}},
		{"link to non swamp", func(s *Snapshot) {
			s.Metadata.Swamps[0].Swamp = level.Coord{X: 3, Y: 4}
		}},
		{"unlinked swamp", func(s *Snapshot) { s.Metadata.Swamps = s.Metadata.Swamps[:1] }},
		{"spirit outside", func(s *Snapshot) { s.Spirits[0].X = 700 }},
		{"spirit negative", func(s *Snapshot) { s.Spirits[0].Y = -1 }},
		{"count mismatch", func(s *Snapshot) { s.SpiritCount = 5 }},
		{"too many spirits", func(s *Snapshot) { s.Escaped = 2 }},
		{"duplicate id", func(s *Snapshot) { s.Spirits[1].ID = 0 }},
		{"unknown state", func(s *Snapshot) { s.Spirits[0].State = "dance" }},
		{"bad direction", func(s *Snapshot) { s.Spirits[0].Direction = level.Coord{} }},
		{"target outside", func(s *Snapshot) { s.Spirits[1].Target = level.Coord{X: 20, Y: 0} }},
		{"enemy outside", func(s *Snapshot) { s.Enemies[0].X = -5 }},
		{"level zero", func(s *Snapshot) { s.Level = 0 }},
	}
	for _, c := range cases {
		snap := validSnapshot()
		snap.SpiritCount = len(snap.Spirits)
		snap.Metadata.Swamps = append([]level.SwampLink(nil), snap.Metadata.Swamps...)
		snap.Spirits = append([]SpiritRecord(nil), snap.Spirits...)
		snap.Enemies = append([]EnemyRecord(nil), snap.Enemies...)
		c.mutate(&snap)
		if _, err := Restore(snap, 16, 9); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestRestore_LinkageErrorIsTyped(t *testing.T) {
	snap := validSnapshot()
	snap.SpiritCount = len(snap.Spirits)
	snap.Metadata.Swamps = []level.SwampLink{
		{Swamp: level.Coord{X: 2, Y: 7}, Teleport: level.Coord{X: 12, Y: 6}},
		{Swamp: level.Coord{X: 0, Y: 0}, Teleport: level.Coord{X: 2, Y: 6}},
	}
	_, err := Restore(snap, 16, 9)
	var le *level.LinkageError
	if !errors.As(err, &le) {
		t.Fatalf("expected LinkageError, got %v", err)
	}
	if !strings.Contains(err.Error(), "(0,0)") {
		t.Fatalf("error should name the cell: %v", err)
	}
}

func TestProgress(t *testing.T) {
	store := newMemStore()
	if p := LoadProgress(store); p.Unlocked != 1 {
		t.Fatalf("fresh progress = %d, want 1", p.Unlocked)
	}
	if err := Unlock(store, 3); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := Unlock(store, 2); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if p := LoadProgress(store); p.Unlocked != 3 {
		t.Fatalf("progress = %d, want 3", p.Unlocked)
	}

	store.items[progressKey] = []byte("garbage")
	if p := LoadProgress(store); p.Unlocked != 1 {
		t.Fatalf("corrupt progress = %d, want 1", p.Unlocked)
	}
}
