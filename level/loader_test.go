package level

import (
	"errors"
	"testing"
	"testing/fstest"
)

const sampleMeta = `{
	"survive": 2,
	"spirits": [
		{"position": [0, 0], "amount": 2, "direction": [1, 0]},
		{"position": [5, 5], "amount": 1, "direction": [0, -1]}
	],
	"swamps": [
		{"swamp": [8, 2], "teleport": [8, 5]},
		{"swamp": [8, 5], "teleport": [8, 2]}
	],
	"enemies": [[12, 7]]
}`

func TestParseMetadata(t *testing.T) {
	m, err := ParseMetadata([]byte(sampleMeta))
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	if m.Survive != 2 || len(m.Spirits) != 2 || len(m.Swamps) != 2 || len(m.Enemies) != 1 {
		t.Fatalf("unexpected metadata %+v", m)
	}
	if m.Spirits[1].Direction != (Coord{0, -1}) {
		t.Fatalf("direction = %s, want (0,-1)", m.Spirits[1].Direction)
	}
	if m.TotalSpirits() != 3 {
		t.Fatalf("TotalSpirits = %d, want 3", m.TotalSpirits())
	}
}

func TestParseMetadata_Malformed(t *testing.T) {
	for _, raw := range []string{`{"survive": "x"}`, `{"spirits": [{"position": [1]}]}`, `not json`} {
		_, err := ParseMetadata([]byte(raw))
		var le *LoadError
		if !errors.As(err, &le) {
			t.Errorf("%s: expected LoadError, got %v", raw, err)
		}
	}
}

func TestMetadataValidate(t *testing.T) {
	g := NewGrid(16, 9)
	cases := []struct {
		name string
		meta Metadata
	}{
		{"spirit outside", Metadata{Spirits: []SpawnGroup{{Position: Coord{16, 0}, Amount: 1, Direction: Coord{1, 0}}}}},
		{"zero amount", Metadata{Spirits: []SpawnGroup{{Position: Coord{0, 0}, Amount: 0, Direction: Coord{1, 0}}}}},
		{"zero direction", Metadata{Spirits: []SpawnGroup{{Position: Coord{0, 0}, Amount: 1}}}},
		{"survive too high", Metadata{Survive: 2, Spirits: []SpawnGroup{{Position: Coord{0, 0}, Amount: 1, Direction: Coord{1, 0}}}}},
		{"enemy outside", Metadata{Enemies: []Coord{{0, 9}}}},
	}
	for _, c := range cases {
		if err := c.meta.Validate(g); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/1.txt":  {Data: []byte(sampleText)},
		"levels/1.json": {Data: []byte(sampleMeta)},
		"levels/2.json": {Data: []byte(sampleMeta)},
	}
	lvl, err := LoadLevel(fsys, "levels", 1, 16, 9)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if lvl.Number != 1 {
		t.Fatalf("Number = %d", lvl.Number)
	}
	if s := lvl.Grid.Get(8, 2).(Swamp); s.Target == nil || *s.Target != (Coord{8, 5}) {
		t.Fatalf("swamp not linked: %#v", s)
	}
	if n := Count(fsys, "levels"); n != 2 {
		t.Fatalf("Count = %d, want 2", n)
	}
}

func TestLoadLevel_BadLinkIsFatal(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/1.txt":  {Data: []byte(sampleText)},
		"levels/1.json": {Data: []byte(`{"survive":0,"spirits":[],"swamps":[{"swamp":[0,0],"teleport":[1,1]}]}`)},
	}
	_, err := LoadLevel(fsys, "levels", 1, 16, 9)
	var le *LinkageError
	if !errors.As(err, &le) {
		t.Fatalf("expected LinkageError, got %v", err)
	}
}

func TestLoadLevel_MissingFiles(t *testing.T) {
	fsys := fstest.MapFS{"levels/1.txt": {Data: []byte(sampleText)}}
	if _, err := LoadLevel(fsys, "levels", 1, 16, 9); err == nil {
		t.Fatal("expected error for missing metadata")
	}
	if _, err := LoadLevel(fsys, "levels", 3, 16, 9); err == nil {
		t.Fatal("expected error for missing level")
	}
}

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="1" tilewidth="40" tileheight="40" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="glyphs" tilewidth="40" tileheight="40" tilecount="2" columns="2">
  <tile id="0">
   <properties>
    <property name="glyph" value="#"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="glyph" value="3"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="tiles" width="3" height="1">
  <data encoding="csv">
1,0,2
</data>
 </layer>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/1.tmx": {Data: []byte(sampleTMX)}}
	g, err := LoadTMX(fsys, "levels/1.tmx", 3, 1)
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if got := g.Serialize(); got != "#.3\n" {
		t.Fatalf("grid = %q, want %q", got, "#.3\n")
	}
	if _, err := LoadTMX(fsys, "levels/1.tmx", 16, 9); err == nil {
		t.Fatal("expected size mismatch error")
	}
}
