package level

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TMXLayer is the tile layer read from Tiled maps.
const TMXLayer = "tiles"

// LoadTMX builds a grid from a Tiled map. Each tileset tile carries a
// "glyph" property holding its level text character; empty cells are Air.
func LoadTMX(fsys fs.FS, tmxPath string, width, height int) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width != width || levelMap.Height != height {
		return nil, loadErrorf(tmxPath, "map is %dx%d, want %dx%d", levelMap.Width, levelMap.Height, width, height)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TMXLayer {
			continue
		}
		g := NewGrid(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				tile := layer.Tiles[y*width+x]
				if tile.IsNil() {
					continue
				}
				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					return nil, loadErrorf(tmxPath, "tile %d at (%d,%d): %v", tile.ID, x, y, err)
				}
				glyph := tilesetTile.Properties.GetString("glyph")
				if len(glyph) != 1 {
					return nil, loadErrorf(tmxPath, "tile %d at (%d,%d) has glyph %q", tile.ID, x, y, glyph)
				}
				t, ok := TileFromGlyph(glyph[0])
				if !ok {
					return nil, loadErrorf(tmxPath, "unknown tile %q at (%d,%d)", glyph, x, y)
				}
				g.Set(x, y, t)
			}
		}
		return g, nil
	}
	return nil, loadErrorf(tmxPath, "no %q layer", TMXLayer)
}
