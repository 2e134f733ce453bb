package leveldata

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// TileLayerName is the TMX layer holding the tile codes.
const TileLayerName = "tiles"

// LoadTMX reads a Tiled map and converts its tile layer into a Grid. A tile's
// code comes from its "code" property; tiles without one use their tileset
// local ID. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TileLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		if len(levelMap.Layers) == 0 {
			return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrEmptyGrid)
		}
		layer = levelMap.Layers[0]
	}

	grid := make(Grid, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		grid[y] = make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			code := int(tile.ID)
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tilesetTile != nil {
				if v := tilesetTile.Properties.GetString("code"); v != "" {
					n, err := strconv.Atoi(v)
					if err != nil {
						return nil, fmt.Errorf("load TMX %s: tile (%d,%d) code %q: %w", tmxPath, x, y, v, err)
					}
					code = n
				}
			}
			grid[y][x] = code
		}
	}

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return grid, nil
}
