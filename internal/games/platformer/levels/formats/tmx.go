package formats

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// TMX conventions:
//   - the tile layer named "tiles" (or the first tile layer) holds the map;
//   - a tileset tile's "kind" property names its tile kind, tiles without
//     one are walls;
//   - objects in the "objects" group with a "kind" property place single
//     tiles (start, coin, end...) at their position.
const (
	tmxTileLayer   = "tiles"
	tmxObjectGroup = "objects"
	tmxKindProp    = "kind"
)

// ParseTMX loads a Tiled map from fsys.
func ParseTMX(fsys fs.FS, name string) (*core.Grid, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 || len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("TMX %s: %w", name, core.ErrEmptyLevel)
	}

	layer := levelMap.Layers[0]
	for _, l := range levelMap.Layers {
		if l.Name == tmxTileLayer {
			layer = l
			break
		}
	}

	g := core.NewGrid(levelMap.Width, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) {
				continue
			}
			tile := layer.Tiles[i]
			if tile.IsNil() {
				continue
			}
			kind := core.KindWall
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if k, ok := ParseKind(tilesetTile.Properties.GetString(tmxKindProp)); ok {
					kind = k
				}
			}
			g.SetKind(x, y, kind)
		}
	}

	tw, th := float64(levelMap.TileWidth), float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxObjectGroup {
			continue
		}
		for _, o := range og.Objects {
			k, ok := ParseKind(o.Properties.GetString(tmxKindProp))
			if !ok || tw <= 0 || th <= 0 {
				continue
			}
			g.SetKind(int(o.X/tw), int(o.Y/th), k)
		}
	}
	return g, nil
}

// ParseKind maps a kind name as written by Kind.String back to a Kind.
func ParseKind(name string) (core.Kind, bool) {
	for k := core.Kind(0); k < core.KindCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return core.KindEmpty, false
}
