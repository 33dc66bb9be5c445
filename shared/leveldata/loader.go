package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// CollisionLayer is the TMX tile layer whose non-empty cells are solid.
const CollisionLayer = "collision"

// LoadCollisionData parses a TMX file and returns collision data (solid tiles
// and player spawn points). It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrInvalidTileSize)
	}

	data := &CollisionData{
		MapWidth:  float64(levelMap.Width * levelMap.TileWidth),
		MapHeight: float64(levelMap.Height * levelMap.TileHeight),
		TileSize:  float64(levelMap.TileWidth),
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				kind := "solid"
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if k := tilesetTile.Properties.GetString("kind"); k != "" {
						kind = k
					}
				}

				data.SolidRects = append(data.SolidRects, SolidRect{
					X:    float64(x) * tileW,
					Y:    float64(y) * tileH,
					W:    tileW,
					H:    tileH,
					Kind: kind,
				})
			}
		}
		break
	}

	// Parse player spawn points from PlayerSpawn object group
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// Load picks the parser from the file extension: .tmx goes through go-tiled,
// anything else is read as a character grid.
func Load(fsys fs.FS, p string, opts GridOptions) (*CollisionData, error) {
	var (
		data *CollisionData
		err  error
	)
	if strings.EqualFold(path.Ext(p), ".tmx") {
		data, err = LoadCollisionData(fsys, p)
	} else {
		data, err = LoadGrid(fsys, p, opts)
	}
	if err != nil {
		return nil, err
	}
	data.Source = p
	return data, nil
}

// LoadAllLevels discovers all .txt and .tmx files in levelsDir within fsys,
// loads collision data for each, and returns a map keyed by stem name plus a
// sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, opts GridOptions) (map[string]*CollisionData, []string, error) {
	var matches []string
	for _, pattern := range []string{levelsDir + "/*.txt", levelsDir + "/*.tmx"} {
		found, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := Load(fsys, p, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if _, dup := levels[stem]; dup {
			return nil, nil, fmt.Errorf("load %s: duplicate level name %q", p, stem)
		}
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
