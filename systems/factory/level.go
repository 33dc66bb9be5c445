package factory

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/assets"
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/tileset"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevelFile = errors.New("level was not loaded from disk")

// LoadLevels reads every level in dir and builds the tile set for name. An
// unknown name falls back to the first level in sorted order. When dir does
// not exist the built-in levels are used and Path is left empty.
func LoadLevels(dir, name string) (*components.LevelData, error) {
	fsys, sub := levelFS(dir)
	onDisk := true
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: level directory %s not found, using built-in levels", dir)
		fsys, sub = assets.Levels(), assets.LevelDir
		onDisk = false
	}

	levels, names, err := leveldata.LoadAllLevels(fsys, sub, cfg.Level.GridOptions())
	if err != nil {
		return nil, err
	}

	index := indexOf(names, name)
	if index < 0 {
		log.Printf("Warning: level %q not found in %s, using %q", name, dir, names[0])
		index = 0
	}

	data := levels[names[index]]
	tiles, err := tileset.FromCollisionData(data)
	if err != nil {
		return nil, fmt.Errorf("build tiles for %s: %w", names[index], err)
	}

	level := &components.LevelData{
		Name:  names[index],
		Data:  data,
		Tiles: tiles,
		Names: names,
		Index: index,
	}
	if onDisk {
		level.Path = filepath.Join(filepath.Dir(dir), filepath.FromSlash(data.Source))
	}
	return level, nil
}

// ReloadLevel re-reads the current level file and replaces its tiles. On
// error the level is left as it was.
func ReloadLevel(level *components.LevelData) error {
	if level.Path == "" {
		return ErrNoLevelFile
	}
	fsys, p := levelFS(level.Path)
	data, err := leveldata.Load(fsys, p, cfg.Level.GridOptions())
	if err != nil {
		return fmt.Errorf("reload %s: %w", level.Path, err)
	}
	tiles, err := tileset.FromCollisionData(data)
	if err != nil {
		return fmt.Errorf("reload %s: %w", level.Path, err)
	}
	level.Data = data
	level.Tiles = tiles
	return nil
}

func CreateLevel(ecs *ecs.ECS, dir, name string) (*donburi.Entry, error) {
	data, err := LoadLevels(dir, name)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, data)
	log.Printf("Loaded level %q: %d tiles", data.Name, data.Tiles.Len())
	return level, nil
}

// levelFS splits p into a filesystem rooted at p's parent directory and
// the name of p inside it.
func levelFS(p string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(p)), filepath.Base(p)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
