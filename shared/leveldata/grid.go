package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// GridOptions controls how a character grid is turned into tiles.
type GridOptions struct {
	TileSize float64
	// Solid maps a cell tag to the tile kind it produces. Tags not in the
	// map (including space) are empty cells.
	Solid map[rune]string
	// Spawn marks a player spawn cell. Zero disables spawn markers.
	Spawn rune
}

// DefaultGridOptions matches the dirt-only levels: 'D' is dirt, 'P' is the
// player spawn.
func DefaultGridOptions(tileSize float64) GridOptions {
	return GridOptions{
		TileSize: tileSize,
		Solid:    map[rune]string{'D': "dirt", 'S': "stone"},
		Spawn:    'P',
	}
}

// ParseGrid converts row-major rows of cell tags into collision data. Each
// recognised cell becomes a tile at ((col-1)*size, (row-1)*size).
func ParseGrid(rows []string, opts GridOptions) (*CollisionData, error) {
	if opts.TileSize <= 0 {
		return nil, ErrInvalidTileSize
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	size := opts.TileSize
	data := &CollisionData{
		TileSize: size,
		OriginX:  -size,
		OriginY:  -size,
	}

	cols := 0
	for row, line := range rows {
		col := 0
		for _, cell := range line {
			x := float64(col-1) * size
			y := float64(row-1) * size

			if kind, ok := opts.Solid[cell]; ok {
				data.SolidRects = append(data.SolidRects, SolidRect{
					X:    x,
					Y:    y,
					W:    size,
					H:    size,
					Kind: kind,
				})
			} else if opts.Spawn != 0 && cell == opts.Spawn {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     x,
					Y:     y,
					Index: len(data.SpawnPoints),
				})
			}
			col++
		}
		if col > cols {
			cols = col
		}
	}

	data.MapWidth = float64(cols) * size
	data.MapHeight = float64(len(rows)) * size
	return data, nil
}

// maxRowBytes caps a single grid row.
const maxRowBytes = 1 << 20

// ReadGrid parses a grid from r, one row per line. Trailing carriage
// returns are dropped so files saved on Windows load the same. A row longer
// than maxRowBytes fails with bufio.ErrTooLong.
func ReadGrid(r io.Reader, opts GridOptions) (*CollisionData, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return ParseGrid(rows, opts)
}

// LoadGrid reads a grid level file from fsys.
func LoadGrid(fsys fs.FS, path string, opts GridOptions) (*CollisionData, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid %s: %w", path, err)
	}
	defer f.Close()

	data, err := ReadGrid(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse grid %s: %w", path, err)
	}
	return data, nil
}
