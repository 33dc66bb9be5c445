package leveldata

import (
	"bufio"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridPlacesTilesOffsetByOneTile(t *testing.T) {
	rows := []string{
		"    ",
		" P  ",
		"DDxD",
	}

	data, err := ParseGrid(rows, DefaultGridOptions(10))
	require.NoError(t, err)

	require.Len(t, data.SolidRects, 3)
	assert.Equal(t, SolidRect{X: -10, Y: 10, W: 10, H: 10, Kind: "dirt"}, data.SolidRects[0])
	assert.Equal(t, SolidRect{X: 0, Y: 10, W: 10, H: 10, Kind: "dirt"}, data.SolidRects[1])
	assert.Equal(t, SolidRect{X: 20, Y: 10, W: 10, H: 10, Kind: "dirt"}, data.SolidRects[2])

	require.Len(t, data.SpawnPoints, 1)
	assert.Equal(t, SpawnPoint{X: 0, Y: 0, Index: 0}, data.SpawnPoints[0])

	assert.Equal(t, 40.0, data.MapWidth)
	assert.Equal(t, 30.0, data.MapHeight)
	assert.Equal(t, -10.0, data.OriginX)
	assert.Equal(t, -10.0, data.OriginY)
}

func TestParseGridConfigurableTileSize(t *testing.T) {
	data, err := ParseGrid([]string{"  ", " D"}, DefaultGridOptions(36))
	require.NoError(t, err)
	require.Len(t, data.SolidRects, 1)
	assert.Equal(t, SolidRect{X: 0, Y: 0, W: 36, H: 36, Kind: "dirt"}, data.SolidRects[0])
}

func TestParseGridRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		size float64
		want error
	}{
		{"zero_tile_size", []string{"D"}, 0, ErrInvalidTileSize},
		{"negative_tile_size", []string{"D"}, -4, ErrInvalidTileSize},
		{"no_rows", nil, 10, ErrEmptyLevel},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseGrid(c.rows, DefaultGridOptions(c.size))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestReadGridDropsCarriageReturns(t *testing.T) {
	data, err := ReadGrid(strings.NewReader("  \r\n DD\r\n"), DefaultGridOptions(10))
	require.NoError(t, err)
	assert.Len(t, data.SolidRects, 2)
	assert.Equal(t, 30.0, data.MapWidth)
}

func TestReadGridAcceptsWideRows(t *testing.T) {
	wide := strings.Repeat(" ", 100_000) + "D"
	data, err := ReadGrid(strings.NewReader(wide+"\n"), DefaultGridOptions(10))
	require.NoError(t, err)
	require.Len(t, data.SolidRects, 1)
	assert.Equal(t, float64(len(wide))*10, data.MapWidth)

	tooWide := strings.Repeat(" ", maxRowBytes+1)
	_, err = ReadGrid(strings.NewReader(tooWide), DefaultGridOptions(10))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="terrain.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="collision" width="3" height="2">
  <data encoding="csv">
0,0,0,
1,1,0
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="8" y="4"/>
 </objectgroup>
</map>
`

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b_grid.txt": {Data: []byte("   \n DD\n")},
		"levels/a_map.tmx":  {Data: []byte(testTMX)},
		"levels/notes.md":   {Data: []byte("ignored")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels", DefaultGridOptions(10))
	require.NoError(t, err)
	assert.Equal(t, []string{"a_map", "b_grid"}, names)

	grid := levels["b_grid"]
	require.NotNil(t, grid)
	assert.Len(t, grid.SolidRects, 2)
	assert.Equal(t, "levels/b_grid.txt", grid.Source)

	tmx := levels["a_map"]
	require.NotNil(t, tmx)
	assert.Equal(t, 16.0, tmx.TileSize)
	assert.Equal(t, 48.0, tmx.MapWidth)
	require.Len(t, tmx.SolidRects, 2)
	assert.Equal(t, SolidRect{X: 0, Y: 16, W: 16, H: 16, Kind: "solid"}, tmx.SolidRects[0])
	require.Len(t, tmx.SpawnPoints, 1)
	assert.Equal(t, 8.0, tmx.SpawnPoints[0].X)
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	_, _, err := LoadAllLevels(fstest.MapFS{}, "levels", DefaultGridOptions(10))
	assert.Error(t, err)
}

func TestSpawnPosition(t *testing.T) {
	data, err := ParseGrid([]string{"    ", "  P ", "DDDD"}, DefaultGridOptions(36))
	require.NoError(t, err)

	x, y := data.SpawnPosition(20, 30)
	assert.Equal(t, 36.0+8, x)
	assert.Equal(t, 6.0, y)

	data.SpawnPoints = nil
	x, y = data.SpawnPosition(36, 36)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}
