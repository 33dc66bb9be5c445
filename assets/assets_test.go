package assets

import (
	"testing"

	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/tileset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLevelsLoad(t *testing.T) {
	levels, names, err := leveldata.LoadAllLevels(Levels(), LevelDir, leveldata.DefaultGridOptions(36))
	require.NoError(t, err)
	assert.Contains(t, names, "meadow")
	assert.Contains(t, names, "caverns")

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data := levels[name]
			require.NotEmpty(t, data.SpawnPoints, "every built-in level has a spawn")

			tiles, err := tileset.FromCollisionData(data)
			require.NoError(t, err)

			x, y := data.SpawnPosition(20, 30)
			_, blocked := tiles.BlockingRegion(geom.Box{X: x, Y: y, W: 20, H: 30})
			assert.False(t, blocked, "spawn box is clear of tiles")
		})
	}
}
