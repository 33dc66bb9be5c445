package kinematics

import (
	"testing"

	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/tileset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridLevel builds a real tile set from grid rows. Cell (col, row) sits at
// ((col-1)*size, (row-1)*size).
func gridLevel(t *testing.T, size float64, rows ...string) *tileset.Set {
	t.Helper()
	data, err := leveldata.ParseGrid(rows, leveldata.DefaultGridOptions(size))
	require.NoError(t, err)
	set, err := tileset.FromCollisionData(data)
	require.NoError(t, err)
	return set
}

func TestGridLandsOnTile(t *testing.T) {
	level := gridLevel(t, 36,
		"      ",
		"      ",
		"      ",
		"   D  ",
	)
	// The tile occupies (72,72)-(108,108).
	b := newBody(t, level, 72, 32, 20, 20)
	b.Velocity = geom.Vector{X: 0, Y: 50}

	res, err := Step(b, level, Intent{}, 1.0)
	require.NoError(t, err)

	assert.Equal(t, CollisionResult{Bottom: true}, res)
	assert.Equal(t, geom.Vector{X: 72, Y: 52}, b.Position)
	assert.Zero(t, b.Velocity.Y)
	assert.Equal(t, Grounded, b.State())
}

func TestGridHitsCeiling(t *testing.T) {
	level := gridLevel(t, 36,
		"      ",
		"   D  ",
		"      ",
		"      ",
	)
	// The tile occupies (72,0)-(108,36).
	b := newBody(t, level, 80, 60, 20, 20)
	b.Velocity = geom.Vector{X: 0, Y: -50}

	res, err := Step(b, level, Intent{}, 1.0)
	require.NoError(t, err)

	assert.Equal(t, CollisionResult{Top: true}, res)
	assert.Equal(t, 36.0, b.Position.Y)
	assert.Equal(t, Airborne, b.State())
}

func TestGridNeverTunnelsThroughFloor(t *testing.T) {
	level := gridLevel(t, 36,
		"    ",
		"    ",
		"    ",
		"    ",
		"    ",
		"DDDD",
	)
	// A single row of floor at y=144.
	for _, dt := range []float64{1.0 / 120, frame, 1.0 / 30, 0.25, 1} {
		for _, vy := range []float64{0, 500, 3000} {
			p := testParams()
			p.MaxFallSpeed = 3000
			b, err := NewBody(level, 8, -20, 20, 20, p)
			require.NoError(t, err)
			b.Velocity.Y = vy

			for i := 0; i < 500 && !b.Grounded; i++ {
				_, err := Step(b, level, Intent{}, dt)
				require.NoError(t, err)
				require.LessOrEqual(t, b.Box().Bottom(), 144.0, "dt=%v vy=%v step=%d", dt, vy, i)
			}
			assert.True(t, b.Grounded, "dt=%v vy=%v", dt, vy)
			assert.Equal(t, 144.0, b.Box().Bottom(), "dt=%v vy=%v", dt, vy)
		}
	}
}

func TestGridRestingBodyStaysGrounded(t *testing.T) {
	level := gridLevel(t, 36,
		"     ",
		"     ",
		"DDDDD",
	)
	// Floor top is y=36, on a cell boundary; x=30 straddles two tiles.
	for _, tol := range []float64{0.25, 0.5, 1, 2} {
		for _, x := range []float64{-30, 10, 30} {
			p := testParams()
			p.ContactTolerance = tol
			b, err := NewBody(level, x, 16, 20, 20, p)
			require.NoError(t, err)

			for i := 0; i < 120; i++ {
				res, err := Step(b, level, Intent{}, frame)
				require.NoError(t, err)
				require.True(t, res.Bottom, "tol=%v x=%v step=%d", tol, x, i)
				require.False(t, res.Embedded, "tol=%v x=%v step=%d", tol, x, i)
				require.Equal(t, 16.0, b.Position.Y, "tol=%v x=%v step=%d", tol, x, i)
				require.Equal(t, Grounded, b.State(), "tol=%v x=%v step=%d", tol, x, i)
			}
			assert.False(t, b.DoubleJumpAvailable, "tol=%v x=%v", tol, x)
		}
	}
}

func TestGridFractionalBodySize(t *testing.T) {
	level := gridLevel(t, 36,
		"     D",
		"     D",
		"DDDDDD",
	)
	// Floor top at y=36, wall face at x=144.

	t.Run("lands_and_rests", func(t *testing.T) {
		p := testParams()
		p.ContactTolerance = 0.5
		b, err := NewBody(level, 10, -30, 20.5, 30.5, p)
		require.NoError(t, err)

		for i := 0; i < 300 && !b.Grounded; i++ {
			_, err := Step(b, level, Intent{}, frame)
			require.NoError(t, err)
		}
		require.True(t, b.Grounded)
		assert.Equal(t, 5.5, b.Position.Y)

		for i := 0; i < 120; i++ {
			res, err := Step(b, level, Intent{}, frame)
			require.NoError(t, err)
			require.Equal(t, CollisionResult{Bottom: true}, res, "step %d", i)
			require.Equal(t, 5.5, b.Position.Y, "step %d", i)
		}
	})

	t.Run("pushes_against_wall", func(t *testing.T) {
		b, err := NewBody(level, 100, 5.5, 20.5, 30.5, testParams())
		require.NoError(t, err)

		var hits int
		for i := 0; i < 60; i++ {
			res, err := Step(b, level, Intent{MoveRight: true}, frame)
			require.NoError(t, err)
			require.True(t, res.Bottom, "step %d", i)
			require.False(t, res.Embedded, "step %d", i)
			if res.Right {
				hits++
				require.Equal(t, 123.5, b.Position.X, "step %d", i)
			}
		}
		assert.Positive(t, hits)
		assert.Equal(t, 123.5, b.Position.X)
		assert.Equal(t, 5.5, b.Position.Y)
	})
}

func TestGridWalkingOffLedge(t *testing.T) {
	level := gridLevel(t, 36,
		"     ",
		"     ",
		"DD   ",
	)
	// Floor covers x=-36..36 at y=36.
	p := testParams()
	p.ContactTolerance = 0.5
	b, err := NewBody(level, 0, 16, 20, 20, p)
	require.NoError(t, err)
	_, err = Step(b, level, Intent{}, frame)
	require.NoError(t, err)
	require.True(t, b.Grounded)

	for i := 0; i < 60 && b.Grounded; i++ {
		_, err := Step(b, level, Intent{MoveRight: true}, frame)
		require.NoError(t, err)
	}
	assert.False(t, b.Grounded)
	assert.True(t, b.DoubleJumpAvailable)
	assert.GreaterOrEqual(t, b.Box().Left(), 36.0)
}
