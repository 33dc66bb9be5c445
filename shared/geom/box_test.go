package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBox(t *testing.T) {
	b, err := NewBox(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, Box{X: 1, Y: 2, W: 3, H: 4}, b)

	_, err = NewBox(0, 0, -1, 4)
	assert.ErrorIs(t, err, ErrNegativeSize)
	_, err = NewBox(0, 0, 1, math.NaN())
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestOverlapsIsStrict(t *testing.T) {
	tile := Box{X: 100, Y: 100, W: 36, H: 36}

	cases := []struct {
		name string
		box  Box
		want bool
	}{
		{"inside", Box{X: 110, Y: 110, W: 5, H: 5}, true},
		{"crossing_top", Box{X: 100, Y: 90, W: 20, H: 20}, true},
		{"touching_top", Box{X: 100, Y: 80, W: 20, H: 20}, false},
		{"touching_left", Box{X: 80, Y: 100, W: 20, H: 20}, false},
		{"corner_only", Box{X: 136, Y: 136, W: 5, H: 5}, false},
		{"apart", Box{X: 0, Y: 0, W: 5, H: 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Overlaps(c.box, tile))
			assert.Equal(t, c.want, tile.Overlaps(c.box), "overlap is symmetric")
		})
	}
}

func TestEdgesAndMoves(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 30, H: 40}
	assert.Equal(t, 40.0, b.Right())
	assert.Equal(t, 60.0, b.Bottom())

	assert.Equal(t, 100.0, b.WithBottom(100).Bottom())
	assert.Equal(t, 5.0, b.WithTop(5).Top())
	assert.Equal(t, 7.0, b.WithLeft(7).Left())
	assert.Equal(t, 70.0, b.WithRight(70).Right())
	assert.Equal(t, Box{X: 11, Y: 18, W: 30, H: 40}, b.Translate(1, -2))
}

func TestRounded(t *testing.T) {
	assert.Equal(t, Box{X: 3, Y: -2, W: 1.5, H: 2}, Box{X: 2.5, Y: -1.6, W: 1.5, H: 2}.Rounded())
}

func TestUnionAndContains(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	b := Box{X: 5, Y: -5, W: 10, H: 5}
	u := a.Union(b)
	assert.Equal(t, Box{X: 0, Y: -5, W: 15, H: 15}, u)
	assert.True(t, u.Contains(a))
	assert.True(t, u.Contains(b))
	assert.False(t, a.Contains(b))
	assert.True(t, a.Contains(a), "shared edges count as inside")
}

func TestIntersection(t *testing.T) {
	query := Box{X: 0, Y: 0, W: 20, H: 20}

	_, ok := Intersection(query, []Box{{X: 20, Y: 0, W: 5, H: 5}})
	assert.False(t, ok, "touching boxes do not block")

	r, ok := Intersection(query, []Box{{X: 10, Y: -5, W: 20, H: 10}})
	require.True(t, ok)
	assert.Equal(t, Box{X: 10, Y: 0, W: 10, H: 5}, r)

	r, ok = Intersection(query, []Box{
		{X: -5, Y: 15, W: 10, H: 10},
		{X: 15, Y: 15, W: 10, H: 10},
	})
	require.True(t, ok)
	assert.Equal(t, Box{X: 15, Y: 15, W: 0, H: 5}, r, "disjoint hits collapse rather than go negative")
}

func TestVector(t *testing.T) {
	v := Vector{X: 1, Y: 2}.Add(Vector{X: 3, Y: -4}).Scale(2)
	assert.Equal(t, Vector{X: 8, Y: -4}, v)
}
