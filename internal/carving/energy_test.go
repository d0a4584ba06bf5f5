package carving

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/seam-carver-mcp/internal/picture"
)

func TestEnergy_BorderSentinel(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 4}, {6, 6},
	}
	for _, s := range sizes {
		c, err := New(randomPicture(t, int64(s.w*31+s.h), s.w, s.h))
		require.NoError(t, err)
		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				if x != 0 && y != 0 && x != s.w-1 && y != s.h-1 {
					continue
				}
				e, err := c.Energy(x, y)
				require.NoError(t, err)
				assert.Equal(t, BorderEnergy, e, "%dx%d border pixel (%d,%d)", s.w, s.h, x, y)
			}
		}
	}
}

func TestEnergy_Interior(t *testing.T) {
	c, err := New(gradientPicture(t))
	require.NoError(t, err)

	e, err := c.Energy(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(52225), e, 1e-9)

	e, err = c.Energy(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(52024), e, 1e-9)
}

func TestEnergy_UsesOnlyOrthogonalNeighbours(t *testing.T) {
	white := picture.RGB(255, 255, 255)
	p := newPicture(t, [][]picture.Color{
		{white, picture.RGB(1, 1, 1), white},
		{picture.RGB(0, 0, 0), picture.RGB(77, 77, 77), picture.RGB(10, 20, 30)},
		{white, picture.RGB(5, 5, 5), white},
	})
	c, err := New(p)
	require.NoError(t, err)

	e, err := c.Energy(1, 1)
	require.NoError(t, err)
	// Δx² = 10²+20²+30², Δy² = 4²+4²+4²; corners and the centre are ignored.
	assert.InDelta(t, math.Sqrt(1400+48), e, 1e-9)
}

func TestEnergy_InteriorMatchesFormula(t *testing.T) {
	p := randomPicture(t, 42, 6, 5)
	c, err := New(p)
	require.NoError(t, err)

	for y := 1; y < 4; y++ {
		for x := 1; x < 5; x++ {
			want := math.Sqrt(float64(
				squaredDistance(p.RGB(x+1, y), p.RGB(x-1, y)) +
					squaredDistance(p.RGB(x, y+1), p.RGB(x, y-1))))
			got, err := c.Energy(x, y)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9, "pixel (%d,%d)", x, y)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, BorderEnergy)
		}
	}
}

func TestEnergy_OutOfRange(t *testing.T) {
	c, err := New(solidPicture(t, 3, 2, 0))
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x == width", 3, 0},
		{"y == height", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Energy(tt.x, tt.y)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSquaredDistance(t *testing.T) {
	assert.Equal(t, 0, squaredDistance(picture.RGB(9, 9, 9), picture.RGB(9, 9, 9)))
	assert.Equal(t, 3*255*255, squaredDistance(picture.RGB(0, 0, 0), picture.RGB(255, 255, 255)))
	assert.Equal(t, 1+4+9, squaredDistance(picture.RGB(1, 2, 3), picture.RGB(0, 0, 0)))
}

func TestEnergyGrid_IsCopy(t *testing.T) {
	c, err := New(gradientPicture(t))
	require.NoError(t, err)

	grid := c.EnergyGrid()
	require.Len(t, grid, 12)
	assert.InDelta(t, math.Sqrt(52225), grid[1*3+1], 1e-9)

	grid[0] = -1
	e, err := c.Energy(0, 0)
	require.NoError(t, err)
	assert.Equal(t, BorderEnergy, e)
}
