package carving

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/seam-carver-mcp/internal/picture"
)

// bruteForceMin enumerates every connected seam in orientation o and returns
// the smallest total energy.
func bruteForceMin(t *testing.T, c *SeamCarver, o Orientation) float64 {
	t.Helper()
	lines, span := c.Height(), c.Width()
	if o == Horizontal {
		lines, span = span, lines
	}
	energyAt := func(line, pos int) float64 {
		x, y := pos, line
		if o == Horizontal {
			x, y = line, pos
		}
		e, err := c.Energy(x, y)
		require.NoError(t, err)
		return e
	}

	best := math.Inf(1)
	var walk func(line, pos int, acc float64)
	walk = func(line, pos int, acc float64) {
		acc += energyAt(line, pos)
		if line == lines-1 {
			if acc < best {
				best = acc
			}
			return
		}
		for next := pos - 1; next <= pos+1; next++ {
			if next >= 0 && next < span {
				walk(line+1, next, acc)
			}
		}
	}
	for pos := 0; pos < span; pos++ {
		walk(0, pos, 0)
	}
	return best
}

// assertValidSeam checks length, range and connectivity.
func assertValidSeam(t *testing.T, seam []int, length, span int) {
	t.Helper()
	require.Len(t, seam, length)
	for i, v := range seam {
		assert.GreaterOrEqual(t, v, 0, "seam[%d]", i)
		assert.Less(t, v, span, "seam[%d]", i)
		if i > 0 {
			assert.LessOrEqual(t, abs(v-seam[i-1]), 1, "seam[%d] jumps from %d to %d", i, seam[i-1], v)
		}
	}
}

func TestFindVerticalSeam_Gradient(t *testing.T) {
	c, err := New(gradientPicture(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 0}, c.FindVerticalSeam())
}

func TestFindHorizontalSeam_Gradient(t *testing.T) {
	c, err := New(gradientPicture(t))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, c.FindHorizontalSeam())
}

func TestFindSeam_BrightPixel(t *testing.T) {
	// 3x4 black picture with one white pixel at (1,2). The white pixel itself
	// has energy 0 (its neighbours are all black); (1,1) sees it from below.
	p := solidPicture(t, 3, 4, picture.RGB(0, 0, 0))
	p.SetRGB(1, 2, picture.RGB(255, 255, 255))
	c, err := New(p)
	require.NoError(t, err)

	bright := math.Sqrt(3 * 255 * 255)
	e, err := c.Energy(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, bright, e, 1e-9)
	e, err = c.Energy(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)

	// Hand-computed DP, rows of cumulative distance:
	//   y=0: 1000        1000        1000
	//   y=1: 2000        1000+b      2000
	//   y=2: 2000+b      1000+b      2000+b
	//   y=3: 2000+b      2000+b      2000+b
	vertical := c.FindVerticalSeam()
	assert.Equal(t, []int{0, 1, 1, 0}, vertical)
	total, err := c.SeamEnergy(vertical, Vertical)
	require.NoError(t, err)
	assert.InDelta(t, 2000+bright, total, 1e-9)

	horizontal := c.FindHorizontalSeam()
	assert.Equal(t, []int{1, 2, 1}, horizontal)
	total, err = c.SeamEnergy(horizontal, Horizontal)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, total, 1e-9)
}

func TestFindSeam_TiesPreferSmallerCoordinate(t *testing.T) {
	c, err := New(solidPicture(t, 5, 5, picture.RGB(40, 40, 40)))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 1, 1, 0}, c.FindVerticalSeam())
	assert.Equal(t, []int{0, 1, 1, 1, 0}, c.FindHorizontalSeam())
}

func TestFindSeam_Degenerate(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		wantVertical   []int
		wantHorizontal []int
	}{
		{"1x1", 1, 1, []int{0}, []int{0}},
		{"width 1", 1, 4, []int{0, 0, 0, 0}, []int{0}},
		{"height 1", 4, 1, []int{0}, []int{0, 0, 0, 0}},
		{"width 2", 2, 3, []int{0, 0, 0}, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(randomPicture(t, 7, tt.w, tt.h))
			require.NoError(t, err)
			assert.Equal(t, tt.wantVertical, c.FindVerticalSeam())
			assert.Equal(t, tt.wantHorizontal, c.FindHorizontalSeam())
		})
	}
}

func TestFindSeam_ValidAndMinimal(t *testing.T) {
	sizes := []struct{ w, h int }{
		{3, 3}, {4, 4}, {5, 3}, {3, 5}, {6, 4}, {2, 5}, {5, 2}, {1, 3}, {3, 1},
	}
	for _, s := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			c, err := New(randomPicture(t, seed*100+int64(s.w*10+s.h), s.w, s.h))
			require.NoError(t, err)

			vertical := c.FindVerticalSeam()
			assertValidSeam(t, vertical, s.h, s.w)
			got, err := c.SeamEnergy(vertical, Vertical)
			require.NoError(t, err)
			assert.InDelta(t, bruteForceMin(t, c, Vertical), got, 1e-9, "%dx%d seed %d vertical", s.w, s.h, seed)

			horizontal := c.FindHorizontalSeam()
			assertValidSeam(t, horizontal, s.w, s.h)
			got, err = c.SeamEnergy(horizontal, Horizontal)
			require.NoError(t, err)
			assert.InDelta(t, bruteForceMin(t, c, Horizontal), got, 1e-9, "%dx%d seed %d horizontal", s.w, s.h, seed)
		}
	}
}

func TestFindSeam_DoesNotMutate(t *testing.T) {
	p := randomPicture(t, 99, 6, 6)
	c, err := New(p)
	require.NoError(t, err)
	before := c.EnergyGrid()

	_ = c.FindVerticalSeam()
	_ = c.FindSeam(Horizontal)

	assert.Equal(t, before, c.EnergyGrid())
	samePixels(t, p, c.Picture())
}
