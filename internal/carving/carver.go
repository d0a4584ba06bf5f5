package carving

import (
	"fmt"

	"github.com/ironsheep/seam-carver-mcp/internal/picture"
)

// Orientation selects the direction a seam runs in.
type Orientation int

const (
	// Vertical seams run top to bottom, one x-coordinate per row.
	Vertical Orientation = iota
	// Horizontal seams run left to right, one y-coordinate per column.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts "vertical" or "horizontal" into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidArgument, s)
	}
}

// SeamCarver holds a picture and its energy grid.
//
// The picture is replaced, never patched, on every seam removal and the energy
// grid is recomputed from scratch immediately afterwards, so Energy never
// observes a stale value.
type SeamCarver struct {
	pic    *picture.Picture
	energy []float64 // row-major, len == width*height
}

// New creates a carver for p. The carver keeps a private copy of p; later
// changes to p do not affect the carver.
func New(p *picture.Picture) (*SeamCarver, error) {
	if p == nil {
		return nil, ErrNilPicture
	}
	c := &SeamCarver{}
	c.setPicture(p.Clone())
	return c, nil
}

// Picture returns a copy of the current picture.
func (c *SeamCarver) Picture() *picture.Picture {
	return c.pic.Clone()
}

// Width returns the current picture width.
func (c *SeamCarver) Width() int { return c.pic.Width() }

// Height returns the current picture height.
func (c *SeamCarver) Height() int { return c.pic.Height() }

// Energy returns the energy of pixel (x, y).
func (c *SeamCarver) Energy(x, y int) (float64, error) {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return 0, fmt.Errorf("energy(%d,%d) in %dx%d picture: %w", x, y, c.Width(), c.Height(), ErrOutOfRange)
	}
	return c.energy[y*c.Width()+x], nil
}

// EnergyGrid returns a row-major copy of the energy grid.
func (c *SeamCarver) EnergyGrid() []float64 {
	grid := make([]float64, len(c.energy))
	copy(grid, c.energy)
	return grid
}

// setPicture commits p as the current picture and recomputes the energy grid.
func (c *SeamCarver) setPicture(p *picture.Picture) {
	c.pic = p
	c.energy = computeEnergy(p)
}
