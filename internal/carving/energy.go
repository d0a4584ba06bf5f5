package carving

import (
	"math"

	"github.com/ironsheep/seam-carver-mcp/internal/picture"
)

// BorderEnergy is the fixed energy of every pixel on the picture border. It is
// larger than any interior gradient (at most sqrt(6·255²) ≈ 624.6).
const BorderEnergy = 1000.0

// computeEnergy returns the row-major energy grid of p.
func computeEnergy(p *picture.Picture) []float64 {
	w, h := p.Width(), p.Height()
	grid := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			grid[y*w+x] = pixelEnergy(p, x, y)
		}
	}
	return grid
}

func pixelEnergy(p *picture.Picture, x, y int) float64 {
	if x == 0 || y == 0 || x == p.Width()-1 || y == p.Height()-1 {
		return BorderEnergy
	}
	dx := squaredDistance(p.RGB(x+1, y), p.RGB(x-1, y))
	dy := squaredDistance(p.RGB(x, y+1), p.RGB(x, y-1))
	return math.Sqrt(float64(dx + dy))
}

// squaredDistance is the squared Euclidean distance between a and b in RGB space.
func squaredDistance(a, b picture.Color) int {
	dr := int(a.R()) - int(b.R())
	dg := int(a.G()) - int(b.G())
	db := int(a.B()) - int(b.B())
	return dr*dr + dg*dg + db*db
}
