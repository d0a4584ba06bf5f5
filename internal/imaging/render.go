package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSeamColor is used by SeamOverlay when no colour is given.
const DefaultSeamColor = "#FF0000"

// EnergyMap renders a row-major energy grid as a grayscale image.
//
// Energies are scaled linearly so that the largest value in the grid maps to
// 255 and zero maps to 0. A grid with no positive energy renders black.
// The grid must hold exactly width*height values.
func EnergyMap(grid []float64, width, height int) (*image.Gray, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid energy map size %dx%d", width, height)
	}
	if len(grid) != width*height {
		return nil, fmt.Errorf("energy grid has %d values, want %d", len(grid), width*height)
	}

	var peak float64
	for _, e := range grid {
		if e > peak {
			peak = e
		}
	}

	result := image.NewGray(image.Rect(0, 0, width, height))
	if peak == 0 {
		return result, nil
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := math.Round(grid[y*width+x] / peak * 255)
			result.SetGray(x, y, color.Gray{Y: uint8(clamp(int(v), 0, 255))})
		}
	}
	return result, nil
}

// SeamOverlay returns a copy of img with the seam pixels painted in hexColor.
//
// For a vertical seam, seam[y] is the x-coordinate in row y; for a horizontal
// seam, seam[x] is the y-coordinate in column x. hexColor accepts "#RGB" or
// "#RRGGBB"; an empty string selects DefaultSeamColor.
func SeamOverlay(img image.Image, seam []int, vertical bool, hexColor string) (*image.NRGBA, error) {
	if hexColor == "" {
		hexColor = DefaultSeamColor
	}
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return nil, fmt.Errorf("invalid seam color %q: %w", hexColor, err)
	}
	r, g, b := c.Clamped().RGB255()
	paint := color.NRGBA{R: r, G: g, B: b, A: 255}

	result := imaging.Clone(img)
	w, h := result.Bounds().Dx(), result.Bounds().Dy()

	want := h
	if !vertical {
		want = w
	}
	if len(seam) != want {
		return nil, fmt.Errorf("seam has %d entries, want %d", len(seam), want)
	}

	for i, v := range seam {
		x, y := v, i
		if !vertical {
			x, y = i, v
		}
		if x < 0 || x >= w || y < 0 || y >= h {
			return nil, fmt.Errorf("seam point (%d,%d) outside image bounds", x, y)
		}
		result.SetNRGBA(x, y, paint)
	}
	return result, nil
}

// clamp constrains an integer value to the range [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
