package carving

import (
	"fmt"

	"github.com/ironsheep/seam-carver-mcp/internal/picture"
)

// RemoveVerticalSeam deletes one pixel per row, shrinking the picture by one
// column. seam must hold Height() x-coordinates.
func (c *SeamCarver) RemoveVerticalSeam(seam []int) error {
	return c.RemoveSeam(seam, Vertical)
}

// RemoveHorizontalSeam deletes one pixel per column, shrinking the picture by
// one row. seam must hold Width() y-coordinates.
func (c *SeamCarver) RemoveHorizontalSeam(seam []int) error {
	return c.RemoveSeam(seam, Horizontal)
}

// RemoveSeam validates seam and removes it in orientation o. On error the
// carver is left unchanged.
func (c *SeamCarver) RemoveSeam(seam []int, o Orientation) error {
	if seam == nil {
		return ErrNilSeam
	}
	if c.lattice(o).span <= 1 {
		return fmt.Errorf("remove %s seam from %dx%d picture: %w", o, c.Width(), c.Height(), ErrPictureTooSmall)
	}
	if err := c.checkSeam(seam, o); err != nil {
		return err
	}

	var (
		next *picture.Picture
		err  error
	)
	if o == Vertical {
		next, err = removeColumnSeam(c.pic, seam)
	} else {
		next, err = removeRowSeam(c.pic, seam)
	}
	if err != nil {
		return err
	}
	c.setPicture(next)
	return nil
}

// removeColumnSeam drops pixel (seam[y], y) from every row.
func removeColumnSeam(src *picture.Picture, seam []int) (*picture.Picture, error) {
	dst, err := picture.New(src.Width()-1, src.Height())
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Height(); y++ {
		from, to, s := src.Row(y), dst.Row(y), seam[y]
		copy(to, from[:s])
		copy(to[s:], from[s+1:])
	}
	return dst, nil
}

// removeRowSeam drops pixel (x, seam[x]) from every column.
func removeRowSeam(src *picture.Picture, seam []int) (*picture.Picture, error) {
	dst, err := picture.New(src.Width(), src.Height()-1)
	if err != nil {
		return nil, err
	}
	for x := 0; x < src.Width(); x++ {
		for y := 0; y < src.Height(); y++ {
			switch {
			case y < seam[x]:
				dst.SetRGB(x, y, src.RGB(x, y))
			case y > seam[x]:
				dst.SetRGB(x, y-1, src.RGB(x, y))
			}
		}
	}
	return dst, nil
}
