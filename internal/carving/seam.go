package carving

import (
	"fmt"
	"math"
)

// lattice is the energy grid seen along one orientation: a seam visits every
// line once and picks one position per line. For vertical seams lines are rows
// and positions are x; for horizontal seams the grid is read transposed.
type lattice struct {
	energy []float64
	width  int // picture width, the row stride of energy
	lines  int
	span   int
	o      Orientation
}

func (c *SeamCarver) lattice(o Orientation) lattice {
	l := lattice{energy: c.energy, width: c.Width(), o: o}
	if o == Vertical {
		l.lines, l.span = c.Height(), c.Width()
	} else {
		l.lines, l.span = c.Width(), c.Height()
	}
	return l
}

func (l lattice) at(line, pos int) float64 {
	if l.o == Vertical {
		return l.energy[line*l.width+pos]
	}
	return l.energy[pos*l.width+line]
}

// FindVerticalSeam returns the x-coordinate of every row of the lowest-energy
// top-to-bottom seam.
func (c *SeamCarver) FindVerticalSeam() []int {
	return c.findSeam(Vertical)
}

// FindHorizontalSeam returns the y-coordinate of every column of the
// lowest-energy left-to-right seam.
func (c *SeamCarver) FindHorizontalSeam() []int {
	return c.findSeam(Horizontal)
}

// FindSeam returns the lowest-energy seam in orientation o.
func (c *SeamCarver) FindSeam(o Orientation) []int {
	return c.findSeam(o)
}

func (c *SeamCarver) findSeam(o Orientation) []int {
	l := c.lattice(o)

	dist := make([]float64, l.lines*l.span)
	pred := make([]int, l.lines*l.span)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	for pos := 0; pos < l.span; pos++ {
		dist[pos] = l.at(0, pos)
	}

	for line := 0; line < l.lines-1; line++ {
		for pos := 0; pos < l.span; pos++ {
			from := dist[line*l.span+pos]
			for next := pos - 1; next <= pos+1; next++ {
				if next < 0 || next >= l.span {
					continue
				}
				i := (line+1)*l.span + next
				// Strict comparison: on ties the first (smallest) predecessor stays.
				if d := from + l.at(line+1, next); d < dist[i] {
					dist[i] = d
					pred[i] = pos
				}
			}
		}
	}

	last := (l.lines - 1) * l.span
	end := 0
	for pos := 1; pos < l.span; pos++ {
		if dist[last+pos] < dist[last+end] {
			end = pos
		}
	}

	seam := make([]int, l.lines)
	seam[l.lines-1] = end
	for line := l.lines - 1; line > 0; line-- {
		seam[line-1] = pred[line*l.span+seam[line]]
	}
	return seam
}

// SeamEnergy returns the total energy of the pixels on seam.
func (c *SeamCarver) SeamEnergy(seam []int, o Orientation) (float64, error) {
	if seam == nil {
		return 0, ErrNilSeam
	}
	if err := c.checkSeam(seam, o); err != nil {
		return 0, err
	}
	l := c.lattice(o)
	var total float64
	for line, pos := range seam {
		total += l.at(line, pos)
	}
	return total, nil
}

// checkSeam verifies the length, range and connectivity of seam.
func (c *SeamCarver) checkSeam(seam []int, o Orientation) error {
	l := c.lattice(o)
	if len(seam) != l.lines {
		return fmt.Errorf("%s seam of length %d, want %d: %w", o, len(seam), l.lines, ErrSeamLength)
	}
	for i, pos := range seam {
		if pos < 0 || pos >= l.span {
			return fmt.Errorf("%s seam[%d] = %d outside [0,%d]: %w", o, i, pos, l.span-1, ErrSeamOutOfRange)
		}
		if i > 0 && abs(pos-seam[i-1]) > 1 {
			return fmt.Errorf("%s seam jumps from %d to %d at %d: %w", o, seam[i-1], pos, i, ErrSeamDiscontinuous)
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
