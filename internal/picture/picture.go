package picture

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidDimensions indicates a requested width or height below 1.
	ErrInvalidDimensions = errors.New("picture: dimensions must be >= 1")

	// ErrNilImage indicates FromImage was called without an image.
	ErrNilImage = errors.New("picture: image is nil")
)

// Color is a packed 24-bit RGB value in the form 0xRRGGBB.
type Color uint32

// RGB packs 8-bit red, green and blue components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red component (bits 16-23).
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component (bits 8-15).
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component (bits 0-7).
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color. The colour is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}.RGBA()
}

// Picture is a width x height raster of packed RGB colours.
type Picture struct {
	width, height int
	pix           []Color // row-major, len == width*height
}

// New creates a blank (black) picture of the given size.
func New(width, height int) (*Picture, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new %dx%d picture: %w", width, height, ErrInvalidDimensions)
	}
	return &Picture{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// FromImage converts an arbitrary image into a Picture.
//
// The source is first normalised to non-premultiplied NRGBA so that
// semi-transparent pixels keep their colour; the alpha channel is then dropped.
// The result is rebased so that its top-left pixel is (0,0) regardless of the
// source bounds.
func FromImage(img image.Image) (*Picture, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("convert %dx%d image: %w", bounds.Dx(), bounds.Dy(), ErrInvalidDimensions)
	}

	nrgba := imaging.Clone(img)
	p, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < p.width; x++ {
			i := x * 4
			p.pix[y*p.width+x] = RGB(row[i], row[i+1], row[i+2])
		}
	}
	return p, nil
}

// Clone returns a deep copy of the picture.
func (p *Picture) Clone() *Picture {
	pix := make([]Color, len(p.pix))
	copy(pix, p.pix)
	return &Picture{width: p.width, height: p.height, pix: pix}
}

// Width returns the picture width in pixels.
func (p *Picture) Width() int { return p.width }

// Height returns the picture height in pixels.
func (p *Picture) Height() int { return p.height }

// RGB returns the packed colour at (x, y). It panics if (x, y) is outside the
// picture, like slice indexing.
func (p *Picture) RGB(x, y int) Color {
	return p.pix[p.offset(x, y)]
}

// SetRGB sets the packed colour at (x, y). It panics if (x, y) is outside the
// picture.
func (p *Picture) SetRGB(x, y int, c Color) {
	p.pix[p.offset(x, y)] = c
}

// Row returns the backing slice of row y. Writes through the returned slice
// modify the picture.
func (p *Picture) Row(y int) []Color {
	if y < 0 || y >= p.height {
		panic(fmt.Sprintf("picture: row %d out of range [0,%d)", y, p.height))
	}
	return p.pix[y*p.width : (y+1)*p.width]
}

func (p *Picture) offset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("picture: pixel (%d,%d) out of range %dx%d", x, y, p.width, p.height))
	}
	return y*p.width + x
}

// ColorModel implements image.Image.
func (p *Picture) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *Picture) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements image.Image. Points outside the picture are transparent black.
func (p *Picture) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	c := p.pix[y*p.width+x]
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}
