package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

const (
	// MaxPreviewScale is the largest scale factor EncodePNG accepts.
	MaxPreviewScale = 64.0

	// MaxPreviewSide is the largest width or height EncodePNG will produce.
	MaxPreviewSide = 8192
)

// EncodedImage contains image data encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG, optionally scaled for preview.
//
// A scale of 1 (or any non-positive value) keeps the original size. Other values
// resize with nearest-neighbour sampling so the individual pixels of small
// carved pictures stay sharp. Scaled dimensions are clamped to at least 1 pixel.
// A scale above MaxPreviewScale, or one that would make either side larger
// than MaxPreviewSide, is an error.
func EncodePNG(img image.Image, scale float64) (*EncodedImage, error) {
	out := img
	if scale != 1.0 && scale > 0 {
		if scale > MaxPreviewScale {
			return nil, fmt.Errorf("scale %g exceeds maximum %g", scale, MaxPreviewScale)
		}
		fw := float64(img.Bounds().Dx()) * scale
		fh := float64(img.Bounds().Dy()) * scale
		if fw > MaxPreviewSide || fh > MaxPreviewSide {
			return nil, fmt.Errorf("scaled size %.0fx%.0f exceeds %d pixels per side", fw, fh, MaxPreviewSide)
		}
		w, h := int(fw), int(fh)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		out = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
