package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// JPEGQuality is the quality used when saving JPEG files.
const JPEGQuality = 95

// SaveResult describes a picture written to disk.
type SaveResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Save writes img to path.
//
// Parameters:
//   - format: "png", "jpeg" (or "jpg") or "bmp". When empty, the format is
//     taken from the file extension.
//
// # Errors
//
//   - Returns error if the format is unknown or cannot be inferred
//   - Returns error if the file cannot be created or encoded
func Save(img image.Image, path, format string) (*SaveResult, error) {
	if format == "" {
		format = FormatFromPath(path)
	}

	var enc imgio.Encoder
	switch format {
	case "png":
		enc = imgio.PNGEncoder()
	case "jpeg", "jpg":
		format = "jpeg"
		enc = imgio.JPEGEncoder(JPEGQuality)
	case "bmp":
		enc = imgio.BMPEncoder()
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	if err := imgio.Save(path, img, enc); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	return &SaveResult{
		Path:   path,
		Format: format,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}
