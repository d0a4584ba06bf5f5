package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSave_Formats(t *testing.T) {
	img := createInMemoryImage(7, 5, color.RGBA{200, 100, 50, 255})
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		format     string
		wantFormat string
	}{
		{"png from extension", "out.png", "", "png"},
		{"jpeg from extension", "out.jpg", "", "jpeg"},
		{"bmp from extension", "out.bmp", "", "bmp"},
		{"explicit png", "out.bin", "png", "png"},
		{"jpg alias", "other.jpeg", "jpg", "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			result, err := Save(img, path, tt.format)
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if result.Format != tt.wantFormat {
				t.Errorf("Format: got %s, want %s", result.Format, tt.wantFormat)
			}
			if result.Width != 7 || result.Height != 5 {
				t.Errorf("dimensions: got %dx%d, want 7x5", result.Width, result.Height)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("saved file missing: %v", err)
			}
			defer f.Close()
			decoded, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("saved file does not decode: %v", err)
			}
			if decoded.Bounds().Dx() != 7 || decoded.Bounds().Dy() != 5 {
				t.Errorf("decoded dimensions: got %dx%d, want 7x5", decoded.Bounds().Dx(), decoded.Bounds().Dy())
			}
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	img := createInMemoryImage(2, 2, color.White)
	dir := t.TempDir()

	if _, err := Save(img, filepath.Join(dir, "out.xyz"), ""); err == nil {
		t.Error("expected error for unknown extension")
	}
	if _, err := Save(img, filepath.Join(dir, "out.png"), "tiff"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSave_BadPath(t *testing.T) {
	img := createInMemoryImage(2, 2, color.White)
	if _, err := Save(img, "/nonexistent/dir/out.png", ""); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestSave_ThenLoadPicture(t *testing.T) {
	img := createInMemoryImage(3, 2, color.RGBA{9, 8, 7, 255})
	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if _, err := Save(img, path, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	pic, err := NewPictureCache().LoadPicture(path)
	if err != nil {
		t.Fatalf("LoadPicture failed: %v", err)
	}
	if pic.Width() != 3 || pic.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", pic.Width(), pic.Height())
	}
	c := pic.RGB(2, 1)
	if c.R() != 9 || c.G() != 8 || c.B() != 7 {
		t.Errorf("pixel: got (%d,%d,%d), want (9,8,7)", c.R(), c.G(), c.B())
	}
}
