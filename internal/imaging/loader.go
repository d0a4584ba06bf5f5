package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp" // Register BMP format decoder

	"github.com/ironsheep/seam-carver-mcp/internal/picture"
)

// PictureCache provides thread-safe caching of decoded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent loads for the same path reuse the decoded copy without disk I/O.
// Pictures handed out by LoadPicture are always fresh conversions, so carving one never
// affects the cached image or any other picture loaded from the same path.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := imaging.NewPictureCache()
//	pic, err := cache.LoadPicture("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	carver, err := carving.New(pic)
type PictureCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewPictureCache creates and initializes a new empty cache.
func NewPictureCache() *PictureCache {
	return &PictureCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not cached.
//
// Supported formats are PNG, JPEG, GIF and BMP. The image is cached using the exact
// path string provided.
func (c *PictureCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadPicture loads the image at path and converts it to a new packed-RGB picture.
func (c *PictureCache) LoadPicture(path string) (*picture.Picture, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	pic, err := picture.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", filepath.Base(path), err)
	}
	return pic, nil
}

// Clear removes all images from the cache.
func (c *PictureCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// After eviction, the next load for this path will read from disk.
func (c *PictureCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *PictureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// FormatFromPath returns "png", "jpeg", "gif", "bmp" or "unknown" based on the
// file extension. Detection is based on the extension, not file contents.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	default:
		return "unknown"
	}
}
