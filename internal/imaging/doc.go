// Package imaging provides the file and rendering boundary around the seam carver.
//
// The carving core never touches files or encoders. This package loads images
// from disk into packed-RGB pictures, encodes pictures for transport, renders
// energy grids and seams for inspection, and writes carved results back to disk.
// All operations use a coordinate system where (0,0) is at the top-left corner,
// X increases rightward, and Y increases downward.
//
// # Loading
//
// PictureCache decodes PNG, JPEG, GIF and BMP files once and hands out independent
// pictures on every LoadPicture call, so several carving sessions can start from
// the same file.
//
// # Rendering
//
//   - EncodePNG: base64 PNG with optional nearest-neighbour preview scaling
//   - EnergyMap: energy grid as grayscale, normalised to the grid maximum
//   - SeamOverlay: picture copy with one seam painted in a chosen colour
//
// # Saving
//
// Save writes PNG, JPEG or BMP files through github.com/anthonynsimon/bild/imgio.
//
// # Thread Safety
//
// PictureCache is safe for concurrent use. The rendering functions are
// stateless and never modify their inputs.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - File I/O errors during loading or saving
//   - Unsupported output formats
//   - Malformed colours, grids or seams passed to the renderers
package imaging
