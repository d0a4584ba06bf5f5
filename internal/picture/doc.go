// Package picture provides the packed-RGB raster that the seam carver operates on.
//
// A Picture stores one 24-bit colour per pixel in a flat row-major buffer. It uses
// the same coordinate system as the rest of the module: (0,0) is the top-left
// corner, X increases rightward and Y increases downward.
//
// # Packed Colours
//
// Colours are packed as 0xRRGGBB:
//   - Red: bits 16-23
//   - Green: bits 8-15
//   - Blue: bits 0-7
//
// Alpha is not represented. Pictures converted from images with transparency keep
// the non-premultiplied colour and drop the alpha channel.
//
// # Interop
//
// Picture implements image.Image, so it can be passed directly to encoders and to
// the helpers in github.com/disintegration/imaging. Use FromImage to convert any
// decoded image into a Picture.
//
// # Thread Safety
//
// A Picture is not safe for concurrent mutation. Use Clone to hand out a copy that
// the receiver may modify freely.
package picture
