// Package carving implements content-aware image resizing by seam carving.
//
// A SeamCarver owns a picture and the energy of every pixel in it. Callers ask
// for the lowest-energy seam in either orientation and remove it, shrinking the
// picture by one column (vertical seam) or one row (horizontal seam) without
// uniformly scaling the rest of the content.
//
// # Energy
//
// Border pixels have energy BorderEnergy (1000). Interior pixels use the
// dual-gradient magnitude:
//
//	Δx² = (R(x+1,y)-R(x-1,y))² + (G(x+1,y)-G(x-1,y))² + (B(x+1,y)-B(x-1,y))²
//	Δy² = (R(x,y+1)-R(x,y-1))² + (G(x,y+1)-G(x,y-1))² + (B(x,y+1)-B(x,y-1))²
//	energy(x,y) = sqrt(Δx² + Δy²)
//
// The energy grid is recomputed in full whenever the picture changes.
//
// # Seams
//
// A vertical seam holds one x-coordinate per row (len == Height), a horizontal
// seam one y-coordinate per column (len == Width). Adjacent entries differ by at
// most 1. Both orientations are found by the same dynamic-programming pass over
// the energy grid or its transpose in O(W·H) time and space.
//
// When several seams share the minimum total energy the search prefers the
// smaller coordinate at every step.
//
// # Errors
//
// Every precondition failure wraps ErrInvalidArgument:
//   - ErrNilPicture, ErrNilSeam for absent inputs
//   - ErrOutOfRange for energy queries outside the picture
//   - ErrSeamLength, ErrSeamOutOfRange, ErrSeamDiscontinuous for malformed seams
//   - ErrPictureTooSmall when the dimension being reduced is already 1
//
// A rejected removal leaves the carver unchanged.
//
// # Thread Safety
//
// A SeamCarver is not safe for concurrent use. Callers that share one carver
// between goroutines must serialize every call.
package carving
