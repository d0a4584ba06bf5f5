package carving

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of every error returned by this package.
var ErrInvalidArgument = errors.New("carving: invalid argument")

var (
	// ErrNilPicture indicates New was called without a picture.
	ErrNilPicture = fmt.Errorf("%w: picture is nil", ErrInvalidArgument)

	// ErrNilSeam indicates a removal was requested without a seam.
	ErrNilSeam = fmt.Errorf("%w: seam is nil", ErrInvalidArgument)

	// ErrOutOfRange indicates a pixel coordinate outside the picture.
	ErrOutOfRange = fmt.Errorf("%w: coordinate out of range", ErrInvalidArgument)

	// ErrSeamLength indicates a seam whose length does not match the picture.
	ErrSeamLength = fmt.Errorf("%w: seam has wrong length", ErrInvalidArgument)

	// ErrSeamOutOfRange indicates a seam entry outside the picture.
	ErrSeamOutOfRange = fmt.Errorf("%w: seam entry out of range", ErrInvalidArgument)

	// ErrSeamDiscontinuous indicates adjacent seam entries more than 1 apart.
	ErrSeamDiscontinuous = fmt.Errorf("%w: seam is not connected", ErrInvalidArgument)

	// ErrPictureTooSmall indicates the dimension being reduced is already 1.
	ErrPictureTooSmall = fmt.Errorf("%w: picture too small to remove seam", ErrInvalidArgument)
)
