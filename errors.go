package canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/canvas/imageio"
	"github.com/gogpu/canvas/internal/path"
)

// Errors returned by canvas operations. Argument errors leave the state
// and the pixels untouched.
var (
	// ErrInvalidDimensions is returned for canvas or image sizes that are not positive.
	ErrInvalidDimensions = errors.New("canvas: width and height must be positive")

	// ErrNonFinite is returned when a coordinate, size or angle is NaN or infinite.
	ErrNonFinite = path.ErrNonFinite

	// ErrNegativeRadius is returned for arcs, rounded corners and radial
	// gradients with a negative radius.
	ErrNegativeRadius = path.ErrNegativeRadius

	// ErrSizeMismatch is returned when pixel data does not match the given dimensions.
	ErrSizeMismatch = errors.New("canvas: pixel data size mismatch")

	// ErrUnsupportedMIME is returned by ToBuffer for types without an encoder.
	ErrUnsupportedMIME = imageio.ErrUnsupportedMIME

	// ErrInvalidRepeat is returned for an unknown pattern repetition keyword.
	ErrInvalidRepeat = errors.New("canvas: invalid pattern repetition")

	// ErrInvalidOffset is returned for a gradient stop offset outside [0, 1].
	ErrInvalidOffset = errors.New("canvas: gradient stop offset out of range")

	// ErrInvalidColor is returned for a string that is not a CSS color.
	ErrInvalidColor = errors.New("canvas: invalid color")

	// ErrEmptyImage is returned when an image source has no pixels.
	ErrEmptyImage = errors.New("canvas: image source has no pixels")

	// ErrIndexSize is returned for zero-sized pixel rectangles.
	ErrIndexSize = errors.New("canvas: index or size out of range")

	// ErrInvalidKeyword is returned by string setters for an unknown keyword.
	ErrInvalidKeyword = errors.New("canvas: invalid keyword")

	// ErrInvalidDash is returned for dash arrays with negative or non-finite entries.
	ErrInvalidDash = errors.New("canvas: invalid line dash")
)

// SizeMismatchError reports pixel data whose length does not fit the
// requested dimensions.
type SizeMismatchError struct {
	Len    int
	Width  int
	Height int // 0 when the height was to be inferred
}

func (e *SizeMismatchError) Error() string {
	if e.Height == 0 {
		return fmt.Sprintf("canvas: pixel data size mismatch: %d bytes is not a multiple of width*4 (%d)", e.Len, e.Width*4)
	}
	return fmt.Sprintf("canvas: pixel data size mismatch: %d bytes, want %dx%dx4 = %d", e.Len, e.Width, e.Height, e.Width*e.Height*4)
}

// Unwrap makes errors.Is(err, ErrSizeMismatch) hold.
func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
