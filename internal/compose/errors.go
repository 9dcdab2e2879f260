package compose

import "errors"

var (
	// ErrInvalidPosition reports an unrecognized keyword or baseline value
	// supplied for an axis, or a keyword used on the wrong axis.
	ErrInvalidPosition = errors.New("compose: invalid position")

	// ErrUnsupportedBlendMode reports a blend-mode identifier outside the
	// fixed registry.
	ErrUnsupportedBlendMode = errors.New("compose: unsupported blend mode")

	// ErrInvalidDimensions reports a canvas with non-positive width or height.
	ErrInvalidDimensions = errors.New("compose: invalid dimensions")

	// ErrMissingExtent reports an overlay whose image handle cannot report
	// its extent.
	ErrMissingExtent = errors.New("compose: missing overlay extent")
)
