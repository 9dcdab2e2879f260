// Package mask describes alpha-mask geometry.
//
// A Descriptor is a declarative shape destined to become a single-band alpha
// mask: the package validates geometry and dimensions but produces no
// pixels. Rasterization and alpha-band extraction are delegated to the
// engine package.
package mask

import (
	"errors"
	"fmt"
)

// DefaultCornerRadius is used for rounded rectangles when the caller does
// not supply a radius.
const DefaultCornerRadius = 50

// ErrInvalidDimensions reports a mask request with incompatible width and
// height, such as a non-square circle.
var ErrInvalidDimensions = errors.New("mask: invalid dimensions")

// Shape is a closed set of mask geometries: Circle or RoundedRectangle.
type Shape interface {
	shape()
}

// Circle is a filled disc centered in a square of side Diameter.
type Circle struct {
	Diameter int
}

// RoundedRectangle is a filled rectangle with rounded corners spanning the
// full Width x Height.
type RoundedRectangle struct {
	Width  int
	Height int
	Radius int
}

func (Circle) shape()           {}
func (RoundedRectangle) shape() {}

// Descriptor is a validated shape plus the exact dimensions of the mask it
// will produce. Descriptor dimensions always match the original request (or
// the derived square for circles).
type Descriptor struct {
	Shape  Shape
	Width  int
	Height int
}

// NewCircle describes a circular mask. The request must be square; the disc
// fills the square with diameter min(width, height).
func NewCircle(width, height int) (Descriptor, error) {
	if width <= 0 || height <= 0 {
		return Descriptor{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width != height {
		return Descriptor{}, fmt.Errorf("%w: circle requires a square request, got %dx%d", ErrInvalidDimensions, width, height)
	}
	d := min(width, height)
	return Descriptor{
		Shape:  Circle{Diameter: d},
		Width:  d,
		Height: d,
	}, nil
}

// NewRoundedRectangle describes a rounded-rectangle mask spanning the full
// width x height. A radius of zero or less selects DefaultCornerRadius.
func NewRoundedRectangle(width, height, radius int) (Descriptor, error) {
	if width <= 0 || height <= 0 {
		return Descriptor{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if radius <= 0 {
		radius = DefaultCornerRadius
	}
	return Descriptor{
		Shape:  RoundedRectangle{Width: width, Height: height, Radius: radius},
		Width:  width,
		Height: height,
	}, nil
}
