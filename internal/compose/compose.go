package compose

import (
	"fmt"
	"image"
)

// Raster is the planner's view of an overlay image: an opaque handle that
// can report its extent. Every image.Image satisfies it. The planner never
// inspects pixels; reading them is the engine's business.
type Raster interface {
	Bounds() image.Rectangle
}

// Canvas is the base image's extent, the outer reference frame for absolute
// and keyword placement.
type Canvas struct {
	Width  int
	Height int
}

// CanvasFor returns the canvas matching a raster handle's extent.
func CanvasFor(r Raster) (Canvas, error) {
	w, h, err := extentOf(r)
	if err != nil {
		return Canvas{}, err
	}
	return Canvas{Width: w, Height: h}, nil
}

// Overlay is one entry in a composition: an image handle plus its placement
// rule. X and Y may be absolute, keyword, or unset; when unset, DX/DY are
// measured from the XBaseline/YBaseline edge of the previous placement.
// Blend is a symbolic identifier, defaulting to "over" when empty.
type Overlay struct {
	Image     Raster
	X, Y      Position
	DX, DY    int
	XBaseline Baseline
	YBaseline Baseline
	Blend     string
}

// Centered returns an overlay placed at the canvas center, the bare
// image-reference form of the composition API.
func Centered(img Raster) Overlay {
	return Overlay{Image: img, X: At(KeywordCenter), Y: At(KeywordMiddle)}
}

// ResolvedLayer is an overlay after resolution: concrete coordinates and a
// canonical blend mode, ready for rasterized compositing.
type ResolvedLayer struct {
	Image Raster
	X, Y  int
	Mode  BlendMode
}

// placement is the fold accumulator: the extent and offset of the most
// recently placed overlay, seeded with the canvas itself at (0, 0).
type placement struct {
	x, y, w, h int
}

// Plan resolves an ordered list of overlays against a canvas.
//
// Overlays are resolved strictly in input order; each resolved layer becomes
// the reference placement for the next overlay's relative offsets. The first
// error aborts planning with no partial output, wrapped with the index of
// the overlay that caused it. Plan is pure and deterministic: identical
// inputs always produce an identical layer list or the same error.
func Plan(canvas Canvas, overlays []Overlay) ([]ResolvedLayer, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimensions, canvas.Width, canvas.Height)
	}

	prev := placement{x: 0, y: 0, w: canvas.Width, h: canvas.Height}
	layers := make([]ResolvedLayer, 0, len(overlays))

	for i, ov := range overlays {
		w, h, err := extentOf(ov.Image)
		if err != nil {
			return nil, fmt.Errorf("overlay %d: %w", i, err)
		}

		x, err := resolveAxis(axisX, canvas.Width, prev.x, prev.w, w, ov.X, ov.DX, ov.XBaseline)
		if err != nil {
			return nil, fmt.Errorf("overlay %d: %w", i, err)
		}
		y, err := resolveAxis(axisY, canvas.Height, prev.y, prev.h, h, ov.Y, ov.DY, ov.YBaseline)
		if err != nil {
			return nil, fmt.Errorf("overlay %d: %w", i, err)
		}
		mode, err := ParseBlendMode(ov.Blend)
		if err != nil {
			return nil, fmt.Errorf("overlay %d: %w", i, err)
		}

		layers = append(layers, ResolvedLayer{Image: ov.Image, X: x, Y: y, Mode: mode})
		prev = placement{x: x, y: y, w: w, h: h}
	}

	return layers, nil
}

// extentOf reads an overlay's extent from its handle. A nil handle or one
// reporting an empty extent cannot be placed.
func extentOf(r Raster) (int, int, error) {
	if r == nil {
		return 0, 0, fmt.Errorf("%w: nil image handle", ErrMissingExtent)
	}
	b := r.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: empty bounds %v", ErrMissingExtent, b)
	}
	return w, h, nil
}
