package imageops

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// resampleFilters maps filter names accepted by the resize operations onto
// the resampling kernels the engine supports.
var resampleFilters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
	"gaussian":   imaging.Gaussian,
}

// DefaultFilter is the resampling filter used when none is named.
const DefaultFilter = "lanczos"

func filterByName(name string) (imaging.ResampleFilter, error) {
	if name == "" {
		name = DefaultFilter
	}
	f, ok := resampleFilters[name]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter: %s", name)
	}
	return f, nil
}

// Resize scales an image to width x height. A zero width or height
// preserves the aspect ratio from the other dimension; both zero is an
// error.
func Resize(img image.Image, width, height int, filterName string) (*ImageResult, error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return nil, fmt.Errorf("invalid resize target %dx%d", width, height)
	}
	f, err := filterByName(filterName)
	if err != nil {
		return nil, err
	}
	return EncodeResult(imaging.Resize(img, width, height, f))
}

// Fit scales an image down to fit inside width x height, preserving aspect
// ratio. Images already within the bounds are returned unscaled.
func Fit(img image.Image, width, height int, filterName string) (*ImageResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid fit target %dx%d", width, height)
	}
	f, err := filterByName(filterName)
	if err != nil {
		return nil, err
	}
	return EncodeResult(imaging.Fit(img, width, height, f))
}

// Thumbnail scales and center-crops an image to exactly width x height.
func Thumbnail(img image.Image, width, height int, filterName string) (*ImageResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid thumbnail target %dx%d", width, height)
	}
	f, err := filterByName(filterName)
	if err != nil {
		return nil, err
	}
	return EncodeResult(imaging.Thumbnail(img, width, height, f))
}

// Crop extracts the rectangle (x1,y1)-(x2,y2) from an image, optionally
// rescaling the result by scale.
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64) (*ImageResult, error) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	return EncodeResult(cropped)
}

// cropAnchors maps anchor names onto the engine's anchor points.
var cropAnchors = map[string]imaging.Anchor{
	"center":       imaging.Center,
	"top":          imaging.Top,
	"bottom":       imaging.Bottom,
	"left":         imaging.Left,
	"right":        imaging.Right,
	"top-left":     imaging.TopLeft,
	"top-right":    imaging.TopRight,
	"bottom-left":  imaging.BottomLeft,
	"bottom-right": imaging.BottomRight,
}

// CropAnchor cuts a width x height region anchored at a named position
// ("center", "top-left", ...).
func CropAnchor(img image.Image, width, height int, anchorName string) (*ImageResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid crop size %dx%d", width, height)
	}
	if anchorName == "" {
		anchorName = "center"
	}
	anchor, ok := cropAnchors[anchorName]
	if !ok {
		return nil, fmt.Errorf("unknown anchor: %s", anchorName)
	}
	return EncodeResult(imaging.CropAnchor(img, width, height, anchor))
}

// Rotate rotates an image counter-clockwise by angle degrees. Right angles
// take the lossless fast paths; arbitrary angles expand the canvas and fill
// the exposed background with bgHex (transparent when empty).
func Rotate(img image.Image, angle float64, bgHex string) (*ImageResult, error) {
	switch angle {
	case 0:
		return EncodeResult(imaging.Clone(img))
	case 90:
		return EncodeResult(imaging.Rotate90(img))
	case 180:
		return EncodeResult(imaging.Rotate180(img))
	case 270:
		return EncodeResult(imaging.Rotate270(img))
	}

	bg := color.Color(color.NRGBA{})
	if bgHex != "" {
		c, err := ParseHexColor(bgHex)
		if err != nil {
			return nil, fmt.Errorf("invalid background color: %w", err)
		}
		bg = c
	}
	return EncodeResult(imaging.Rotate(img, angle, bg))
}

// Flip mirrors an image across the named axis: "horizontal" (left-right)
// or "vertical" (top-bottom).
func Flip(img image.Image, direction string) (*ImageResult, error) {
	switch direction {
	case "horizontal":
		return EncodeResult(imaging.FlipH(img))
	case "vertical":
		return EncodeResult(imaging.FlipV(img))
	}
	return nil, fmt.Errorf("unknown flip direction: %s", direction)
}
