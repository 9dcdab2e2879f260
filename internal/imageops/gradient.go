package imageops

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientImage renders a linear gradient between two hex colors. direction
// is "horizontal" (left to right) or "vertical" (top to bottom). Colors are
// interpolated in Lab space, which keeps the midpoints perceptually even.
//
// The returned image feeds either the encoding path or a composition as an
// overlay source.
func GradientImage(width, height int, fromHex, toHex, direction string) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid gradient size %dx%d", width, height)
	}

	from, err := colorful.Hex(fromHex)
	if err != nil {
		return nil, fmt.Errorf("invalid gradient start color %q: %w", fromHex, err)
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return nil, fmt.Errorf("invalid gradient end color %q: %w", toHex, err)
	}

	var horizontal bool
	switch direction {
	case "", "horizontal":
		horizontal = true
	case "vertical":
		horizontal = false
	default:
		return nil, fmt.Errorf("unknown gradient direction: %s", direction)
	}

	extent := height
	if horizontal {
		extent = width
	}

	// Precompute one color per step; the other axis just repeats it.
	steps := make([]color.NRGBA, extent)
	for i := range steps {
		t := 0.0
		if extent > 1 {
			t = float64(i) / float64(extent-1)
		}
		c := from.BlendLab(to, t).Clamped()
		r, g, b := c.RGB255()
		steps[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if horizontal {
				img.SetNRGBA(x, y, steps[x])
			} else {
				img.SetNRGBA(x, y, steps[y])
			}
		}
	}
	return img, nil
}

// Gradient renders a linear gradient and wraps it as an ImageResult.
func Gradient(width, height int, fromHex, toHex, direction string) (*ImageResult, error) {
	img, err := GradientImage(width, height, fromHex, toHex, direction)
	if err != nil {
		return nil, err
	}
	return EncodeResult(img)
}
