package engine

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/channel"
	"github.com/gogpu/gg"

	"github.com/warmwaffles/image/internal/mask"
)

// Rasterize draws a mask descriptor as a filled white shape on a
// transparent background, using gg's software renderer. The returned image
// has exactly the descriptor's dimensions.
func Rasterize(d mask.Descriptor) (image.Image, error) {
	dc := gg.NewContext(d.Width, d.Height)
	dc.SetRGB(1, 1, 1)

	switch s := d.Shape.(type) {
	case mask.Circle:
		r := float64(s.Diameter) / 2
		dc.DrawCircle(r, r, r)
	case mask.RoundedRectangle:
		dc.DrawRoundedRectangle(0, 0, float64(s.Width), float64(s.Height), float64(s.Radius))
	default:
		return nil, fmt.Errorf("engine: unknown mask shape %T", d.Shape)
	}

	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("engine: rasterize shape: %w", err)
	}
	return dc.Image(), nil
}

// AlphaBand isolates the alpha channel of an image as a single grayscale
// band.
func AlphaBand(img image.Image) *image.Gray {
	return channel.Extract(img, channel.Alpha)
}

// MaskImage rasterizes a descriptor and reduces it to its alpha band, the
// form consumed as a compositing mask.
func MaskImage(d mask.Descriptor) (*image.Gray, error) {
	shape, err := Rasterize(d)
	if err != nil {
		return nil, err
	}
	return AlphaBand(shape), nil
}

// ApplyMask returns a copy of img whose alpha is limited by the mask
// described by d. The descriptor's dimensions must match the image.
func ApplyMask(img image.Image, d mask.Descriptor) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Dx() != d.Width || b.Dy() != d.Height {
		return nil, fmt.Errorf("%w: mask %dx%d against image %dx%d",
			mask.ErrInvalidDimensions, d.Width, d.Height, b.Dx(), b.Dy())
	}

	band, err := MaskImage(d)
	if err != nil {
		return nil, err
	}

	// draw.DrawMask reads the mask's alpha channel, so the gray band is
	// rewrapped as an *image.Alpha first.
	alpha := image.NewAlpha(image.Rect(0, 0, d.Width, d.Height))
	for i, v := range band.Pix {
		alpha.Pix[i] = v
	}

	out := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	draw.DrawMask(out, out.Bounds(), img, b.Min, alpha, image.Point{}, draw.Over)
	return out, nil
}
