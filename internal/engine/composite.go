package engine

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/warmwaffles/image/internal/compose"
)

// ErrOpaqueHandle reports a resolved layer whose raster handle only exposes
// an extent, not pixel data, and so cannot be composited.
var ErrOpaqueHandle = errors.New("engine: layer handle does not expose pixels")

// blendFuncs maps registry modes onto bild's blend arithmetic. BlendOver is
// absent: plain alpha compositing is handled by imaging.Overlay instead.
var blendFuncs = map[compose.BlendMode]func(bg, fg image.Image) *image.RGBA{
	compose.BlendAdd:         blend.Add,
	compose.BlendColorBurn:   blend.ColorBurn,
	compose.BlendColorDodge:  blend.ColorDodge,
	compose.BlendDarken:      blend.Darken,
	compose.BlendDifference:  blend.Difference,
	compose.BlendDivide:      blend.Divide,
	compose.BlendExclusion:   blend.Exclusion,
	compose.BlendLighten:     blend.Lighten,
	compose.BlendLinearBurn:  blend.LinearBurn,
	compose.BlendLinearLight: blend.LinearLight,
	compose.BlendMultiply:    blend.Multiply,
	compose.BlendOverlay:     blend.Overlay,
	compose.BlendScreen:      blend.Screen,
	compose.BlendSoftLight:   blend.SoftLight,
	compose.BlendSubtract:    blend.Subtract,
}

// Extent reports a raster handle's width and height.
func Extent(r compose.Raster) (int, int, error) {
	c, err := compose.CanvasFor(r)
	if err != nil {
		return 0, 0, err
	}
	return c.Width, c.Height, nil
}

// CompositeLayers paints resolved layers onto a copy of base, strictly in
// input order. Regions falling outside the canvas clip; a layer entirely
// off-canvas contributes nothing. Each layer's handle must carry pixels
// (satisfy image.Image) or the composite fails with ErrOpaqueHandle.
func CompositeLayers(base image.Image, layers []compose.ResolvedLayer) (*image.NRGBA, error) {
	dst := imaging.Clone(base)

	for i, l := range layers {
		src, ok := l.Image.(image.Image)
		if !ok {
			return nil, fmt.Errorf("layer %d: %w (%T)", i, ErrOpaqueHandle, l.Image)
		}

		if l.Mode == compose.BlendOver {
			dst = imaging.Overlay(dst, src, image.Pt(l.X, l.Y), 1.0)
			continue
		}

		fn, ok := blendFuncs[l.Mode]
		if !ok {
			return nil, fmt.Errorf("layer %d: %w: %v", i, compose.ErrUnsupportedBlendMode, l.Mode)
		}

		sb := src.Bounds()
		region := image.Rect(l.X, l.Y, l.X+sb.Dx(), l.Y+sb.Dy()).Intersect(dst.Bounds())
		if region.Empty() {
			continue
		}

		// bild's blend arithmetic requires equal extents, so the overlapping
		// region is cut out of both images, blended, and pasted back.
		bgPart := imaging.Crop(dst, region)
		fgRect := image.Rect(
			region.Min.X-l.X, region.Min.Y-l.Y,
			region.Max.X-l.X, region.Max.Y-l.Y,
		).Add(sb.Min)
		fgPart := imaging.Crop(src, fgRect)

		dst = imaging.Paste(dst, fn(bgPart, fgPart), region.Min)
	}

	return dst, nil
}

// Compose plans and renders a composition in one call: overlays are
// resolved against the base image's extent, then composited onto it.
func Compose(base image.Image, overlays []compose.Overlay) (*image.NRGBA, error) {
	canvas, err := compose.CanvasFor(base)
	if err != nil {
		return nil, err
	}
	layers, err := compose.Plan(canvas, overlays)
	if err != nil {
		return nil, err
	}
	return CompositeLayers(base, layers)
}
