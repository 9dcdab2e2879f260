package imageops

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// GridOverlayResult contains an image with a coordinate grid drawn on top.
type GridOverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	GridSpacing int    `json:"grid_spacing"`
}

// GridOverlay draws grid lines every spacing pixels over a copy of the
// image, as a positioning aid when planning compositions. colorHex accepts
// "#RRGGBB" or "#RRGGBBAA"; an unparsable color falls back to
// semi-transparent red.
func GridOverlay(img image.Image, spacing int, colorHex string) (*GridOverlayResult, error) {
	if spacing <= 0 {
		return nil, fmt.Errorf("grid spacing must be positive, got %d", spacing)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	lineColor, err := ParseHexColor(colorHex)
	if err != nil {
		lineColor = color.NRGBA{R: 255, A: 128}
	}

	dc := gg.NewContextForImage(img)
	dc.SetColor(lineColor)
	dc.SetLineWidth(1)

	for x := spacing; x < width; x += spacing {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
	}
	for y := spacing; y < height; y += spacing {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("failed to draw grid: %w", err)
	}

	res, err := EncodeResult(dc.Image())
	if err != nil {
		return nil, err
	}
	return &GridOverlayResult{
		Width:       res.Width,
		Height:      res.Height,
		ImageBase64: res.ImageBase64,
		MimeType:    res.MimeType,
		GridSpacing: spacing,
	}, nil
}
