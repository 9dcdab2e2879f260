package imageops

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Blur applies a gaussian blur with the given sigma (must be positive).
func Blur(img image.Image, sigma float64) (*ImageResult, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("blur sigma must be positive, got %v", sigma)
	}
	return EncodeResult(imaging.Blur(img, sigma))
}

// Sharpen applies an unsharp mask with the given sigma (must be positive).
func Sharpen(img image.Image, sigma float64) (*ImageResult, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("sharpen sigma must be positive, got %v", sigma)
	}
	return EncodeResult(imaging.Sharpen(img, sigma))
}

// EdgeDetect highlights edges using a convolution kernel of the given
// radius.
func EdgeDetect(img image.Image, radius float64) (*ImageResult, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("edge detection radius must be positive, got %v", radius)
	}
	return EncodeResult(effect.EdgeDetection(img, radius))
}

// Emboss applies an emboss convolution.
func Emboss(img image.Image) (*ImageResult, error) {
	return EncodeResult(effect.Emboss(img))
}
