package imageops

import (
	"image"

	"github.com/anthonynsimon/bild/histogram"
)

// HistogramResult contains per-channel 256-bin histograms.
type HistogramResult struct {
	R []int `json:"r"`
	G []int `json:"g"`
	B []int `json:"b"`
	A []int `json:"a"`
}

// Histogram counts pixel values per channel across the whole image.
func Histogram(img image.Image) (*HistogramResult, error) {
	h := histogram.NewRGBAHistogram(img)
	return &HistogramResult{
		R: h.R.Bins,
		G: h.G.Bins,
		B: h.B.Bins,
		A: h.A.Bins,
	}, nil
}
