package engine

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Open decodes an image file. The format is detected from the contents.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("engine: open %s: %w", path, err)
	}
	return img, nil
}

// Save encodes an image to a file, choosing the format from the extension.
// quality applies to JPEG output only; values outside 1-100 fall back to
// the encoder default.
func Save(img image.Image, path string, quality int) error {
	var opts []imaging.EncodeOption
	if quality >= 1 && quality <= 100 {
		opts = append(opts, imaging.JPEGQuality(quality))
	}
	if err := imaging.Save(img, path, opts...); err != nil {
		return fmt.Errorf("engine: save %s: %w", path, err)
	}
	return nil
}
