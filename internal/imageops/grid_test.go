package imageops

import (
	"image/color"
	"testing"
)

func TestGridOverlay(t *testing.T) {
	img := createSolidImage(100, 80, color.RGBA{255, 255, 255, 255})

	result, err := GridOverlay(img, 25, "#FF0000")
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}
	if result.Width != 100 || result.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", result.Width, result.Height)
	}
	if result.GridSpacing != 25 {
		t.Errorf("spacing: got %d, want 25", result.GridSpacing)
	}
}

func TestGridOverlay_BadColorFallsBack(t *testing.T) {
	img := createSolidImage(50, 50, color.RGBA{A: 255})

	if _, err := GridOverlay(img, 10, "notacolor"); err != nil {
		t.Errorf("GridOverlay should fall back to the default color, got %v", err)
	}
}

func TestGridOverlay_InvalidSpacing(t *testing.T) {
	img := createSolidImage(50, 50, color.RGBA{A: 255})

	for _, spacing := range []int{0, -10} {
		if _, err := GridOverlay(img, spacing, "#FF0000"); err == nil {
			t.Errorf("GridOverlay should fail for spacing %d", spacing)
		}
	}
}
