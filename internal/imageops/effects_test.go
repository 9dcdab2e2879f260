package imageops

import (
	"image/color"
	"testing"
)

func TestBlur(t *testing.T) {
	img := createPatternImage(40, 40)

	result, err := Blur(img, 2.5)
	if err != nil {
		t.Fatalf("Blur failed: %v", err)
	}
	if result.Width != 40 || result.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", result.Width, result.Height)
	}

	if _, err := Blur(img, 0); err == nil {
		t.Error("Blur should fail for non-positive sigma")
	}
}

func TestSharpen(t *testing.T) {
	img := createPatternImage(40, 40)

	if _, err := Sharpen(img, 1.0); err != nil {
		t.Fatalf("Sharpen failed: %v", err)
	}
	if _, err := Sharpen(img, -1); err == nil {
		t.Error("Sharpen should fail for negative sigma")
	}
}

func TestEdgeDetect(t *testing.T) {
	img := createPatternImage(40, 40)

	result, err := EdgeDetect(img, 1.0)
	if err != nil {
		t.Fatalf("EdgeDetect failed: %v", err)
	}
	if result.Width != 40 || result.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", result.Width, result.Height)
	}

	if _, err := EdgeDetect(img, 0); err == nil {
		t.Error("EdgeDetect should fail for non-positive radius")
	}
}

func TestEmboss(t *testing.T) {
	img := createSolidImage(30, 30, color.RGBA{100, 150, 200, 255})

	result, err := Emboss(img)
	if err != nil {
		t.Fatalf("Emboss failed: %v", err)
	}
	if result.Width != 30 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 30x30", result.Width, result.Height)
	}
}

func TestHistogram(t *testing.T) {
	img := createSolidImage(10, 10, color.RGBA{255, 0, 0, 255})

	h, err := Histogram(img)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	if len(h.R) != 256 || len(h.G) != 256 || len(h.B) != 256 || len(h.A) != 256 {
		t.Fatalf("bin counts: got R=%d G=%d B=%d A=%d, want 256 each",
			len(h.R), len(h.G), len(h.B), len(h.A))
	}

	// All 100 pixels are pure red.
	if h.R[255] != 100 {
		t.Errorf("R[255]: got %d, want 100", h.R[255])
	}
	if h.G[0] != 100 {
		t.Errorf("G[0]: got %d, want 100", h.G[0])
	}
}
