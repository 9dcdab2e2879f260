// Package ocr provides text extraction from images via Tesseract.
//
// Recognition requires CGO and the system Tesseract libraries; without them
// the package compiles to a stub whose Recognize returns ErrUnavailable, so
// the rest of the server works unchanged.
package ocr

import "errors"

// ErrUnavailable reports that this build has no OCR support.
var ErrUnavailable = errors.New("ocr: not available in this build (requires cgo and tesseract)")

// DefaultLanguage is the Tesseract language code used when none is given.
const DefaultLanguage = "eng"

// Bounds is a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Word is one recognized word with its location and confidence (0.0-1.0).
type Word struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Bounds     Bounds  `json:"bounds"`
}

// Result contains the complete output of text recognition.
type Result struct {
	// FullText is all recognized text with original spacing and newlines.
	FullText string `json:"full_text"`

	// Words lists individual words with bounding boxes. May be empty if
	// box extraction fails; FullText is still populated.
	Words []Word `json:"words"`
}

// normalizeLanguage applies the default language code.
func normalizeLanguage(language string) string {
	if language == "" {
		return DefaultLanguage
	}
	return language
}
