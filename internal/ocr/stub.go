//go:build !cgo

package ocr

// Recognize is unavailable without cgo.
func Recognize(imagePath, language string) (*Result, error) {
	return nil, ErrUnavailable
}
