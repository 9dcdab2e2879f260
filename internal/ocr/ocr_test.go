package ocr

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	if got := normalizeLanguage(""); got != DefaultLanguage {
		t.Errorf("empty language: got %s, want %s", got, DefaultLanguage)
	}
	if got := normalizeLanguage("deu"); got != "deu" {
		t.Errorf("explicit language: got %s, want deu", got)
	}
}
