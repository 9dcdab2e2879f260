package compose

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BlendMode is a canonical pixel-combination rule from the fixed registry.
// The set mirrors the compositing operators the rendering backend supports;
// identifiers outside it fail validation rather than passing through.
type BlendMode int

const (
	BlendOver BlendMode = iota
	BlendAdd
	BlendColorBurn
	BlendColorDodge
	BlendDarken
	BlendDifference
	BlendDivide
	BlendExclusion
	BlendLighten
	BlendLinearBurn
	BlendLinearLight
	BlendMultiply
	BlendOverlay
	BlendScreen
	BlendSoftLight
	BlendSubtract
)

var blendNames = map[string]BlendMode{
	"over":         BlendOver,
	"add":          BlendAdd,
	"color_burn":   BlendColorBurn,
	"color_dodge":  BlendColorDodge,
	"darken":       BlendDarken,
	"difference":   BlendDifference,
	"divide":       BlendDivide,
	"exclusion":    BlendExclusion,
	"lighten":      BlendLighten,
	"linear_burn":  BlendLinearBurn,
	"linear_light": BlendLinearLight,
	"multiply":     BlendMultiply,
	"overlay":      BlendOverlay,
	"screen":       BlendScreen,
	"soft_light":   BlendSoftLight,
	"subtract":     BlendSubtract,
}

// blendOrder lists canonical names in registry declaration order.
var blendOrder = []string{
	"over", "add", "color_burn", "color_dodge", "darken", "difference",
	"divide", "exclusion", "lighten", "linear_burn", "linear_light",
	"multiply", "overlay", "screen", "soft_light", "subtract",
}

func (m BlendMode) String() string {
	for name, mode := range blendNames {
		if mode == m {
			return name
		}
	}
	return fmt.Sprintf("blend(%d)", int(m))
}

// MarshalJSON implements json.Marshaler, emitting the canonical name.
func (m BlendMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// ParseBlendMode validates a symbolic blend-mode identifier against the
// registry. The empty string defaults to BlendOver. Matching is
// case-insensitive and treats "-" and "_" as interchangeable; unknown
// identifiers wrap ErrUnsupportedBlendMode with the offending value.
func ParseBlendMode(s string) (BlendMode, error) {
	if s == "" {
		return BlendOver, nil
	}
	norm := strings.ReplaceAll(strings.ToLower(s), "-", "_")
	mode, ok := blendNames[norm]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBlendMode, s)
	}
	return mode, nil
}

// BlendModes returns the canonical names of every supported blend mode.
func BlendModes() []string {
	out := make([]string, len(blendOrder))
	copy(out, blendOrder)
	return out
}
