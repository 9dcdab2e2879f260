package compose

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// axis distinguishes horizontal from vertical resolution so keyword and
// baseline values can be checked against the axis they are used on.
type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) String() string {
	if a == axisX {
		return "x"
	}
	return "y"
}

// Keyword is a canvas-relative named position for one axis.
type Keyword int

const (
	KeywordLeft Keyword = iota
	KeywordCenter
	KeywordRight
	KeywordTop
	KeywordMiddle
	KeywordBottom
)

var keywordNames = map[Keyword]string{
	KeywordLeft:   "left",
	KeywordCenter: "center",
	KeywordRight:  "right",
	KeywordTop:    "top",
	KeywordMiddle: "middle",
	KeywordBottom: "bottom",
}

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return fmt.Sprintf("keyword(%d)", int(k))
}

// parseKeyword accepts keywords for either axis; axis compatibility is
// checked at resolution time.
func parseKeyword(s string) (Keyword, bool) {
	for k, name := range keywordNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

func (k Keyword) validFor(a axis) bool {
	switch k {
	case KeywordLeft, KeywordCenter, KeywordRight:
		return a == axisX
	case KeywordTop, KeywordMiddle, KeywordBottom:
		return a == axisY
	}
	return false
}

type positionKind int

const (
	posUnset positionKind = iota
	posAbsolute
	posKeyword
)

// Position is one axis of an overlay's placement rule: unset, an absolute
// pixel offset, or a canvas-relative keyword. The zero value is unset, which
// defers to the relative delta and baseline during resolution.
//
// Position marshals to and from JSON as null (unset), a number (absolute),
// or a string (keyword).
type Position struct {
	kind positionKind
	abs  int
	kw   Keyword
}

// Abs returns an absolute pixel position.
func Abs(v int) Position {
	return Position{kind: posAbsolute, abs: v}
}

// At returns a keyword position.
func At(k Keyword) Position {
	return Position{kind: posKeyword, kw: k}
}

// IsSet reports whether the position carries an absolute or keyword value.
func (p Position) IsSet() bool {
	return p.kind != posUnset
}

func (p Position) String() string {
	switch p.kind {
	case posAbsolute:
		return strconv.Itoa(p.abs)
	case posKeyword:
		return p.kw.String()
	}
	return "unset"
}

// MarshalJSON implements json.Marshaler.
func (p Position) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case posAbsolute:
		return json.Marshal(p.abs)
	case posKeyword:
		return json.Marshal(p.kw.String())
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON number becomes an
// absolute position, a string becomes a keyword, and null leaves the
// position unset. Unknown keyword strings wrap ErrInvalidPosition.
func (p *Position) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Position{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Abs(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, data)
	}
	k, ok := parseKeyword(s)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	*p = At(k)
	return nil
}

// Baseline names the edge of the previous placement from which a relative
// delta is measured. The zero value, BaselineAuto, means the trailing edge:
// right for the x-axis and bottom for the y-axis.
type Baseline int

const (
	BaselineAuto Baseline = iota
	BaselineLeft
	BaselineCenter
	BaselineRight
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

var baselineNames = map[Baseline]string{
	BaselineAuto:   "",
	BaselineLeft:   "left",
	BaselineCenter: "center",
	BaselineRight:  "right",
	BaselineTop:    "top",
	BaselineMiddle: "middle",
	BaselineBottom: "bottom",
}

func (b Baseline) String() string {
	if name, ok := baselineNames[b]; ok {
		if name == "" {
			return "auto"
		}
		return name
	}
	return fmt.Sprintf("baseline(%d)", int(b))
}

// MarshalJSON implements json.Marshaler.
func (b Baseline) MarshalJSON() ([]byte, error) {
	name, ok := baselineNames[b]
	if !ok {
		return nil, fmt.Errorf("%w: baseline %d", ErrInvalidPosition, int(b))
	}
	return json.Marshal(name)
}

// UnmarshalJSON implements json.Unmarshaler. An empty string or null yields
// BaselineAuto; unknown names wrap ErrInvalidPosition.
func (b *Baseline) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = BaselineAuto
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, data)
	}
	for bl, name := range baselineNames {
		if name == s {
			*b = bl
			return nil
		}
	}
	return fmt.Errorf("%w: baseline %q", ErrInvalidPosition, s)
}

func (b Baseline) validFor(a axis) bool {
	if b == BaselineAuto {
		return true
	}
	switch b {
	case BaselineLeft, BaselineCenter, BaselineRight:
		return a == axisX
	case BaselineTop, BaselineMiddle, BaselineBottom:
		return a == axisY
	}
	return false
}

// resolveAxis computes the absolute offset for one axis of an overlay.
//
// refExtent is the canvas extent on this axis, prevOffset/prevExtent the
// previous placement, overlayExtent the overlay's own extent. Rules are
// evaluated in order: absolute wins outright (delta and baseline ignored),
// keywords resolve against the canvas, and an unset position resolves from
// the baseline edge of the previous placement plus delta.
func resolveAxis(a axis, refExtent, prevOffset, prevExtent, overlayExtent int, pos Position, delta int, base Baseline) (int, error) {
	switch pos.kind {
	case posAbsolute:
		return pos.abs, nil

	case posKeyword:
		if !pos.kw.validFor(a) {
			return 0, fmt.Errorf("%w: keyword %q on %s-axis", ErrInvalidPosition, pos.kw, a)
		}
		switch pos.kw {
		case KeywordLeft, KeywordTop:
			return 0, nil
		case KeywordRight, KeywordBottom:
			return refExtent - overlayExtent, nil
		default: // center, middle
			return (refExtent - overlayExtent) / 2, nil
		}

	default: // unset: measure from the previous placement's baseline edge
		if !base.validFor(a) {
			return 0, fmt.Errorf("%w: baseline %q on %s-axis", ErrInvalidPosition, base, a)
		}
		switch base {
		case BaselineLeft, BaselineTop:
			return prevOffset + delta, nil
		case BaselineCenter, BaselineMiddle:
			return prevOffset + prevExtent/2 + delta, nil
		default: // auto, right, bottom: trailing edge
			return prevOffset + prevExtent + delta, nil
		}
	}
}
