// SPDX-License-Identifier: Unlicense OR MIT

// Package font describes fonts by their typeface, variant, style and
// weight, and pairs them with the parsed faces that draw them.
package font

import (
	"fmt"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Font selects a face from a collection. The zero Font is the regular
// face of the default typeface.
type Font struct {
	// Typeface is the family name, such as "Go". Empty matches any
	// family.
	Typeface Typeface
	// Variant is a sub-family such as "Mono" or "Smallcaps".
	Variant Variant
	Style   Style
	Weight  Weight
}

type (
	Typeface string
	Variant  string
)

// Style is upright or italic.
type Style uint8

const (
	Regular Style = iota
	Italic
)

// Weight is the stroke thickness, in CSS units offset by -400 so that
// the zero value is the normal weight.
type Weight int16

const (
	Light  Weight = -100
	Normal Weight = 0
	Medium Weight = 100
	Bold   Weight = 300
)

// Face is a parsed font that can be measured and sized.
type Face interface {
	// Face returns a face rasterizing at ppem pixels per em. The
	// returned face is not safe for concurrent use.
	Face(ppem fixed.Int26_6) (xfont.Face, error)
	// Metrics returns the horizontal line metrics at ppem.
	Metrics(ppem fixed.Int26_6) Metrics
	// Advance returns the width of a line of s at ppem.
	Advance(ppem fixed.Int26_6, s string) fixed.Int26_6
}

// Metrics are the vertical extents of a line, in pixels. Descent is
// positive below the baseline.
type Metrics struct {
	Ascent, Descent, LineGap fixed.Int26_6
}

// Height is the distance between consecutive baselines.
func (m Metrics) Height() fixed.Int26_6 {
	return m.Ascent + m.Descent + m.LineGap
}

// FontFace is a Font with the Face drawing it.
type FontFace struct {
	Font Font
	Face Face
}

func (f Font) String() string {
	var b strings.Builder
	b.WriteString(string(f.Typeface))
	if f.Typeface == "" {
		b.WriteString("default")
	}
	if f.Variant != "" {
		b.WriteString(" " + string(f.Variant))
	}
	if f.Weight != Normal {
		b.WriteString(" " + f.Weight.String())
	}
	if f.Style != Regular {
		b.WriteString(" " + f.Style.String())
	}
	return b.String()
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("unreachable")
	}
}

func (w Weight) String() string {
	switch w {
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case Bold:
		return "Bold"
	default:
		return fmt.Sprintf("Weight(%d)", 400+int(w))
	}
}
