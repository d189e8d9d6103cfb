// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/font"
	"github.com/boxlayout/boxlayout/font/gofont"
	"github.com/boxlayout/boxlayout/text"
	"github.com/boxlayout/boxlayout/unit"
)

// DefaultTextSize is the text size of new labels.
const DefaultTextSize = unit.Sp(15)

// Label is a component displaying a single line of text.
type Label struct {
	component.Base

	// Alignment specify the text alignment.
	Alignment text.Alignment
	// Font selects the face from the shaper collection.
	Font font.Font
	// TextSize is the font size.
	TextSize unit.Sp
	// Metric converts TextSize to pixels.
	Metric unit.Metric

	shaper *text.Shaper
	text   string
}

var (
	defaultOnce   sync.Once
	defaultShaper *text.Shaper
)

// DefaultShaper returns the shaper for the Go regular font, shared by
// labels created without one.
func DefaultShaper() *text.Shaper {
	defaultOnce.Do(func() {
		defaultShaper = text.NewShaper(gofont.Regular())
	})
	return defaultShaper
}

// NewLabel returns a hidden, empty label. A nil shaper selects
// DefaultShaper.
func NewLabel(sh *text.Shaper) *Label {
	if sh == nil {
		sh = DefaultShaper()
	}
	return &Label{
		TextSize: DefaultTextSize,
		shaper:   sh,
	}
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(txt string) {
	l.text = txt
}

// SetJustification sets the horizontal text alignment.
func (l *Label) SetJustification(a text.Alignment) {
	l.Alignment = a
}

func (l *Label) ppem() fixed.Int26_6 {
	return fixed.I(l.Metric.Sp(l.TextSize))
}

// Face returns the sized face used to draw the label.
func (l *Label) Face() (xfont.Face, error) {
	return l.shaper.Face(l.Font, l.ppem())
}

// FontHeight returns the line height of the label font in pixels. If
// the font cannot be sized, the em size is returned.
func (l *Label) FontHeight() int {
	h, err := l.shaper.LineHeight(l.Font, l.ppem())
	if err != nil {
		return l.ppem().Ceil()
	}
	return h
}

// Baseline returns the origin of the text baseline in parent
// coordinates. The line is aligned horizontally by Alignment and
// centered vertically.
func (l *Label) Baseline() (image.Point, error) {
	ppem := l.ppem()
	m, err := l.shaper.Metrics(l.Font, ppem)
	if err != nil {
		return image.Point{}, err
	}
	adv, err := l.shaper.Advance(l.Font, ppem, l.text)
	if err != nil {
		return image.Point{}, err
	}
	b := l.Bounds()
	x := l.Alignment.Offset(adv, b.Dx())
	lineH := (m.Ascent + m.Descent).Ceil()
	y := (b.Dy()-lineH)/2 + m.Ascent.Ceil()
	return b.Min.Add(image.Pt(x, y)), nil
}
