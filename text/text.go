// SPDX-License-Identifier: Unlicense OR MIT

// Package text resolves fonts to line metrics for components that
// display text.
package text

import (
	"golang.org/x/image/math/fixed"
)

// Alignment is the horizontal placement of a line within its bounds.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Offset returns the x offset in pixels of a line advancing adv in a
// box width pixels wide. Lines wider than the box start at a negative
// offset for End and Middle.
func (a Alignment) Offset(adv fixed.Int26_6, width int) int {
	slack := fixed.I(width) - adv
	switch a {
	case Start:
		return 0
	case End:
		return slack.Floor()
	case Middle:
		return (slack / 2).Floor()
	default:
		panic("unreachable")
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}
