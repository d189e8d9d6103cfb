// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays. Layout bounds are always in
pixels; use a Metric to convert constraints and font sizes before
handing them to a layout.

*/
package unit

import (
	"math"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float32
	// Sp is like UnitDp but for font sizes.
	Sp float32
)

// DPI returns the Metric for a display with the given resolution in
// dots per inch, taking 160 dpi as the 1dp reference density.
func DPI(dpi float32) Metric {
	s := dpi / 160
	return Metric{PxPerDp: s, PxPerSp: s}
}

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	return int(math.Round(float64(nonZero(c.PxPerSp)) * float64(v)))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
