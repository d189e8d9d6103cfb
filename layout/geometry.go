// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"math"
)

// UpdateGeometryIn lays out the items in b.
//
// Items whose component is gone are removed first. Every item then
// claims a share of the main axis proportional to its stretch; items
// whose share is pinned by a minimum or maximum keep the pinned size,
// and the space left is shared among the other items by stretch. The
// cross axis is filled, widened to the largest minimum of any item.
// Sub-layouts are updated with their assigned rectangle.
//
// A call made while the same layout is updating returns immediately.
func (l *Layout) UpdateGeometryIn(b image.Rectangle) {
	if !l.updating.acquire() {
		return
	}
	defer l.updating.release()

	l.deleteItems(func(it *Item) bool {
		return !it.Valid()
	})
	n := len(l.items)
	l.claimed = resize(l.claimed, n)
	l.final = resize(l.final, n)
	l.weights = resize(l.weights, n)

	axis := l.orientation.Vertical()
	stretch := l.weigh(axis)
	extent := axisMain(axis, b.Size())
	cross := axisCross(axis, b.Size())
	available := float32(extent)

	// Claim.
	for i, it := range l.items {
		s := l.weights[i]
		sz := 0
		if stretch > 0 {
			sz = int(float32(extent) * s / stretch)
		}
		cand := image.Rectangle{Min: b.Min}
		cand.Max = b.Min.Add(axisPoint(axis, sz, axisCross(axis, b.Size())))
		r, wChanged, hChanged := it.ConstrainBounds(cand)
		mainChanged, crossChanged := hChanged, wChanged
		if !axis {
			mainChanged, crossChanged = wChanged, hChanged
		}
		main := axisMain(axis, r.Size())
		l.claimed[i] = r
		l.final[i] = mainChanged || it.mainConstraint(axis).binds(main)
		if l.final[i] {
			available -= float32(main)
			stretch -= s
		}
		if crossChanged {
			cross = max(cross, axisCross(axis, r.Size()))
		}
	}

	// Place.
	crossMin := axisCross(axis, b.Min)
	pos := float32(axisMain(axis, b.Min))
	if l.orientation.reversed() {
		pos = float32(axisMain(axis, b.Max))
	}
	for i, it := range l.items {
		var sz float32
		switch {
		case l.final[i]:
			sz = float32(axisMain(axis, l.claimed[i].Size()))
		case stretch > 0:
			sz = available * l.weights[i] / stretch
		}
		if sz < 0 {
			sz = 0
		}
		start, end := pos, pos+sz
		if l.orientation.reversed() {
			start, end = pos-sz, pos
			pos = start
		} else {
			pos = end
		}
		r := axisRect(axis, round(start), round(end), crossMin, crossMin+cross)
		it.bounds = r
		switch it.kind {
		case SubLayoutItem:
			it.sub.UpdateGeometryIn(r)
		case ComponentItem:
			it.comp.SetBounds(r)
		}
	}
}

// weigh records the main axis stretch of every item in l.weights and
// returns their sum. The walk holds the cumulating guard, so an item
// nesting l itself weighs zero here just as it does in
// CumulatedStretch.
func (l *Layout) weigh(vertical bool) float32 {
	if !l.cumulating.acquire() {
		clear(l.weights)
		return 0
	}
	defer l.cumulating.release()

	var sum float32
	for i, it := range l.items {
		x, y := it.Stretch()
		l.weights[i] = axisMainStretch(vertical, x, y)
		sum += l.weights[i]
	}
	return sum
}

// CumulatedStretch returns the stretch of all items: the sum along the
// main axis and the maximum across it. A call made while the same
// layout is cumulating returns zero.
func (l *Layout) CumulatedStretch() (w, h float32) {
	if !l.cumulating.acquire() {
		return 0, 0
	}
	defer l.cumulating.release()

	for _, it := range l.items {
		x, y := it.Stretch()
		if l.orientation.Vertical() {
			w = max(w, x)
			h += y
		} else {
			w += x
			h = max(h, y)
		}
	}
	return w, h
}

func (it *Item) mainConstraint(vertical bool) Constraint {
	if vertical {
		return it.height
	}
	return it.width
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func axisRect(vertical bool, mainMin, mainMax, crossMin, crossMax int) image.Rectangle {
	if vertical {
		return image.Rect(crossMin, mainMin, crossMax, mainMax)
	}
	return image.Rect(mainMin, crossMin, mainMax, crossMax)
}

func axisPoint(vertical bool, main, cross int) image.Point {
	if vertical {
		return image.Point{X: cross, Y: main}
	}
	return image.Point{X: main, Y: cross}
}

func axisMain(vertical bool, sz image.Point) int {
	if vertical {
		return sz.Y
	}
	return sz.X
}

func axisCross(vertical bool, sz image.Point) int {
	if vertical {
		return sz.X
	}
	return sz.Y
}

func axisMainStretch(vertical bool, x, y float32) float32 {
	if vertical {
		return y
	}
	return x
}
