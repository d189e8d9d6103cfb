// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout arranges components in a row or column.

A Layout holds an ordered list of items for one Orientation: wrapped
components, spacers and nested sub-layouts. UpdateGeometry distributes
the owner's client area among the items in proportion to their stretch
weights, after items whose size is pinned by a minimum or maximum have
claimed their share.

	root := component.NewPanel("window")
	l := layout.Attach(root, layout.TopDown)
	l.AddComponent(header, layout.Append).SetFixedHeight(40)
	l.AddComponent(body, layout.Append)
	root.SetBounds(image.Rect(0, 0, 640, 480)) // lays out header and body

Layouts must be used from a single goroutine. Calls that re-enter a
layout while it is computing, such as a resize callback triggered by
the layout itself, are ignored.
*/
package layout

import (
	"image"

	"golang.org/x/exp/slices"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/text"
	"github.com/boxlayout/boxlayout/unit"
)

// Orientation is the main axis and the direction items are placed in.
type Orientation uint8

const (
	TopDown Orientation = iota
	BottomUp
	LeftToRight
	RightToLeft
)

// Append as an index adds the item after the last item.
const Append = -1

// Layout distributes space among a list of items.
type Layout struct {
	orientation Orientation
	owner       component.Container
	shaper      *text.Shaper
	metric      unit.Metric
	items       []*Item

	// Per-update scratch space, sized to items.
	claimed []image.Rectangle
	final   []bool
	weights []float32

	updating   guard
	cumulating guard
}

// guard is a re-entrancy flag. acquire reports false when the guard is
// already held.
type guard bool

func (g *guard) acquire() bool {
	if *g {
		return false
	}
	*g = true
	return true
}

func (g *guard) release() {
	*g = false
}

// New returns an empty layout filling the client area of owner. The
// owner may be nil, in which case the layout is only updated through
// UpdateGeometryIn and cannot create labels.
func New(o Orientation, owner component.Container) *Layout {
	return &Layout{orientation: o, owner: owner}
}

// Attach returns a layout owned by p that updates whenever p is
// resized. A previously installed OnResize hook still runs, before the
// layout update.
func Attach(p *component.Panel, o Orientation) *Layout {
	l := New(o, p)
	prev := p.OnResize
	p.OnResize = func() {
		if prev != nil {
			prev()
		}
		l.UpdateGeometry()
	}
	return l
}

func (l *Layout) Orientation() Orientation {
	return l.orientation
}

// SetOrientation changes the orientation. It takes effect at the next
// update.
func (l *Layout) SetOrientation(o Orientation) {
	l.orientation = o
}

// Owner returns the component whose client area the layout fills.
func (l *Layout) Owner() component.Container {
	return l.owner
}

// SetShaper sets the shaper for labels created by the layout. A nil
// shaper selects the default Go font.
func (l *Layout) SetShaper(sh *text.Shaper) {
	l.shaper = sh
}

// SetMetric sets the density of labels created by the layout. It
// applies to sub-layouts added after the call.
func (l *Layout) SetMetric(m unit.Metric) {
	l.metric = m
}

// Len returns the number of items.
func (l *Layout) Len() int {
	return len(l.items)
}

// Items returns a copy of the item list in layout order.
func (l *Layout) Items() []*Item {
	return slices.Clone(l.items)
}

// AddComponent wraps c in an item at index and updates the layout.
// The returned item can be configured further, but the change only
// shows after the next update.
func (l *Layout) AddComponent(c component.Component, index int) *Item {
	it := NewComponentItem(c)
	l.insert(index, it)
	l.UpdateGeometry()
	return it
}

// RemoveComponent removes the items of this layout that wrap c and
// updates the layout. Sub-layouts are not searched.
func (l *Layout) RemoveComponent(c component.Component) {
	l.deleteItems(func(it *Item) bool {
		return it.IsComponentItem() && it.comp == c
	})
	l.UpdateGeometry()
}

// AddSubLayout inserts a nested layout at index and updates the
// layout. A nil owner shares the owner of l.
func (l *Layout) AddSubLayout(o Orientation, index int, owner component.Container) *SubLayout {
	if owner == nil {
		owner = l.owner
	}
	sub := newSubLayout(o, owner)
	sub.shaper = l.shaper
	sub.metric = l.metric
	l.insert(index, &sub.item)
	l.UpdateGeometry()
	return sub
}

// AddSpacer inserts an empty item with stretch weights sx, sy and
// updates the layout.
func (l *Layout) AddSpacer(sx, sy float32, index int) *Item {
	it := NewSpacerItem(sx, sy)
	l.insert(index, it)
	l.UpdateGeometry()
	return it
}

// AddRawItem inserts it at index without updating the layout.
func (l *Layout) AddRawItem(it *Item, index int) {
	if it == nil {
		return
	}
	l.insert(index, it)
}

// LayoutItem returns the item wrapping c, searching sub-layouts depth
// first, or nil.
func (l *Layout) LayoutItem(c component.Component) *Item {
	for _, it := range l.items {
		switch it.kind {
		case ComponentItem:
			if it.comp == c {
				return it
			}
		case SubLayoutItem:
			if found := it.sub.LayoutItem(c); found != nil {
				return found
			}
		}
	}
	return nil
}

// UpdateGeometry lays out the items in the client area of the owner.
// It does nothing for a layout without owner.
func (l *Layout) UpdateGeometry() {
	if l.owner == nil {
		return
	}
	l.UpdateGeometryIn(l.owner.LocalBounds())
}

func (l *Layout) insert(index int, it *Item) {
	if index < 0 || index > len(l.items) {
		index = len(l.items)
	}
	l.items = slices.Insert(l.items, index, it)
}

func (l *Layout) deleteItems(del func(it *Item) bool) {
	n := len(l.items)
	l.items = slices.DeleteFunc(l.items, del)
	// Drop references held by the tail.
	clear(l.items[len(l.items):n])
}

func (o Orientation) String() string {
	switch o {
	case TopDown:
		return "TopDown"
	case BottomUp:
		return "BottomUp"
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	default:
		panic("unreachable")
	}
}

// Vertical reports whether the main axis is the y axis.
func (o Orientation) Vertical() bool {
	return o == TopDown || o == BottomUp
}

// reversed reports whether items are placed from the far edge.
func (o Orientation) reversed() bool {
	return o == BottomUp || o == RightToLeft
}
