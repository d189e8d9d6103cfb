// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"math"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/widget"
)

// Kind discriminates the payload of an Item.
type Kind uint8

const (
	ComponentItem Kind = iota
	SpacerItem
	SubLayoutItem
)

// Unbounded is the maximum of an unconstrained axis.
const Unbounded = math.MaxInt32

// Constraint is a range of acceptable sizes in a single dimension.
type Constraint struct {
	Min, Max int
}

// Constrain a value to the range [Min; Max].
func (c Constraint) Constrain(v int) int {
	if v < c.Min {
		return c.Min
	} else if v > c.Max {
		return c.Max
	}
	return v
}

// binds reports whether v is at or beyond a bound that was set.
func (c Constraint) binds(v int) bool {
	return (c.Min > 0 && v <= c.Min) || (c.Max < Unbounded && v >= c.Max)
}

// Item is a slot in a Layout: a component, a spacer or a sub-layout.
type Item struct {
	kind  Kind
	comp  component.Component
	label *widget.Label
	sub   *Layout

	stretchX, stretchY float32
	width, height      Constraint

	bounds image.Rectangle
}

func newItem(k Kind) Item {
	return Item{
		kind:     k,
		stretchX: 1,
		stretchY: 1,
		width:    Constraint{Max: Unbounded},
		height:   Constraint{Max: Unbounded},
	}
}

// NewComponentItem returns an item for c with stretch (1, 1).
func NewComponentItem(c component.Component) *Item {
	it := newItem(ComponentItem)
	it.comp = c
	return &it
}

// NewSpacerItem returns an empty item with stretch (sx, sy).
func NewSpacerItem(sx, sy float32) *Item {
	it := newItem(SpacerItem)
	it.SetStretch(sx, sy)
	return &it
}

// NewLabeledItem returns a component item for c that carries the
// label describing it.
func NewLabeledItem(c component.Component, label *widget.Label) *Item {
	it := NewComponentItem(c)
	it.label = label
	return it
}

func (it *Item) Kind() Kind {
	return it.kind
}

func (it *Item) IsComponentItem() bool {
	return it.kind == ComponentItem
}

func (it *Item) IsSpacer() bool {
	return it.kind == SpacerItem
}

func (it *Item) IsSubLayout() bool {
	return it.kind == SubLayoutItem
}

// Component returns the wrapped component, or nil.
func (it *Item) Component() component.Component {
	return it.comp
}

// Label returns the label of a labeled item, or nil.
func (it *Item) Label() *widget.Label {
	return it.label
}

// SubLayout returns the nested layout of a sub-layout item, or nil.
func (it *Item) SubLayout() *Layout {
	return it.sub
}

// Bounds returns the rectangle assigned by the last update.
func (it *Item) Bounds() image.Rectangle {
	return it.bounds
}

// Stretch returns the stretch weights. For a sub-layout they are the
// cumulated stretch of its items.
func (it *Item) Stretch() (x, y float32) {
	if it.kind == SubLayoutItem {
		return it.sub.CumulatedStretch()
	}
	return it.stretchX, it.stretchY
}

// SetStretch sets the stretch weights. Negative weights count as
// zero. Sub-layouts ignore their own weights.
func (it *Item) SetStretch(x, y float32) {
	it.stretchX = max(x, 0)
	it.stretchY = max(y, 0)
}

// Width returns the width constraint.
func (it *Item) Width() Constraint {
	return it.width
}

// Height returns the height constraint.
func (it *Item) Height() Constraint {
	return it.height
}

func (it *Item) SetMinimumWidth(w int) {
	it.width.Min = max(w, 0)
}

func (it *Item) SetMaximumWidth(w int) {
	it.width.Max = max(w, 0)
}

func (it *Item) SetMinimumHeight(h int) {
	it.height.Min = max(h, 0)
}

func (it *Item) SetMaximumHeight(h int) {
	it.height.Max = max(h, 0)
}

// SetFixedWidth sets both width bounds to w.
func (it *Item) SetFixedWidth(w int) {
	it.SetMinimumWidth(w)
	it.SetMaximumWidth(w)
}

// SetFixedHeight sets both height bounds to h.
func (it *Item) SetFixedHeight(h int) {
	it.SetMinimumHeight(h)
	it.SetMaximumHeight(h)
}

// ConstrainBounds clamps the size of r to the item constraints,
// keeping r.Min. It reports which dimensions were changed.
func (it *Item) ConstrainBounds(r image.Rectangle) (_ image.Rectangle, widthChanged, heightChanged bool) {
	w, h := r.Dx(), r.Dy()
	cw, ch := it.width.Constrain(w), it.height.Constrain(h)
	r.Max = r.Min.Add(image.Pt(cw, ch))
	return r, cw != w, ch != h
}

// Valid reports whether the item still has something to lay out.
// Component items become invalid once their component is gone.
func (it *Item) Valid() bool {
	switch it.kind {
	case ComponentItem:
		return it.comp != nil && it.comp.Alive()
	case SubLayoutItem:
		return it.sub != nil
	default:
		return true
	}
}

func (k Kind) String() string {
	switch k {
	case ComponentItem:
		return "ComponentItem"
	case SpacerItem:
		return "SpacerItem"
	case SubLayoutItem:
		return "SubLayoutItem"
	default:
		panic("unreachable")
	}
}
