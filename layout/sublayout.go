// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/boxlayout/boxlayout/component"
)

// SubLayout is a Layout that takes part in a parent layout as a single
// item. Its stretch is the cumulated stretch of its own items.
type SubLayout struct {
	Layout
	item Item
}

func newSubLayout(o Orientation, owner component.Container) *SubLayout {
	s := &SubLayout{
		Layout: Layout{orientation: o, owner: owner},
		item:   newItem(SubLayoutItem),
	}
	s.item.sub = &s.Layout
	return s
}

// Item returns the item representing s in its parent. Use it to
// constrain the size of the whole group.
func (s *SubLayout) Item() *Item {
	return &s.item
}

// Stretch is the cumulated stretch of the items of s.
func (s *SubLayout) Stretch() (x, y float32) {
	return s.item.Stretch()
}

func (s *SubLayout) Valid() bool {
	return s.item.Valid()
}

func (s *SubLayout) ConstrainBounds(r image.Rectangle) (image.Rectangle, bool, bool) {
	return s.item.ConstrainBounds(r)
}
