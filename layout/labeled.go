// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/text"
	"github.com/boxlayout/boxlayout/widget"
)

// AddLabeledComponent groups c with a new label in a sub-layout of
// orientation o inserted at index. The label comes first and its
// height is fixed to its font height; c takes the remaining space.
// The label is added to the owner, c is not.
//
// AddLabeledComponent panics if the layout has no owner, since the
// label could never be shown.
func (l *Layout) AddLabeledComponent(c component.Component, o Orientation, index int) (*Item, *widget.Label) {
	if l.owner == nil {
		panic("layout: labeled component in a layout without owner")
	}
	label := widget.NewLabel(l.shaper)
	label.Metric = l.metric
	l.owner.AddAndMakeVisible(label)

	sub := l.AddSubLayout(o, index, l.owner)
	labelItem := sub.AddComponent(label, Append)
	labeled := NewLabeledItem(c, label)
	sub.AddRawItem(labeled, Append)

	labelItem.SetFixedHeight(label.FontHeight())

	l.UpdateGeometry()
	return labeled, label
}

// AddLabeledText is like AddLabeledComponent, with the label showing
// txt centred.
func (l *Layout) AddLabeledText(c component.Component, txt string, o Orientation, index int) *Item {
	it, label := l.AddLabeledComponent(c, o, index)
	label.SetText(txt)
	label.SetJustification(text.Middle)
	return it
}
