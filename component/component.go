// SPDX-License-Identifier: Unlicense OR MIT

/*
Package component defines the retained elements that layouts arrange.

A Component is anything with bounds in its parent's coordinate space
and a notion of whether it still exists. A Container is a Component
that hosts children and exposes its client area. Layouts keep
non-owning references to components: destroying a component does not
unlink it from any layout, the layout notices on its next update.
*/
package component

import (
	"image"

	"golang.org/x/exp/slices"
)

// Component is a visual element with bounds.
type Component interface {
	// Bounds returns the rectangle in parent coordinates.
	Bounds() image.Rectangle
	// SetBounds moves and resizes the component.
	SetBounds(r image.Rectangle)
	// Alive reports whether the component has not been destroyed.
	Alive() bool
}

// Container is a Component with children.
type Container interface {
	Component
	// LocalBounds returns the client area, with the origin at the
	// top left corner of the container.
	LocalBounds() image.Rectangle
	// AddAndMakeVisible adds c as a child of the container and makes
	// it visible.
	AddAndMakeVisible(c Component)
}

// Base implements Component. Embed it to build components.
type Base struct {
	// OnResize, if set, is called by SetBounds after the size of the
	// component changed. Moves without a size change do not call it.
	OnResize func()

	bounds    image.Rectangle
	visible   bool
	destroyed bool
}

var _ Component = (*Base)(nil)

func (b *Base) Bounds() image.Rectangle {
	return b.bounds
}

func (b *Base) SetBounds(r image.Rectangle) {
	resized := r.Size() != b.bounds.Size()
	b.bounds = r
	if resized && b.OnResize != nil {
		b.OnResize()
	}
}

// LocalBounds returns the bounds translated to the origin.
func (b *Base) LocalBounds() image.Rectangle {
	return image.Rectangle{Max: b.bounds.Size()}
}

func (b *Base) Alive() bool {
	return !b.destroyed
}

// Destroy marks the component as gone. It cannot be revived.
func (b *Base) Destroy() {
	b.destroyed = true
	b.visible = false
}

func (b *Base) Visible() bool {
	return b.visible
}

func (b *Base) SetVisible(v bool) {
	b.visible = v && !b.destroyed
}

// Panel is a named Container.
type Panel struct {
	Base
	Name string

	children []Component
}

var _ Container = (*Panel)(nil)

// NewPanel returns a visible panel.
func NewPanel(name string) *Panel {
	p := &Panel{Name: name}
	p.SetVisible(true)
	return p
}

func (p *Panel) AddAndMakeVisible(c Component) {
	if c == nil || c == Component(p) {
		return
	}
	if !slices.Contains(p.children, c) {
		p.children = append(p.children, c)
	}
	if v, ok := c.(interface{ SetVisible(bool) }); ok {
		v.SetVisible(true)
	}
}

// RemoveChild detaches c from the panel. It reports whether c was a
// child.
func (p *Panel) RemoveChild(c Component) bool {
	i := slices.Index(p.children, c)
	if i < 0 {
		return false
	}
	p.children = slices.Delete(p.children, i, i+1)
	return true
}

// Children returns the live children in insertion order. Destroyed
// children are dropped.
func (p *Panel) Children() []Component {
	p.children = slices.DeleteFunc(p.children, func(c Component) bool {
		return !c.Alive()
	})
	return slices.Clone(p.children)
}

func (p *Panel) String() string {
	if p.Name == "" {
		return "panel"
	}
	return p.Name
}
