// SPDX-License-Identifier: Unlicense OR MIT

package component

import (
	"image"
	"testing"
)

func TestSetBoundsResize(t *testing.T) {
	var calls int
	b := &Base{OnResize: func() { calls++ }}
	b.SetBounds(image.Rect(0, 0, 10, 10))
	b.SetBounds(image.Rect(5, 5, 15, 15))
	if calls != 1 {
		t.Errorf("a move without resize fired OnResize: %d calls, want 1", calls)
	}
	b.SetBounds(image.Rect(5, 5, 25, 15))
	if calls != 2 {
		t.Errorf("got %d calls, want 2", calls)
	}
	if got, want := b.LocalBounds(), image.Rect(0, 0, 20, 10); got != want {
		t.Errorf("LocalBounds = %v, want %v", got, want)
	}
}

func TestDestroy(t *testing.T) {
	p := NewPanel("root")
	c := NewPanel("child")
	p.AddAndMakeVisible(c)
	p.AddAndMakeVisible(c)
	if n := len(p.Children()); n != 1 {
		t.Fatalf("got %d children, want 1", n)
	}
	c.Destroy()
	if c.Alive() {
		t.Error("destroyed panel is alive")
	}
	if c.Visible() {
		t.Error("destroyed panel is visible")
	}
	c.SetVisible(true)
	if c.Visible() {
		t.Error("destroyed panel became visible again")
	}
	if n := len(p.Children()); n != 0 {
		t.Errorf("got %d children after destroy, want 0", n)
	}
}

func TestAddAndMakeVisible(t *testing.T) {
	p := NewPanel("root")
	c := &Panel{Name: "hidden"}
	if c.Visible() {
		t.Fatal("zero panel is visible")
	}
	p.AddAndMakeVisible(c)
	if !c.Visible() {
		t.Error("child not made visible")
	}
	p.AddAndMakeVisible(p)
	p.AddAndMakeVisible(nil)
	if n := len(p.Children()); n != 1 {
		t.Errorf("got %d children, want 1", n)
	}
	if !p.RemoveChild(c) || p.RemoveChild(c) {
		t.Error("RemoveChild did not report membership")
	}
}
