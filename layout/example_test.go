// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"
	"image"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/layout"
)

func ExampleLayout() {
	header := component.NewPanel("header")
	body := component.NewPanel("body")
	footer := component.NewPanel("footer")

	l := layout.New(layout.TopDown, nil)
	l.AddComponent(header, layout.Append).SetFixedHeight(40)
	l.AddComponent(body, layout.Append).SetStretch(1, 3)
	l.AddComponent(footer, layout.Append)

	l.UpdateGeometryIn(image.Rect(0, 0, 200, 440))
	for _, c := range []*component.Panel{header, body, footer} {
		fmt.Println(c, c.Bounds())
	}

	// Output:
	// header (0,0)-(200,40)
	// body (0,40)-(200,340)
	// footer (0,340)-(200,440)
}

func ExampleAttach() {
	window := component.NewPanel("window")
	left := component.NewPanel("left")
	right := component.NewPanel("right")

	l := layout.Attach(window, layout.RightToLeft)
	l.AddComponent(left, layout.Append)
	l.AddComponent(right, layout.Append)

	// Resizing the window lays out its children.
	window.SetBounds(image.Rect(0, 0, 300, 100))
	fmt.Println(left.Bounds(), right.Bounds())

	// Output:
	// (150,0)-(300,100) (0,0)-(150,100)
}

func ExampleLayout_AddSubLayout() {
	a := component.NewPanel("a")
	b := component.NewPanel("b")
	c := component.NewPanel("c")

	l := layout.New(layout.LeftToRight, nil)
	l.AddComponent(a, layout.Append)
	col := l.AddSubLayout(layout.BottomUp, layout.Append, nil)
	col.AddComponent(b, layout.Append)
	col.AddComponent(c, layout.Append)

	// Across its own axis the column weighs as much as its
	// heaviest item.
	l.UpdateGeometryIn(image.Rect(0, 0, 300, 100))
	fmt.Println(a.Bounds(), b.Bounds(), c.Bounds())

	// Output:
	// (0,0)-(150,100) (150,50)-(300,100) (150,0)-(300,50)
}
