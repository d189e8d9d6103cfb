// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/widget"
)

var palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkseagreen,
	colornames.Goldenrod,
	colornames.Indianred,
	colornames.Mediumpurple,
	colornames.Lightslategray,
}

// render draws the children of root: panels as filled boxes, then
// labels as text on top.
func render(root *component.Panel, scale float64) (image.Image, error) {
	img := image.NewRGBA(root.LocalBounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	var labels []*widget.Label
	n := 0
	for _, c := range root.Children() {
		if l, ok := c.(*widget.Label); ok {
			labels = append(labels, l)
			continue
		}
		r := c.Bounds().Inset(1).Intersect(img.Bounds())
		col := palette[n%len(palette)]
		draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
		n++
	}
	for _, l := range labels {
		if err := drawLabel(img, l); err != nil {
			return nil, err
		}
	}

	if scale == 1 {
		return img, nil
	}
	sz := img.Bounds().Size()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(sz.X)*scale), int(float64(sz.Y)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

func drawLabel(dst draw.Image, l *widget.Label) error {
	face, err := l.Face()
	if err != nil {
		return err
	}
	dot, err := l.Baseline()
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colornames.Black),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(l.Text())
	return nil
}
