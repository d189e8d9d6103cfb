// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/layout"
	"github.com/boxlayout/boxlayout/layoutfile"
)

var (
	sizeFlag = flag.String("size", "640x480", "window size, WIDTHxHEIGHT in pixels.")
	destPath = flag.String("o", "", "write a PNG rendering to this file.")
	scale    = flag.Float64("scale", 1, "scale factor of the PNG rendering.")
	verbose  = flag.Bool("v", false, "print the whole item tree.")
)

type runInfo struct {
	path    string
	size    image.Point
	dest    string
	scale   float64
	verbose bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "boxlayout: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	path := flag.Arg(0)
	if path == "" {
		return errors.New("specify a layout file")
	}
	sz, err := parseSize(*sizeFlag)
	if err != nil {
		return err
	}
	if *scale <= 0 {
		return fmt.Errorf("invalid -scale %g", *scale)
	}
	return run(os.Stdout, runInfo{
		path:    path,
		size:    sz,
		dest:    *destPath,
		scale:   *scale,
		verbose: *verbose,
	})
}

func run(w io.Writer, ri runInfo) error {
	f, err := layoutfile.Load(ri.path)
	if err != nil {
		return err
	}
	root := component.NewPanel("window")
	root.SetBounds(image.Rectangle{Max: ri.size})
	l, panels, err := f.Build(root)
	if err != nil {
		return fmt.Errorf("%s: %w", ri.path, err)
	}

	if ri.verbose {
		printTree(w, l, 0)
	} else {
		names := make([]string, 0, len(panels))
		for name := range panels {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s %v\n", name, panels[name].Bounds())
		}
	}

	if ri.dest == "" {
		return nil
	}
	img, err := render(root, ri.scale)
	if err != nil {
		return err
	}
	out, err := os.Create(ri.dest)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printTree(w io.Writer, l *layout.Layout, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, it := range l.Items() {
		sx, sy := it.Stretch()
		switch {
		case it.IsSubLayout():
			sub := it.SubLayout()
			fmt.Fprintf(w, "%slayout %v %v stretch=(%g,%g)\n", indent, sub.Orientation(), it.Bounds(), sx, sy)
			printTree(w, sub, depth+1)
		case it.IsSpacer():
			fmt.Fprintf(w, "%sspacer %v stretch=(%g,%g)\n", indent, it.Bounds(), sx, sy)
		default:
			fmt.Fprintf(w, "%s%v %v stretch=(%g,%g)\n", indent, describe(it.Component()), it.Bounds(), sx, sy)
		}
	}
}

func describe(c component.Component) string {
	switch c := c.(type) {
	case *component.Panel:
		return c.String()
	case interface{ Text() string }:
		return strconv.Quote(c.Text())
	default:
		return fmt.Sprintf("%T", c)
	}
}

func parseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid -size %q, want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return image.Point{}, fmt.Errorf("invalid -size width %q", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return image.Point{}, fmt.Errorf("invalid -size height %q", hs)
	}
	return image.Pt(w, h), nil
}
