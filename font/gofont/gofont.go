// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont provides the Go fonts as a collection under the
// typeface name "Go".
//
// The font data comes from the golang.org/x/image/font/gofont
// packages. Faces are parsed on first use.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"github.com/boxlayout/boxlayout/font"
	"github.com/boxlayout/boxlayout/font/opentype"
)

// Typeface is the typeface of every face in the collection.
const Typeface font.Typeface = "Go"

type ttf struct {
	font font.Font
	data []byte
}

// sources lists the faces in collection order. The regular face must
// stay first.
var sources = []ttf{
	{font.Font{}, goregular.TTF},
	{font.Font{Style: font.Italic}, goitalic.TTF},
	{font.Font{Weight: font.Bold}, gobold.TTF},
	{font.Font{Weight: font.Bold, Style: font.Italic}, gobolditalic.TTF},
	{font.Font{Weight: font.Medium}, gomedium.TTF},
	{font.Font{Weight: font.Medium, Style: font.Italic}, gomediumitalic.TTF},
	{font.Font{Variant: "Mono"}, gomono.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold}, gomonobold.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold, Style: font.Italic}, gomonobolditalic.TTF},
	{font.Font{Variant: "Mono", Style: font.Italic}, gomonoitalic.TTF},
	{font.Font{Variant: "Smallcaps"}, gosmallcaps.TTF},
	{font.Font{Variant: "Smallcaps", Style: font.Italic}, gosmallcapsitalic.TTF},
}

var (
	regularOnce sync.Once
	regular     font.FontFace
	allOnce     sync.Once
	all         []font.FontFace
)

// Regular returns a collection with only the Go regular face.
func Regular() []font.FontFace {
	regularOnce.Do(func() {
		regular = parse(sources[0])
	})
	return []font.FontFace{regular}
}

// Collection returns every Go face, the regular face first. The
// returned slice is shared and must not be modified.
func Collection() []font.FontFace {
	allOnce.Do(func() {
		all = make([]font.FontFace, 0, len(sources))
		all = append(all, Regular()...)
		for _, src := range sources[1:] {
			all = append(all, parse(src))
		}
	})
	return all
}

func parse(src ttf) font.FontFace {
	face, err := opentype.Parse(src.data)
	if err != nil {
		panic(fmt.Errorf("gofont: parsing %v: %v", src.font, err))
	}
	fnt := src.font
	fnt.Typeface = Typeface
	return font.FontFace{Font: fnt, Face: face}
}
