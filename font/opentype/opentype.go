// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype loads OpenType and TrueType font data into faces
// that can be measured and drawn at any size.
//
// Measurements come from the font tables through go-text/typesetting.
// Drawing goes through golang.org/x/image, whose faces plug into
// image/draw.
package opentype

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
	fontapi "github.com/go-text/typesetting/opentype/api/font"
	"github.com/go-text/typesetting/opentype/api/metadata"
	"github.com/go-text/typesetting/opentype/loader"
	xfont "golang.org/x/image/font"
	xopentype "golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	boxfont "github.com/boxlayout/boxlayout/font"
)

// Face is a parsed font. A Face is safe for concurrent use; the sized
// faces it returns are not.
type Face struct {
	face    font.Font
	raster  *xopentype.Font
	aspect  metadata.Aspect
	family  string
	variant string
}

var _ boxfont.Face = Face{}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	ld, err := loader.NewLoader(bytes.NewReader(src))
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	raster, err := xopentype.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return newFace(ld, raster)
}

// ParseCollection parses an OpenType font collection. Single font
// files are supported, returning a slice with length 1. The faces
// come with the Font described by their metadata; the only Variant
// recognized is "Mono".
func ParseCollection(src []byte) ([]boxfont.FontFace, error) {
	lds, err := loader.NewLoaders(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	c, err := xopentype.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	if n := c.NumFonts(); n != len(lds) {
		return nil, fmt.Errorf("font collection has %d fonts, loaded %d", n, len(lds))
	}
	out := make([]boxfont.FontFace, len(lds))
	for i, ld := range lds {
		raster, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		f, err := newFace(ld, raster)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		out[i] = boxfont.FontFace{Font: f.Font(), Face: f}
	}
	return out, nil
}

func newFace(ld *loader.Loader, raster *xopentype.Font) (Face, error) {
	ft, err := fontapi.NewFont(ld)
	if err != nil {
		return Face{}, err
	}
	data := metadata.Metadata(ld)
	f := Face{
		face:   ft,
		raster: raster,
		aspect: data.Aspect,
		family: data.Family,
	}
	if data.IsMonospace {
		f.variant = "Mono"
	}
	return f, nil
}

// Face implements font.Face. Sizes are in pixels per em, which the
// x/image opentype package expresses as points at 72 dpi.
func (f Face) Face(ppem fixed.Int26_6) (xfont.Face, error) {
	if f.raster == nil {
		return nil, fmt.Errorf("opentype: face not parsed")
	}
	return xopentype.NewFace(f.raster, &xopentype.FaceOptions{
		Size:    float64(ppem) / 64,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
}

// Metrics implements font.Face from the horizontal extents of the
// font. An unparsed Face has zero metrics.
func (f Face) Metrics(ppem fixed.Int26_6) boxfont.Metrics {
	if f.face == nil {
		return boxfont.Metrics{}
	}
	ext, ok := f.shaping().FontHExtents()
	if !ok {
		// No hhea or OS/2 extents: one em above the baseline.
		return boxfont.Metrics{Ascent: ppem}
	}
	scale := f.scale(ppem)
	return boxfont.Metrics{
		Ascent:  toFixed(ext.Ascender * scale),
		Descent: toFixed(-ext.Descender * scale),
		LineGap: toFixed(ext.LineGap * scale),
	}
}

// Advance implements font.Face by summing the nominal glyph advances
// of s. Runes missing from the font advance by the .notdef glyph.
func (f Face) Advance(ppem fixed.Int26_6, s string) fixed.Int26_6 {
	if f.face == nil {
		return 0
	}
	face := f.shaping()
	var adv float32
	for _, r := range s {
		gid, _ := f.face.NominalGlyph(r)
		adv += face.HorizontalAdvance(gid)
	}
	return toFixed(adv * f.scale(ppem))
}

// Font returns the font described by the face metadata.
func (f Face) Font() boxfont.Font {
	fnt := boxfont.Font{
		Typeface: boxfont.Typeface(f.family),
		Variant:  boxfont.Variant(f.variant),
		Weight:   boxfont.Weight(math.Round(float64(f.aspect.Weight))) - 400,
	}
	if f.aspect.Style == metadata.StyleItalic {
		fnt.Style = boxfont.Italic
	}
	if f.aspect.Weight == 0 {
		fnt.Weight = boxfont.Normal
	}
	return fnt
}

func (f Face) shaping() font.Face {
	return &fontapi.Face{Font: f.face}
}

// scale converts font units to 26.6 pixels at ppem.
func (f Face) scale(ppem fixed.Int26_6) float32 {
	upem := f.face.Upem()
	if upem == 0 {
		upem = 1000
	}
	return float32(ppem) / float32(upem)
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v)))
}
