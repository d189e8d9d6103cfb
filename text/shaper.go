// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"errors"
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/boxlayout/boxlayout/font"
)

var errEmpty = errors.New("text: empty font collection")

// Shaper resolves fonts from a collection to sized faces and reports
// their metrics. Sized faces are cached. A Shaper is not safe for
// concurrent use.
type Shaper struct {
	faces []font.FontFace
	cache faceCache
}

// NewShaper constructs a shaper for the given collection. The first
// face of the collection is the fallback for fonts that do not match.
func NewShaper(collection []font.FontFace) *Shaper {
	return &Shaper{faces: collection}
}

// Face returns the cached face for fnt at ppem pixels per em.
func (s *Shaper) Face(fnt font.Font, ppem fixed.Int26_6) (xfont.Face, error) {
	k := faceKey{font: fnt, ppem: ppem}
	if f, ok := s.cache.Get(k); ok {
		return f, nil
	}
	ff, ok := s.closest(fnt)
	if !ok {
		return nil, errEmpty
	}
	f, err := ff.Face.Face(ppem)
	if err != nil {
		return nil, fmt.Errorf("text: sizing %v: %w", fnt, err)
	}
	s.cache.Put(k, f)
	return f, nil
}

// Metrics returns the line metrics of fnt at ppem.
func (s *Shaper) Metrics(fnt font.Font, ppem fixed.Int26_6) (font.Metrics, error) {
	ff, ok := s.closest(fnt)
	if !ok {
		return font.Metrics{}, errEmpty
	}
	return ff.Face.Metrics(ppem), nil
}

// LineHeight returns the distance in pixels between two consecutive
// baselines for fnt at ppem.
func (s *Shaper) LineHeight(fnt font.Font, ppem fixed.Int26_6) (int, error) {
	m, err := s.Metrics(fnt, ppem)
	if err != nil {
		return 0, err
	}
	return m.Height().Ceil(), nil
}

// Advance returns the width of str in fnt at ppem.
func (s *Shaper) Advance(fnt font.Font, ppem fixed.Int26_6, str string) (fixed.Int26_6, error) {
	ff, ok := s.closest(fnt)
	if !ok {
		return 0, errEmpty
	}
	return ff.Face.Advance(ppem, str), nil
}

// closest finds the face matching fnt. Typeface and variant must
// match for a partial match, after which style is preferred over
// weight.
func (s *Shaper) closest(fnt font.Font) (font.FontFace, bool) {
	if len(s.faces) == 0 {
		return font.FontFace{}, false
	}
	best, score := s.faces[0], -1
	for _, ff := range s.faces {
		f := ff.Font
		if f == fnt {
			return ff, true
		}
		if f.Typeface != fnt.Typeface && fnt.Typeface != "" {
			continue
		}
		if f.Variant != fnt.Variant {
			continue
		}
		sc := 0
		if f.Style == fnt.Style {
			sc += 2
		}
		if f.Weight == fnt.Weight {
			sc++
		}
		if sc > score {
			best, score = ff, sc
		}
	}
	return best, true
}
