// seehuhn.de/go/pdfglyph - glyph outlines for PDF fonts
// Copyright (C) 2026  The pdfglyph Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package builtin

import (
	"errors"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
)

// Font is a parsed substitute font.
// It is safe for concurrent use.
type Font struct {
	f    *sfnt.Font
	upem int

	bufs sync.Pool
}

func parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return nil, errors.New("invalid unitsPerEm")
	}
	res := &Font{f: f, upem: upem}
	res.bufs.New = func() any { return &sfnt.Buffer{} }
	return res, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.f.NumGlyphs()
}

// RuneToGID returns the glyph for a Unicode character.
// Glyph 0 is returned if the font has no glyph for r.
func (f *Font) RuneToGID(r rune) glyph.ID {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	gid, err := f.f.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return glyph.ID(gid)
}

// GlyphName returns the name of a glyph, or the empty string if the font
// does not name its glyphs.
func (f *Font) GlyphName(gid glyph.ID) string {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	name, err := f.f.GlyphName(buf, sfnt.GlyphIndex(gid))
	if err != nil {
		return ""
	}
	return name
}

// Outline returns the outline of a glyph, together with the glyph's
// advance width.  Both are given as fractions of the em square.
//
// The y axis of the outline points up, like in PDF glyph space.
func (f *Font) Outline(gid glyph.ID) (*font.Outline, float64, error) {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	// At this size, one unit in 26.6 fixed point is 1/64 font unit.
	ppem := fixed.I(f.upem)
	scale := 1 / (64 * float64(f.upem))

	segments, err := f.f.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, 0, &font.InvalidFontError{
			SubSystem: "builtin",
			Reason:    err.Error(),
		}
	}
	advance, err := f.f.GlyphAdvance(buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingNone)
	if err != nil {
		return nil, 0, &font.InvalidFontError{
			SubSystem: "builtin",
			Reason:    err.Error(),
		}
	}

	// sfnt.LoadGlyph uses a y axis which points down.
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: float64(p.X) * scale, Y: -float64(p.Y) * scale}
	}

	b := &font.OutlineBuilder{}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}

	return b.Outline(), float64(advance) * scale, nil
}
