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

package truetype

import (
	"github.com/bits-and-blooms/bitset"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
)

// maxCompositeDepth limits the nesting of composite glyphs.
const maxCompositeDepth = 8

// Outline returns the outline of a glyph together with its advance width.
// Both are given in glyph space, where the em square has size 1.
func (f *Font) Outline(gid glyph.ID) (*font.Outline, float64, error) {
	if int(gid) >= len(f.outlines.Glyphs) {
		return nil, 0, &font.InvalidFontError{
			SubSystem: "truetype",
			Reason:    "glyph index out of range",
		}
	}

	q := 1 / float64(f.UnitsPerEm)
	path := bitset.New(uint(len(f.outlines.Glyphs)))
	b := &font.OutlineBuilder{}
	err := f.appendGlyph(b, gid, matrix.Scale(q, q), 0, path)
	if err != nil {
		return nil, 0, err
	}
	return b.Outline(), f.Advance(gid), nil
}

// appendGlyph adds the outline of gid, mapped through m, to b.
// The bitset path holds the glyphs on the current chain of composite
// references.
func (f *Font) appendGlyph(b *font.OutlineBuilder, gid glyph.ID, m matrix.Matrix, depth int, path *bitset.BitSet) error {
	if depth > maxCompositeDepth || path.Test(uint(gid)) {
		return font.ErrRecursionLimit
	}

	g := f.outlines.Glyphs[gid]
	if g == nil {
		return nil
	}

	switch d := g.Data.(type) {
	case glyf.SimpleGlyph:
		info, err := d.Unpack()
		if err != nil {
			return err
		}
		for _, c := range info.Contours {
			appendContour(b, c, m)
		}
	case glyf.CompositeGlyph:
		path.Set(uint(gid))
		defer path.Clear(uint(gid))
		for _, comp := range d.Components {
			child := glyph.ID(comp.GlyphIndex)
			if int(child) >= len(f.outlines.Glyphs) {
				return &font.InvalidFontError{
					SubSystem: "truetype",
					Reason:    "composite glyph component out of range",
				}
			}
			trfm, err := componentTransform(uint16(comp.Flags), comp.Data)
			if err != nil {
				return err
			}
			err = f.appendGlyph(b, child, trfm.Mul(m), depth+1, path)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Flags used in composite glyph descriptions.
const (
	flagArgsAreWords = 0x0001
	flagArgsAreXY    = 0x0002
	flagHaveScale    = 0x0008
	flagHaveXYScale  = 0x0040
	flagHaveTwoByTwo = 0x0080
)

// componentTransform decodes the placement of a composite glyph component.
// The result maps the coordinates of the component glyph into the
// coordinate system of the composite glyph, in font design units.
//
// Components placed by matching points are placed without offset.
func componentTransform(flags uint16, args []byte) (matrix.Matrix, error) {
	need := 2
	if flags&flagArgsAreWords != 0 {
		need = 4
	}
	switch {
	case flags&flagHaveScale != 0:
		need += 2
	case flags&flagHaveXYScale != 0:
		need += 4
	case flags&flagHaveTwoByTwo != 0:
		need += 8
	}
	if len(args) < need {
		return matrix.Identity, &font.InvalidFontError{
			SubSystem: "truetype",
			Reason:    "incomplete composite glyph",
		}
	}

	var dx, dy float64
	if flags&flagArgsAreWords != 0 {
		dx = float64(int16(args[0])<<8 | int16(args[1]))
		dy = float64(int16(args[2])<<8 | int16(args[3]))
		args = args[4:]
	} else {
		dx = float64(int8(args[0]))
		dy = float64(int8(args[1]))
		args = args[2:]
	}

	m := matrix.Identity
	switch {
	case flags&flagHaveScale != 0:
		m[0] = f2dot14(args[0], args[1])
		m[3] = m[0]
	case flags&flagHaveXYScale != 0:
		m[0] = f2dot14(args[0], args[1])
		m[3] = f2dot14(args[2], args[3])
	case flags&flagHaveTwoByTwo != 0:
		m[0] = f2dot14(args[0], args[1])
		m[1] = f2dot14(args[2], args[3])
		m[2] = f2dot14(args[4], args[5])
		m[3] = f2dot14(args[6], args[7])
	}
	if flags&flagArgsAreXY != 0 {
		m[4] = dx
		m[5] = dy
	}
	return m, nil
}

// f2dot14 decodes a signed 2.14 fixed point number.
func f2dot14(hi, lo byte) float64 {
	return float64(int16(hi)<<8|int16(lo)) / 16384
}

// appendContour converts a TrueType contour to path commands.
//
// Two consecutive off-curve points have an implied on-curve point at their
// midpoint.  If no point of the contour is on the curve, the contour starts
// at the midpoint between the last and the first point.
func appendContour(b *font.OutlineBuilder, c glyf.Contour, m matrix.Matrix) {
	n := len(c)
	if n == 0 {
		return
	}

	pts := make([]vec.Vec2, n)
	for i, p := range c {
		pts[i] = font.Apply(m, vec.Vec2{X: float64(p.X), Y: float64(p.Y)})
	}

	first := -1
	for i, p := range c {
		if p.OnCurve {
			first = i
			break
		}
	}

	var start vec.Vec2
	if first >= 0 {
		start = pts[first]
	} else {
		start = midpoint(pts[n-1], pts[0])
		first = n - 1 // the loop below starts at pts[0]
	}
	b.MoveTo(start)

	var ctrl vec.Vec2
	hasCtrl := false
	for k := 1; k <= n; k++ {
		i := (first + k) % n
		p := pts[i]
		if k == n && c[first].OnCurve {
			// back at the starting point
			break
		}
		if c[i].OnCurve {
			if hasCtrl {
				b.QuadTo(ctrl, p)
				hasCtrl = false
			} else {
				b.LineTo(p)
			}
			continue
		}
		if hasCtrl {
			mid := midpoint(ctrl, p)
			b.QuadTo(ctrl, mid)
		}
		ctrl = p
		hasCtrl = true
	}
	if hasCtrl {
		b.QuadTo(ctrl, start)
	}
	b.Close()
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
