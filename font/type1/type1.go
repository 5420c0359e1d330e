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

// Package type1 renders glyphs from embedded Type 1 font programs
// (FontFile streams).
package type1

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/internal/seal"
)

// Read parses a Type 1 font program.  Both the PFA and the PFB format are
// accepted.
func Read(data []byte) (*type1.Font, error) {
	f, err := type1.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &font.InvalidFontError{
			SubSystem: "type1",
			Reason:    err.Error(),
		}
	}
	if f.FontInfo == nil || f.Outlines == nil || len(f.Glyphs) == 0 {
		return nil, &font.InvalidFontError{
			SubSystem: "type1",
			Reason:    "no glyphs",
		}
	}
	return f, nil
}

// Program renders the glyphs of a simple PDF font with an embedded Type 1
// font program.
type Program struct {
	seal.Marker

	f          *type1.Font
	fontMatrix matrix.Matrix
	widths     *font.SimpleWidths
}

// NewProgram returns a Program for f.  If widths is not nil, glyphs are
// scaled horizontally to match the widths requested by the font dictionary.
func NewProgram(f *type1.Font, widths *font.SimpleWidths) *Program {
	fm := matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}
	if f.FontInfo != nil && len(f.FontMatrix) == 6 {
		var m matrix.Matrix
		copy(m[:], f.FontMatrix[:])
		if m[0]*m[3]-m[1]*m[2] != 0 {
			fm = m
		}
	}
	return &Program{f: f, fontMatrix: fm, widths: widths}
}

// Kind implements the [font.Program] interface.
func (p *Program) Kind() font.ProgramKind {
	return font.ProgramType1
}

// Font returns the underlying font program.
func (p *Program) Font() *type1.Font {
	return p.f
}

// Glyph implements the [font.Program] interface.
//
// Glyphs are found by name, then by code through the encoding built into
// the font program.  If neither succeeds, ".notdef" is used.
func (p *Program) Glyph(code int, name string) *font.Glyph {
	glyphName := p.lookup(code, name)
	g := p.f.Glyphs[glyphName]
	if g == nil {
		return font.EmptyGlyph(code, name)
	}

	b := &font.OutlineBuilder{}
	for _, cmd := range g.Cmds {
		args := cmd.Args
		switch cmd.Op {
		case type1.OpMoveTo:
			if len(args) >= 2 {
				b.MoveTo(p.apply(args[0], args[1]))
			}
		case type1.OpLineTo:
			if len(args) >= 2 {
				b.LineTo(p.apply(args[0], args[1]))
			}
		case type1.OpCurveTo:
			if len(args) >= 6 {
				b.CubeTo(p.apply(args[0], args[1]), p.apply(args[2], args[3]), p.apply(args[4], args[5]))
			}
		case type1.OpClosePath:
			b.Close()
		}
	}
	natural := g.WidthX*p.fontMatrix[0] + g.WidthY*p.fontMatrix[2]

	w, hasWidth := p.widths.Get(code)
	o, advance := font.FitWidth(b.Outline(), natural, w, hasWidth)

	if name == "" {
		name = glyphName
	}
	return font.NewOutlineGlyph(code, name, o, advance)
}

func (p *Program) apply(x, y float64) vec.Vec2 {
	return font.Apply(p.fontMatrix, vec.Vec2{X: x, Y: y})
}

func (p *Program) lookup(code int, name string) string {
	if _, ok := p.f.Glyphs[name]; ok && name != "" {
		return name
	}
	if code >= 0 && code < len(p.f.Encoding) {
		if n := p.f.Encoding[code]; n != "" {
			if _, ok := p.f.Glyphs[n]; ok {
				return n
			}
		}
	}
	return ".notdef"
}

// HasGlyphs returns true if all the named glyphs are present in the font.
func (p *Program) HasGlyphs(names []string) bool {
	for _, name := range names {
		if name == "" || name == ".notdef" {
			continue
		}
		if _, ok := p.f.Glyphs[name]; !ok {
			return false
		}
	}
	return true
}
