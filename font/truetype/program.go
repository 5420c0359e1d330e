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
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/internal/seal"
)

// Program renders the glyphs of a simple PDF font with a TrueType font
// program.
//
// Outlines are not flipped vertically.  This differs from the built-in
// substitute fonts, which negate the y coordinates of their outlines.
type Program struct {
	seal.Marker

	f      *Font
	widths *font.SimpleWidths
}

// NewProgram returns a Program for f.  If widths is not nil, glyphs are
// scaled horizontally to match the widths requested by the font dictionary.
func NewProgram(f *Font, widths *font.SimpleWidths) *Program {
	return &Program{f: f, widths: widths}
}

// Kind implements the [font.Program] interface.
func (p *Program) Kind() font.ProgramKind {
	return font.ProgramTrueType
}

// Font returns the underlying TrueType font.
func (p *Program) Font() *Font {
	return p.f
}

// Glyph implements the [font.Program] interface.
//
// The glyph name is tried first, then the character code.  If neither
// identifies a glyph, glyph 0 is used.
func (p *Program) Glyph(code int, name string) *font.Glyph {
	gid := p.lookup(code, name)

	o, natural, err := p.f.Outline(gid)
	if err != nil {
		font.Logger().Debug("truetype: cannot render glyph",
			"gid", gid, "err", err)
		return font.EmptyGlyph(code, name)
	}

	w, hasWidth := p.widths.Get(code)
	o, advance := font.FitWidth(o, natural, w, hasWidth)

	if name == "" {
		name = p.f.GlyphName(gid)
	}
	return font.NewOutlineGlyph(code, name, o, advance)
}

func (p *Program) lookup(code int, name string) glyph.ID {
	if gid, ok := p.f.NameToGID(name); ok {
		return gid
	}
	if code >= 0 {
		if gid, ok := p.f.CodeToGID(uint32(code)); ok {
			return gid
		}
	}
	return 0
}
