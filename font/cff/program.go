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

package cff

import (
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/internal/seal"
)

// Program renders the glyphs of a simple PDF font with an embedded CFF
// font program (FontFile3 with subtype Type1C).
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
	return font.ProgramCFF
}

// Font returns the underlying CFF font.
func (p *Program) Font() *Font {
	return p.f
}

// Glyph implements the [font.Program] interface.
//
// If name is given and present in the charset, the named glyph is used.
// Otherwise the code is mapped through the encoding built into the font
// program.  Unresolved lookups render glyph 0.
func (p *Program) Glyph(code int, name string) *font.Glyph {
	gid, ok := p.lookup(code, name)
	if !ok {
		gid = 0
	}

	o, natural, err := p.f.Outline(gid)
	if err != nil {
		font.Logger().Debug("cff: cannot render glyph",
			"font", p.f.FontName, "gid", gid, "err", err)
		return font.EmptyGlyph(code, name)
	}

	w, hasWidth := p.widths.Get(code)
	o, advance := font.FitWidth(o, natural, w, hasWidth)

	if name == "" {
		name = p.f.GlyphName(gid)
	}
	return font.NewOutlineGlyph(code, name, o, advance)
}

func (p *Program) lookup(code int, name string) (glyph.ID, bool) {
	if name != "" {
		if gid, ok := p.f.GlyphID(name); ok {
			return gid, true
		}
	}
	if code < 0 {
		return 0, false
	}
	if p.f.IsCIDKeyed {
		return p.f.CIDToGID(cid.CID(code))
	}
	if code > 255 {
		return 0, false
	}
	return p.f.CodeToGID(byte(code))
}

// HasGlyphs returns true if all the named glyphs are present in the font.
func (p *Program) HasGlyphs(names []string) bool {
	for _, name := range names {
		if name == "" || name == ".notdef" {
			continue
		}
		if _, ok := p.f.GlyphID(name); !ok {
			return false
		}
	}
	return true
}
