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
	"unicode/utf8"

	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/font/internal/seal"
)

// Program renders the glyphs of a simple PDF font using a substitute font.
//
// Unlike the TrueType renderer, which keeps the y coordinates of the
// font file unchanged, the outlines of this program are flipped from the
// y-down convention of the font loader back to the PDF convention.
type Program struct {
	seal.Marker

	f         *Font
	fontName  string
	widths    *font.SimpleWidths
	toUnicode *encoding.ToUnicode
}

// NewProgram returns a Program which renders the glyphs of the PDF font
// fontName using f.
//
// If widths is not nil, glyphs are scaled horizontally to match the widths
// requested by the font dictionary.  If toUnicode is not nil, it is used to
// find glyphs for character codes without a glyph name.
func NewProgram(f *Font, fontName string, widths *font.SimpleWidths, toUnicode *encoding.ToUnicode) *Program {
	return &Program{
		f:         f,
		fontName:  fontName,
		widths:    widths,
		toUnicode: toUnicode,
	}
}

// Kind implements the [font.Program] interface.
func (p *Program) Kind() font.ProgramKind {
	return font.ProgramBuiltin
}

// Font returns the substitute font.
func (p *Program) Font() *Font {
	return p.f
}

// Glyph implements the [font.Program] interface.
//
// The glyph name is mapped to Unicode using the Adobe Glyph List.  Codes
// without a usable name are mapped to Unicode using the ToUnicode CMap, or
// are interpreted as Unicode values directly.  If no glyph is found, glyph
// 0 is used.
func (p *Program) Glyph(code int, name string) *font.Glyph {
	gid := p.lookup(code, name)

	o, natural, err := p.f.Outline(gid)
	if err != nil {
		font.Logger().Debug("builtin: cannot render glyph",
			"font", p.fontName, "gid", gid, "err", err)
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
	if name != "" {
		if r, ok := firstRune(names.ToUnicode(name, p.fontName)); ok {
			if gid := p.f.RuneToGID(r); gid != 0 {
				return gid
			}
		}
	}
	if code <= 0 {
		return 0
	}
	return p.f.RuneToGID(CodeToRune(p.toUnicode, code, 1))
}

// CodeToRune returns the Unicode character for a character code.
// The ToUnicode CMap is consulted first, if present.  Otherwise the code
// is used as a Unicode value.
func CodeToRune(toUnicode *encoding.ToUnicode, code int, numBytes int) rune {
	if text, ok := toUnicode.Lookup(code, numBytes); ok {
		if r, ok := firstRune(text); ok {
			return r
		}
	}
	return rune(code)
}

func firstRune(text string) (rune, bool) {
	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
