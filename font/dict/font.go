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

package dict

import (
	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/pdf"
)

// Font is a font read from a PDF font dictionary.
type Font struct {
	Subtype    pdf.Name
	BaseFont   string // PostScript name, without subset tag
	Descriptor *font.Descriptor

	decoder encoding.Decoder
	cache   *font.Cache
}

func newFont(baseFont string, desc *font.Descriptor, dec encoding.Decoder, prog font.Program) *Font {
	return &Font{
		BaseFont:   baseFont,
		Descriptor: desc,
		decoder:    dec,
		cache:      font.NewCache(prog),
	}
}

// Program returns the font program used to render glyphs.
func (f *Font) Program() font.Program {
	return f.cache.Program()
}

// Cache returns the glyph cache of the font.
func (f *Font) Cache() *font.Cache {
	return f.cache
}

// Decode splits a PDF string into character codes.
func (f *Font) Decode(text []byte) []encoding.Code {
	return f.decoder.Decode(text)
}

// Glyph returns the glyph for a character code and glyph name.
// The result is never nil.
func (f *Font) Glyph(code int, name string) *font.Glyph {
	return f.cache.Glyph(code, name)
}

// Resolve returns the glyphs for the characters of a PDF string.
// The result has one glyph per character code; no entry is nil.
func (f *Font) Resolve(text []byte) []*font.Glyph {
	codes := f.decoder.Decode(text)
	res := make([]*font.Glyph, len(codes))
	for i, c := range codes {
		res[i] = f.cache.Glyph(c.Code, c.Name)
	}
	return res
}
