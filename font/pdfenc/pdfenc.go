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

// Package pdfenc implements the single-byte encodings used by simple PDF
// fonts.
//
// The tables map character codes to glyph names.  Glyph names can be
// mapped to Unicode text using [GlyphToUnicode].
package pdfenc

import "seehuhn.de/go/postscript/type1/names"

// GlyphToUnicode returns the text content of the glyph with the given name,
// using the Adobe Glyph List and the AGL naming conventions.  The font name
// is used to select the ZapfDingbats glyph list where appropriate.
// The empty string is returned for unknown glyph names.
func GlyphToUnicode(glyphName, fontName string) string {
	if glyphName == "" || glyphName == ".notdef" {
		return ""
	}
	return names.ToUnicode(glyphName, fontName)
}
