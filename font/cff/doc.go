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

// Package cff reads CFF font programs and renders their glyphs.
//
// CFF fonts are found in PDF files as FontFile3 streams with subtype Type1C
// or CIDFontType0C.  Both name-keyed and CID-keyed fonts are supported.
// Glyph outlines are obtained by interpreting the Type 2 charstrings of the
// font, see Adobe Technical Note #5177.
//
// Use [Read] to decode a font and [NewProgram] to use it for rendering the
// glyphs of a PDF font.
package cff
