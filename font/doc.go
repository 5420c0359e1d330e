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

// Package font implements the foundations of glyph rendering for PDF fonts.
// Support for specific font program types is provided by sub-packages.
//
// # Data Types
//
//   - [Glyph] is the result of a glyph lookup.  It either carries an
//     [Outline] or, for Type 3 fonts, a [Procedure].
//   - [Program] is implemented by all font program variants.
//   - [Cache] memoizes the glyphs of one font.
//
// # Font Programs
//
// The following variants are available:
//   - CFF and Type1C: [seehuhn.de/go/pdfglyph/font/cff]
//   - TrueType: [seehuhn.de/go/pdfglyph/font/truetype]
//   - Type 1: [seehuhn.de/go/pdfglyph/font/type1]
//   - built-in substitutes: [seehuhn.de/go/pdfglyph/font/builtin]
//   - composite fonts: [seehuhn.de/go/pdfglyph/font/cid]
//   - Type 3: [seehuhn.de/go/pdfglyph/font/type3]
//
// The variant for a given PDF font dictionary is selected by
// [seehuhn.de/go/pdfglyph/font/dict].
//
// # Coordinate Systems
//
// All outlines are returned in glyph space, with the y-axis pointing up,
// scaled so that one unit corresponds to one unit of text space before the
// font size is applied.  The built-in substitute fonts obtain their outlines
// from a renderer which uses a downward pointing y-axis and negate the y
// coordinates to compensate; the TrueType renderer reads the "glyf" table
// directly and leaves y unchanged.
package font
