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
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/font/type3"
	"seehuhn.de/go/pdfglyph/pdf"
)

func init() {
	registerReader("Type3", readType3)
}

// readType3 reads a Type 3 font dictionary.  Errors in the CharProcs
// dictionary are returned to the caller, since no substitute exists for
// procedural glyphs.
func readType3(rd *Reader, fontDict pdf.Dict) (*Font, error) {
	info := rd.readSimpleInfo(fontDict)

	prog, err := type3.Read(rd.r, fontDict)
	if err != nil {
		return nil, err
	}

	// Codes not listed in the Differences array have no glyph.
	enc := encoding.ReadSimple(rd.r, fontDict["Encoding"], encoding.NoNames)

	return newFont(info.baseFont, info.desc, enc, prog), nil
}
