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
	"seehuhn.de/go/pdfglyph/font/cff"
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/font/type1"
	"seehuhn.de/go/pdfglyph/pdf"
)

func init() {
	registerReader("Type1", readType1)
	registerReader("MMType1", readType1)
}

// readType1 reads a Type 1 font dictionary.
//
// Embedded Type 1 (FontFile) and CFF (FontFile3 with subtype Type1C) font
// programs are used if they can be parsed and contain all glyphs named in
// the Differences array of the encoding.  Otherwise a built-in substitute
// font is used.  Names from the base encoding are not checked, since
// subset fonts only contain the glyphs which are actually used.
func readType1(rd *Reader, fontDict pdf.Dict) (*Font, error) {
	info := rd.readSimpleInfo(fontDict)
	encObj := fontDict["Encoding"]

	if info.desc != nil {
		if data, _ := rd.fontFile(info.baseFont, info.desc.FontFile); data != nil {
			if f := rd.tryType1(info, data, encObj); f != nil {
				return f, nil
			}
		} else if data, subtype := rd.fontFile(info.baseFont, info.desc.FontFile3); data != nil {
			switch subtype {
			case "Type1C":
				if f := rd.tryCFF(info, data, encObj); f != nil {
					return f, nil
				}
			default:
				warn("unsupported font file", info.baseFont, &font.NotSupportedError{
					SubSystem: "dict",
					Feature:   "FontFile3 subtype " + string(subtype) + " for Type 1 fonts",
				})
			}
		}
	}

	enc := encoding.ReadSimple(rd.r, encObj, info.standardEncoding())
	return rd.substitute(info, enc)
}

func (rd *Reader) tryType1(info *simpleInfo, data []byte, encObj pdf.Object) *Font {
	f, err := type1.Read(data)
	if err != nil {
		warn("cannot parse Type 1 font, using substitute", info.baseFont, err)
		return nil
	}
	enc := encoding.ReadSimple(rd.r, encObj, encodingTable(f.Encoding))
	prog := type1.NewProgram(f, info.widths)
	if !prog.HasGlyphs(enc.DifferenceNames()) {
		warn("incomplete Type 1 font, using substitute", info.baseFont, nil)
		return nil
	}
	return newFont(info.baseFont, info.desc, enc, prog)
}

func (rd *Reader) tryCFF(info *simpleInfo, data []byte, encObj pdf.Object) *Font {
	f, err := cff.Read(data)
	if err != nil {
		warn("cannot parse CFF font, using substitute", info.baseFont, err)
		return nil
	}
	enc := encoding.ReadSimple(rd.r, encObj, f.BuiltinEncoding())
	prog := cff.NewProgram(f, info.widths)
	if !prog.HasGlyphs(enc.DifferenceNames()) {
		warn("incomplete CFF font, using substitute", info.baseFont, nil)
		return nil
	}
	return newFont(info.baseFont, info.desc, enc, prog)
}
