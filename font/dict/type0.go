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
	"seehuhn.de/go/pdfglyph/font/builtin"
	"seehuhn.de/go/pdfglyph/font/cff"
	"seehuhn.de/go/pdfglyph/font/cid"
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/font/truetype"
	"seehuhn.de/go/pdfglyph/pdf"
)

func init() {
	registerReader("Type0", readType0)
}

// readType0 reads a composite font dictionary.
//
// The descendant font can be a CIDFontType0 font with an embedded CFF font
// program, or a CIDFontType2 font with an embedded TrueType font program.
// If the font program is not embedded or cannot be used, glyphs are taken
// from a built-in substitute font, using the ToUnicode CMap to identify
// the characters.
func readType0(rd *Reader, fontDict pdf.Dict) (*Font, error) {
	baseFont := postScriptName(rd.r, fontDict)

	descendants, err := pdf.GetArray(rd.r, fontDict["DescendantFonts"])
	if err != nil {
		return nil, pdf.Wrap(err, "DescendantFonts")
	} else if len(descendants) < 1 {
		return nil, pdf.Errorf("composite font with no descendant fonts")
	}
	cidFontDict, err := pdf.GetDictTyped(rd.r, descendants[0], "Font")
	if err != nil {
		return nil, pdf.Wrap(err, "DescendantFonts")
	} else if cidFontDict == nil {
		return nil, pdf.Errorf("missing CIDFont dictionary")
	}
	cidSubtype, err := pdf.GetName(rd.r, cidFontDict["Subtype"])
	if err != nil {
		return nil, pdf.Wrap(err, "CIDFont Subtype")
	}
	if cidSubtype != "CIDFontType0" && cidSubtype != "CIDFontType2" {
		return nil, &font.UnsupportedSubtypeError{Subtype: cidSubtype}
	}

	cmap, err := encoding.ReadCMap(rd.r, fontDict["Encoding"])
	if err != nil {
		warn("cannot read CMap, using Identity-H", baseFont, err)
		cmap = encoding.IdentityCMap
	}
	var dec encoding.Decoder = encoding.OneByte{}
	if cmap != nil {
		dec = cmap
	}

	toUnicode, err := encoding.ReadToUnicode(rd.r, fontDict["ToUnicode"])
	if err != nil {
		warn("cannot read ToUnicode CMap", baseFont, err)
	}

	widths, err := font.ReadCIDWidths(rd.r, cidFontDict)
	if err != nil {
		warn("cannot read glyph widths", baseFont, err)
	}

	desc, err := font.ReadDescriptor(rd.r, cidFontDict["FontDescriptor"])
	if err != nil {
		warn("cannot read font descriptor", baseFont, err)
	}

	var prog *cid.Program
	if desc != nil {
		switch cidSubtype {
		case "CIDFontType0":
			prog = rd.cidCFF(baseFont, desc, cmap, widths)
		case "CIDFontType2":
			prog = rd.cidTrueType(baseFont, desc, cidFontDict, cmap, widths)
		}
	}
	if prog == nil {
		f, err := builtin.Select(baseFont, substituteFlags(desc)).Font()
		if err != nil {
			return nil, err
		}
		prog = cid.NewBuiltin(f, cmap, toUnicode, widths)
	}

	return newFont(baseFont, desc, dec, prog), nil
}

func (rd *Reader) cidCFF(baseFont string, desc *font.Descriptor, cmap *encoding.CMap, widths *font.CIDWidths) *cid.Program {
	data, subtype := rd.fontFile(baseFont, desc.FontFile3)
	if data == nil {
		return nil
	}
	if subtype != "CIDFontType0C" && subtype != "Type1C" {
		warn("unsupported font file", baseFont, &font.NotSupportedError{
			SubSystem: "dict",
			Feature:   "FontFile3 subtype " + string(subtype) + " for CIDFontType0 fonts",
		})
		return nil
	}
	f, err := cff.Read(data)
	if err != nil {
		warn("cannot parse CFF font, using substitute", baseFont, err)
		return nil
	}
	return cid.NewCFF(f, cmap, widths)
}

func (rd *Reader) cidTrueType(baseFont string, desc *font.Descriptor, cidFontDict pdf.Dict, cmap *encoding.CMap, widths *font.CIDWidths) *cid.Program {
	data, _ := rd.fontFile(baseFont, desc.FontFile2)
	if data == nil {
		return nil
	}
	f, err := truetype.Read(data)
	if err != nil {
		warn("cannot parse TrueType font, using substitute", baseFont, err)
		return nil
	}
	cidToGID, err := cid.ReadCIDToGIDMap(rd.r, cidFontDict["CIDToGIDMap"])
	if err != nil {
		warn("cannot read CIDToGIDMap, using Identity", baseFont, err)
		cidToGID = nil
	}
	return cid.NewTrueType(f, cmap, cidToGID, widths)
}
