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
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/font/pdfenc"
	"seehuhn.de/go/pdfglyph/pdf"
)

// simpleInfo holds the entries shared by all simple font dictionaries.
type simpleInfo struct {
	baseFont  string
	desc      *font.Descriptor
	widths    *font.SimpleWidths
	toUnicode *encoding.ToUnicode
}

func (rd *Reader) readSimpleInfo(fontDict pdf.Dict) *simpleInfo {
	info := &simpleInfo{
		baseFont: postScriptName(rd.r, fontDict),
	}

	desc, err := font.ReadDescriptor(rd.r, fontDict["FontDescriptor"])
	if err != nil {
		warn("cannot read font descriptor", info.baseFont, err)
	}
	info.desc = desc

	var missingWidth float64
	if desc != nil {
		missingWidth = desc.MissingWidth
	}
	info.widths = font.ReadSimpleWidths(rd.r, fontDict, missingWidth)

	toUnicode, err := encoding.ReadToUnicode(rd.r, fontDict["ToUnicode"])
	if err != nil {
		warn("cannot read ToUnicode CMap", info.baseFont, err)
	}
	info.toUnicode = toUnicode

	return info
}

// substituteFlags returns the font descriptor flags used to select a
// substitute font.
func substituteFlags(desc *font.Descriptor) font.Flags {
	if desc == nil {
		return 0
	}
	flags := desc.Flags
	if desc.IsBold() {
		flags |= font.FlagForceBold
	}
	return flags
}

// standardEncoding returns the built-in encoding assumed for fonts whose
// font program is not embedded.
func (info *simpleInfo) standardEncoding() *[256]string {
	if info.baseFont == "Symbol" {
		return &pdfenc.SymbolEncoding
	}
	return nil
}

// substitute returns a simple font which uses a built-in substitute font.
func (rd *Reader) substitute(info *simpleInfo, enc *encoding.Simple) (*Font, error) {
	f, err := builtin.Select(info.baseFont, substituteFlags(info.desc)).Font()
	if err != nil {
		return nil, err
	}
	prog := builtin.NewProgram(f, info.baseFont, info.widths, info.toUnicode)
	return newFont(info.baseFont, info.desc, enc, prog), nil
}

// fontFile returns the decoded data of an embedded font program, together
// with the Subtype of the font file stream.  If the font program is not
// embedded, nil is returned.
func (rd *Reader) fontFile(baseFont string, obj pdf.Object) ([]byte, pdf.Name) {
	if obj == nil {
		return nil, ""
	}
	data, stmDict, err := pdf.GetStreamData(rd.r, obj)
	if err != nil {
		warn("cannot read font file", baseFont, err)
		return nil, ""
	}
	subtype, _ := pdf.GetName(rd.r, stmDict["Subtype"])
	return data, subtype
}

// encodingTable converts the encoding vector of a font program.
func encodingTable(names []string) *[256]string {
	if names == nil {
		return nil
	}
	res := &[256]string{}
	copy(res[:], names)
	return res
}
