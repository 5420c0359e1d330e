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
	"errors"
	"io"
	"io/fs"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/font/loader"
	"seehuhn.de/go/pdfglyph/font/truetype"
	"seehuhn.de/go/pdfglyph/pdf"
)

func init() {
	registerReader("TrueType", readTrueType)
}

// readTrueType reads a TrueType font dictionary.
//
// The embedded font program (FontFile2) is used if present.  Otherwise the
// font is loaded using the font loader.  If neither works, a built-in
// substitute font is used.
//
// Without an Encoding entry, character codes select glyphs using the
// "cmap" table of the font.
func readTrueType(rd *Reader, fontDict pdf.Dict) (*Font, error) {
	info := rd.readSimpleInfo(fontDict)

	var enc *encoding.Simple
	if fontDict["Encoding"] == nil {
		enc = encoding.NewSimple(encoding.NoNames, nil)
	} else {
		enc = encoding.ReadSimple(rd.r, fontDict["Encoding"], nil)
	}

	var data []byte
	if info.desc != nil {
		data, _ = rd.fontFile(info.baseFont, info.desc.FontFile2)
	}
	if data == nil {
		data = rd.external(info.baseFont)
	}

	if data != nil {
		f, err := truetype.Read(data)
		if err == nil {
			prog := truetype.NewProgram(f, info.widths)
			return newFont(info.baseFont, info.desc, enc, prog), nil
		}
		warn("cannot parse TrueType font, using substitute", info.baseFont, err)
	}

	return rd.substitute(info, enc)
}

// external loads a TrueType font from the system.
// If the font cannot be found, nil is returned.
func (rd *Reader) external(psName string) []byte {
	if rd.loader == nil || psName == "" {
		return nil
	}

	tp, r, err := rd.loader.Open(psName)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			warn("cannot open external font", psName, err)
		}
		return nil
	}
	defer r.Close()

	if tp != loader.FontTypeSfnt {
		warn("unsupported external font", psName, &font.NotSupportedError{
			SubSystem: "dict",
			Feature:   "external " + tp.String() + " fonts for TrueType font dictionaries",
		})
		return nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		warn("cannot read external font", psName, err)
		return nil
	}
	return data
}
