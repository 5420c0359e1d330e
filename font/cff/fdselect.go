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

package cff

import (
	"seehuhn.de/go/pdfglyph/font/parser"
)

// readFDSelect decodes an FDSelect structure.  The result gives the
// index of the Font DICT for every glyph.
func readFDSelect(p *parser.Parser, nGlyphs, nFonts int) ([]uint8, error) {
	format, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}

	res := make([]uint8, nGlyphs)
	switch format {
	case 0:
		buf, err := p.ReadBytes(nGlyphs)
		if err != nil {
			return nil, err
		}
		for gid, fd := range buf {
			if int(fd) >= nFonts {
				return nil, p.Error("FDSelect out of range")
			}
			res[gid] = fd
		}
	case 3:
		nRanges, err := p.ReadUInt16()
		if err != nil {
			return nil, err
		}
		if nRanges == 0 && nGlyphs > 0 {
			return nil, p.Error("empty FDSelect")
		}
		first, err := p.ReadUInt16()
		if err != nil {
			return nil, err
		}
		if first != 0 {
			return nil, p.Error("invalid FDSelect")
		}
		for i := 0; i < int(nRanges); i++ {
			fd, err := p.ReadUInt8()
			if err != nil {
				return nil, err
			}
			next, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			if next <= first || int(fd) >= nFonts {
				return nil, p.Error("invalid FDSelect range")
			}
			for gid := int(first); gid < int(next) && gid < nGlyphs; gid++ {
				res[gid] = fd
			}
			first = next
		}
	default:
		return nil, p.Error("unsupported FDSelect format %d", format)
	}

	return res, nil
}
