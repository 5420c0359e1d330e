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
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font/parser"
)

// readEncoding decodes a custom encoding.  The result maps character codes
// to glyph indices, with 0 for unmapped codes.
func readEncoding(p *parser.Parser, charset []uint16) ([]glyph.ID, error) {
	format, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}

	res := make([]glyph.ID, 256)
	current := glyph.ID(1)
	switch format & 0x7f {
	case 0:
		nCodes, err := p.ReadUInt8()
		if err != nil {
			return nil, err
		}
		codes, err := p.ReadBytes(int(nCodes))
		if err != nil {
			return nil, err
		}
		for _, c := range codes {
			if int(current) >= len(charset) {
				break
			}
			res[c] = current
			current++
		}
	case 1:
		nRanges, err := p.ReadUInt8()
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(nRanges); i++ {
			first, err := p.ReadUInt8()
			if err != nil {
				return nil, err
			}
			nLeft, err := p.ReadUInt8()
			if err != nil {
				return nil, err
			}
			for c := int(first); c <= int(first)+int(nLeft) && c < 256; c++ {
				if int(current) >= len(charset) {
					break
				}
				res[c] = current
				current++
			}
		}
	default:
		return nil, p.Error("unsupported encoding format %d", format)
	}

	if format&0x80 != 0 {
		sidToGID := make(map[uint16]glyph.ID, len(charset))
		for gid := len(charset) - 1; gid > 0; gid-- {
			sidToGID[charset[gid]] = glyph.ID(gid)
		}

		nSups, err := p.ReadUInt8()
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(nSups); i++ {
			code, err := p.ReadUInt8()
			if err != nil {
				return nil, err
			}
			sid, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			if gid, ok := sidToGID[sid]; ok {
				res[code] = gid
			}
		}
	}

	return res, nil
}

// expertEncoding returns the glyph name for code in the predefined Expert
// encoding, or the empty string if the code is unused.
func expertEncoding(code byte) string {
	for _, r := range expertEncodingRuns {
		if code >= r.code && int(code) < int(r.code)+int(r.n) {
			return standardStrings[r.sid+uint16(code-r.code)]
		}
	}
	return ""
}

var expertEncodingRuns = []struct {
	code byte
	sid  uint16
	n    uint8
}{
	{32, 1, 1}, {33, 229, 2}, {36, 231, 8}, {44, 13, 3}, {47, 99, 1},
	{48, 239, 10}, {58, 27, 2}, {60, 249, 4}, {65, 253, 5}, {73, 258, 1},
	{76, 259, 4}, {82, 263, 3}, {86, 266, 1}, {87, 109, 2}, {89, 267, 3},
	{93, 270, 34}, {161, 304, 3}, {166, 307, 5}, {172, 312, 1},
	{175, 313, 1}, {178, 314, 2}, {182, 316, 3}, {188, 158, 1},
	{189, 155, 1}, {190, 163, 1}, {191, 319, 7}, {200, 326, 1},
	{201, 150, 1}, {202, 164, 1}, {203, 169, 1}, {204, 327, 52},
}
