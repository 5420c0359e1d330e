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

// readCharset decodes a custom charset.  The result maps glyph indices to
// SIDs, or to CIDs for CID-keyed fonts.
func readCharset(p *parser.Parser, nGlyphs int) ([]uint16, error) {
	format, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}

	charset := make([]uint16, 1, nGlyphs)
	switch format {
	case 0:
		for len(charset) < nGlyphs {
			sid, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			charset = append(charset, sid)
		}
	case 1, 2:
		for len(charset) < nGlyphs {
			first, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			var nLeft int
			if format == 1 {
				n, err := p.ReadUInt8()
				if err != nil {
					return nil, err
				}
				nLeft = int(n)
			} else {
				n, err := p.ReadUInt16()
				if err != nil {
					return nil, err
				}
				nLeft = int(n)
			}
			if int(first)+nLeft > 0xFFFF {
				return nil, p.Error("charset range out of bounds")
			}
			for i := 0; i <= nLeft && len(charset) < nGlyphs; i++ {
				charset = append(charset, first+uint16(i))
			}
		}
	default:
		return nil, p.Error("unsupported charset format %d", format)
	}

	return charset, nil
}

// predefinedCharset returns one of the three predefined charsets,
// truncated to nGlyphs entries.
func predefinedCharset(offs, nGlyphs int) []uint16 {
	var runs []sidRun
	switch offs {
	case 0:
		runs = isoAdobeCharset
	case 1:
		runs = expertCharset
	default:
		runs = expertSubsetCharset
	}

	var res []uint16
	for _, r := range runs {
		for sid := r.first; sid <= r.last; sid++ {
			if len(res) >= nGlyphs {
				return res
			}
			res = append(res, sid)
		}
	}
	return res
}

type sidRun struct {
	first, last uint16
}

var isoAdobeCharset = []sidRun{{0, 228}}

var expertCharset = []sidRun{
	{0, 1}, {229, 238}, {13, 15}, {99, 99}, {239, 248}, {27, 28},
	{249, 266}, {109, 110}, {267, 318}, {158, 158}, {155, 155},
	{163, 163}, {319, 326}, {150, 150}, {164, 164}, {169, 169},
	{327, 378},
}

var expertSubsetCharset = []sidRun{
	{0, 1}, {231, 232}, {235, 238}, {13, 15}, {99, 99}, {239, 248},
	{27, 28}, {249, 251}, {253, 266}, {109, 110}, {267, 270},
	{272, 272}, {300, 302}, {305, 305}, {314, 315}, {158, 158},
	{155, 155}, {163, 163}, {320, 326}, {150, 150}, {164, 164},
	{169, 169}, {327, 346},
}
