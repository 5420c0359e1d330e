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

// cffIndex is the decoded form of a CFF INDEX structure.
type cffIndex [][]byte

// readIndex decodes an INDEX at the current position of p.  After the call,
// p is positioned just after the INDEX.  The returned slices point into the
// font data.
func readIndex(p *parser.Parser) (cffIndex, error) {
	count, err := p.ReadUInt16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	offSize, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}
	if offSize < 1 || offSize > 4 {
		return nil, p.Error("invalid INDEX offset size %d", offSize)
	}

	offsets := make([]int, int(count)+1)
	prev := 1
	for i := range offsets {
		offs, err := p.ReadUInt(int(offSize))
		if err != nil {
			return nil, err
		}
		if i == 0 && offs != 1 || int(offs) < prev {
			return nil, p.Error("invalid INDEX offsets")
		}
		offsets[i] = int(offs)
		prev = int(offs)
	}

	data, err := p.ReadBytes(offsets[count] - 1)
	if err != nil {
		return nil, err
	}

	res := make(cffIndex, count)
	for i := range res {
		res[i] = data[offsets[i]-1 : offsets[i+1]-1]
	}
	return res, nil
}

// readIndexAt decodes the INDEX which starts at the given offset from the
// beginning of the font data.
func readIndexAt(p *parser.Parser, offs int, name string) (cffIndex, error) {
	err := p.SetRegion("CFF", 0, p.Size())
	if err != nil {
		return nil, err
	}
	if offs < 4 {
		return nil, invalidSince("missing " + name + " INDEX")
	}
	err = p.SeekPos(offs)
	if err != nil {
		return nil, err
	}
	return readIndex(p)
}
