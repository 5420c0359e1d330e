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

package truetype

import (
	"encoding/binary"

	"seehuhn.de/go/pdfglyph/font/parser"
)

// firstFont extracts the first font of a TrueType collection as a
// stand-alone font file.
//
// Tables inside a collection use offsets relative to the start of the
// collection, so the table directory is rewritten and the table data is
// copied.
func firstFont(data []byte) ([]byte, error) {
	p := parser.New("ttcf", data)
	_, err := p.ReadBytes(8) // tag and version
	if err != nil {
		return nil, err
	}
	numFonts, err := p.ReadUInt32()
	if err != nil {
		return nil, err
	}
	if numFonts == 0 {
		return nil, p.Error("empty font collection")
	}
	offset, err := p.ReadUInt32()
	if err != nil {
		return nil, err
	}
	if int64(offset) >= int64(len(data)) {
		return nil, p.Error("invalid font offset %d", offset)
	}

	err = p.SetRegion("sfnt", int(offset), len(data)-int(offset))
	if err != nil {
		return nil, err
	}
	header, err := p.ReadBytes(12)
	if err != nil {
		return nil, err
	}
	numTables := int(binary.BigEndian.Uint16(header[4:]))
	records, err := p.ReadBytes(16 * numTables)
	if err != nil {
		return nil, err
	}

	dirLen := 12 + len(records)
	res := make([]byte, dirLen, dirLen+len(data)-int(offset))
	copy(res, header)
	copy(res[12:], records)
	for i := range numTables {
		rec := res[12+16*i : 28+16*i]
		start := uint64(binary.BigEndian.Uint32(rec[8:]))
		length := uint64(binary.BigEndian.Uint32(rec[12:]))
		if start+length > uint64(len(data)) {
			return nil, p.Error("table %q extends beyond end of file", rec[:4])
		}

		binary.BigEndian.PutUint32(rec[8:], uint32(len(res)))
		res = append(res, data[start:start+length]...)
		for len(res)%4 != 0 {
			res = append(res, 0)
		}
	}
	return res, nil
}
