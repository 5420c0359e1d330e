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
	"sort"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpApprox = cmpopts.EquateApprox(0, 1e-9)

func u16(x int) []byte {
	return []byte{byte(x >> 8), byte(x)}
}

func u32(x int) []byte {
	return []byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
}

// buildSfnt assembles an sfnt file from the given tables.
func buildSfnt(scaler int, tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	res := u32(scaler)
	res = append(res, u16(len(tags))...)
	res = append(res, 0, 0, 0, 0, 0, 0)
	offset := 12 + 16*len(tags)
	for _, tag := range tags {
		data := tables[tag]
		res = append(res, tag...)
		res = append(res, 0, 0, 0, 0) // checksum
		res = append(res, u32(offset)...)
		res = append(res, u32(len(data))...)
		offset += (len(data) + 3) &^ 3
	}
	for _, tag := range tags {
		data := tables[tag]
		res = append(res, data...)
		for len(res)%4 != 0 {
			res = append(res, 0)
		}
	}
	return res
}

// testPoint is a point of a simple test glyph.
type testPoint struct {
	x, y    int
	onCurve bool
}

// encodeSimple encodes a glyph with one contour, using 16 bit coordinate
// deltas throughout.
func encodeSimple(pts ...testPoint) []byte {
	res := u16(1)
	res = append(res, make([]byte, 8)...) // bounding box
	res = append(res, u16(len(pts)-1)...)
	res = append(res, 0, 0) // instructionLength
	for _, p := range pts {
		if p.onCurve {
			res = append(res, 0x01)
		} else {
			res = append(res, 0x00)
		}
	}
	prev := 0
	for _, p := range pts {
		res = append(res, u16(p.x-prev)...)
		prev = p.x
	}
	prev = 0
	for _, p := range pts {
		res = append(res, u16(p.y-prev)...)
		prev = p.y
	}
	return res
}

// testComponent is a component of a composite test glyph.
type testComponent struct {
	gid    int
	dx, dy int
	scale  float64 // 0 means no scale entry
}

func encodeComposite(comps ...testComponent) []byte {
	res := u16(0xFFFF)
	res = append(res, make([]byte, 8)...)
	for i, c := range comps {
		flags := 0x0003 // ARG_1_AND_2_ARE_WORDS | ARGS_ARE_XY_VALUES
		if c.scale != 0 {
			flags |= 0x0008
		}
		if i < len(comps)-1 {
			flags |= 0x0020
		}
		res = append(res, u16(flags)...)
		res = append(res, u16(c.gid)...)
		res = append(res, u16(c.dx)...)
		res = append(res, u16(c.dy)...)
		if c.scale != 0 {
			res = append(res, u16(int(c.scale*16384))...)
		}
	}
	return res
}

// testGlyph describes one glyph of a test font.
type testGlyph struct {
	name  string
	width int
	data  []byte
}

// testGlyphs is the glyph set used by most tests.  The font has 1000 units
// per em.
var testGlyphs = []testGlyph{
	{name: ".notdef", width: 500},
	{name: "A", width: 600, data: encodeSimple(
		testPoint{0, 0, true},
		testPoint{100, 0, false},
		testPoint{100, 100, false},
		testPoint{0, 100, true},
	)},
	{name: "circle", width: 700, data: encodeSimple(
		testPoint{0, 0, false},
		testPoint{100, 0, false},
		testPoint{100, 100, false},
		testPoint{0, 100, false},
	)},
	{name: "Acopy", width: 600, data: encodeComposite(
		testComponent{gid: 1},
	)},
	{name: "loop", width: 800, data: encodeComposite(
		testComponent{gid: 1},
		testComponent{gid: 4},
	)},
	{name: "small", width: 300, data: encodeComposite(
		testComponent{gid: 1, dx: 10, dy: 20, scale: 0.5},
	)},
}

// testCmap maps 'A' to glyph 1 and U+F042 to glyph 5, using a (3,1)
// format 4 subtable.
func testCmap() []byte {
	type seg struct{ start, end, delta int }
	segs := []seg{
		{0x41, 0x41, 1 - 0x41},
		{0xF042, 0xF042, 5 - 0xF042},
		{0xFFFF, 0xFFFF, 1},
	}
	n := len(segs)

	sub := u16(4)
	sub = append(sub, u16(16+8*n)...) // length
	sub = append(sub, u16(0)...)      // language
	sub = append(sub, u16(2*n)...)
	sub = append(sub, 0, 0, 0, 0, 0, 0) // searchRange, entrySelector, rangeShift
	for _, s := range segs {
		sub = append(sub, u16(s.end)...)
	}
	sub = append(sub, 0, 0) // reservedPad
	for _, s := range segs {
		sub = append(sub, u16(s.start)...)
	}
	for _, s := range segs {
		sub = append(sub, u16(s.delta&0xFFFF)...)
	}
	for range segs {
		sub = append(sub, 0, 0) // idRangeOffset
	}

	res := u16(0)
	res = append(res, u16(1)...)
	res = append(res, u16(3)...)
	res = append(res, u16(1)...)
	res = append(res, u32(12)...)
	return append(res, sub...)
}

// buildTestFont assembles a TrueType font with the glyphs in gg.
func buildTestFont(gg []testGlyph) []byte {
	head := make([]byte, 54)
	copy(head, u32(0x00010000))
	copy(head[12:], u32(0x5F0F3CF5))
	copy(head[18:], u16(1000))
	copy(head[50:], u16(1)) // long loca offsets

	maxp := make([]byte, 32)
	copy(maxp, u32(0x00010000))
	copy(maxp[4:], u16(len(gg)))

	hhea := make([]byte, 36)
	copy(hhea, u32(0x00010000))
	copy(hhea[34:], u16(len(gg)))

	var hmtx, loca, glyf []byte
	for _, g := range gg {
		hmtx = append(hmtx, u16(g.width)...)
		hmtx = append(hmtx, 0, 0)
		loca = append(loca, u32(len(glyf))...)
		glyf = append(glyf, g.data...)
		if len(glyf)%2 != 0 {
			glyf = append(glyf, 0)
		}
	}
	loca = append(loca, u32(len(glyf))...)

	post := make([]byte, 32)
	copy(post, u32(0x00020000))
	post = append(post, u16(len(gg))...)
	var extra []byte
	numExtra := 0
	for _, g := range gg {
		switch g.name {
		case ".notdef":
			post = append(post, u16(0)...)
		case "A":
			post = append(post, u16(36)...)
		default:
			post = append(post, u16(258+numExtra)...)
			extra = append(extra, byte(len(g.name)))
			extra = append(extra, g.name...)
			numExtra++
		}
	}
	post = append(post, extra...)

	return buildSfnt(0x00010000, map[string][]byte{
		"cmap": testCmap(),
		"glyf": glyf,
		"head": head,
		"hhea": hhea,
		"hmtx": hmtx,
		"loca": loca,
		"maxp": maxp,
		"post": post,
	})
}

// buildCollection wraps a font file into a TrueType collection which
// contains only this font.
func buildCollection(fontData []byte) []byte {
	const headerLen = 16
	res := []byte("ttcf")
	res = append(res, u32(0x00010000)...)
	res = append(res, u32(1)...)
	res = append(res, u32(headerLen)...)
	res = append(res, fontData...)

	numTables := int(fontData[4])<<8 | int(fontData[5])
	for i := range numTables {
		pos := headerLen + 12 + 16*i + 8
		offset := int(res[pos])<<24 | int(res[pos+1])<<16 | int(res[pos+2])<<8 | int(res[pos+3])
		copy(res[pos:], u32(offset+headerLen))
	}
	return res
}
