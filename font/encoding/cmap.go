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

package encoding

import (
	"bytes"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/postscript"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/pdf"
)

// CMap maps the two-byte codes of a composite font to CIDs.
// CMaps are immutable after construction.
type CMap struct {
	Name string

	identity bool // unmapped codes map to themselves

	singles       map[uint16]cid.CID
	ranges        []cidRange
	notdefSingles map[uint16]cid.CID
	notdefRanges  []cidRange
}

type cidRange struct {
	low, high uint16
	first     cid.CID
}

// IdentityCMap maps every two-byte code to the CID with the same value.
var IdentityCMap = &CMap{Name: "Identity-H", identity: true}

// IsIdentity returns true if all codes which are not explicitly mapped map
// to the CID with the same value.
func (c *CMap) IsIdentity() bool {
	return c.identity
}

// Lookup returns the CID for a code.  Unmapped codes map to CID 0, unless
// the CMap is based on an identity CMap.
func (c *CMap) Lookup(code uint16) cid.CID {
	if x, ok := c.singles[code]; ok {
		return x
	}
	if x, ok := lookupRange(c.ranges, code); ok {
		return x
	}
	if x, ok := c.notdefSingles[code]; ok {
		return x
	}
	if r, ok := findRange(c.notdefRanges, code); ok {
		return r.first
	}
	if c.identity {
		return cid.CID(code)
	}
	return 0
}

// Decode implements the [Decoder] interface.
//
// Every code consists of two bytes.  An odd trailing byte is padded with a
// zero byte.
func (c *CMap) Decode(text []byte) []Code {
	res := make([]Code, 0, (len(text)+1)/2)
	for i := 0; i < len(text); i += 2 {
		code := uint16(text[i]) << 8
		n := 1
		if i+1 < len(text) {
			code |= uint16(text[i+1])
			n = 2
		}
		res = append(res, Code{
			Code:     int(code),
			CID:      c.Lookup(code),
			NumBytes: n,
		})
	}
	return res
}

func lookupRange(rr []cidRange, code uint16) (cid.CID, bool) {
	r, ok := findRange(rr, code)
	if !ok {
		return 0, false
	}
	return r.first + cid.CID(code-r.low), true
}

// findRange finds the range containing code.  The ranges must be sorted by
// their lower bound.  Where ranges overlap, the one which starts last wins.
func findRange(rr []cidRange, code uint16) (cidRange, bool) {
	// idx is the number of ranges starting at or before code
	idx, _ := slices.BinarySearchFunc(rr, code, func(r cidRange, code uint16) int {
		if r.low <= code {
			return -1
		}
		return 1
	})
	for idx--; idx >= 0; idx-- {
		if code <= rr[idx].high {
			return rr[idx], true
		}
	}
	return cidRange{}, false
}

// ReadCMap reads the Encoding entry of a Type 0 font.
//
// The names Identity-H and Identity-V give the identity CMap.  Other
// predefined CMaps are not available and are replaced by the identity CMap,
// with a warning.  Embedded CMaps are read from the CMap stream.
//
// The CMap OneByteIdentityH is treated as absent: in this case, nil is
// returned without error and callers should decode text one byte at a time,
// using [OneByte].
func ReadCMap(r pdf.Getter, obj pdf.Object) (*CMap, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	switch obj := obj.(type) {
	case pdf.Name:
		return predefinedCMap(string(obj)), nil
	case *pdf.Stream:
		return readEmbeddedCMap(r, obj)
	case nil:
		return nil, pdf.Errorf("missing Encoding in Type 0 font")
	default:
		return nil, pdf.Errorf("invalid CMap object of type %T", obj)
	}
}

func predefinedCMap(name string) *CMap {
	switch name {
	case "OneByteIdentityH":
		return nil
	case "Identity-H", "Identity-V":
		return &CMap{Name: name, identity: true}
	default:
		font.Logger().Warn("encoding: predefined CMap not available, using identity",
			"cmap", name)
		return &CMap{Name: name, identity: true}
	}
}

func readEmbeddedCMap(r pdf.Getter, stm *pdf.Stream) (*CMap, error) {
	raw, err := postscript.ReadCMap(bytes.NewReader(stm.Data))
	if err != nil {
		return nil, &font.InvalidFontError{
			SubSystem: "encoding",
			Reason:    "cannot parse CMap: " + err.Error(),
		}
	}

	res := &CMap{}
	if name, ok := raw["CMapName"].(postscript.Name); ok {
		res.Name = string(name)
	}
	if res.Name == "OneByteIdentityH" {
		return nil, nil
	}

	codeMap, ok := raw["CodeMap"].(*postscript.CMapInfo)
	if !ok {
		return nil, &font.InvalidFontError{
			SubSystem: "encoding",
			Reason:    "unsupported CMap format",
		}
	}

	// The parent CMap can be given in the stream dictionary or in the
	// CMap file.  Only the identity CMaps are supported as parents.
	parent := string(codeMap.UseCMap)
	if useCMap, _ := pdf.GetName(r, stm.Dict["UseCMap"]); useCMap != "" {
		parent = string(useCMap)
	}
	switch parent {
	case "":
		// pass
	case "Identity-H", "Identity-V":
		res.identity = true
	default:
		font.Logger().Warn("encoding: unsupported parent CMap, using identity",
			"cmap", res.Name, "parent", parent)
		res.identity = true
	}

	res.singles = make(map[uint16]cid.CID)
	for _, entry := range codeMap.CidChars {
		code, ok := codeValue(entry.Src)
		x, isInt := entry.Dst.(postscript.Integer)
		if !ok || !isInt || x < 0 {
			continue
		}
		res.singles[code] = cid.CID(x)
	}
	for _, entry := range codeMap.CidRanges {
		if rng, ok := makeRange(entry.Low, entry.High, entry.Dst); ok {
			res.ranges = append(res.ranges, rng)
		}
	}
	sortRanges(res.ranges)

	res.notdefSingles = make(map[uint16]cid.CID)
	for _, entry := range codeMap.NotdefChars {
		code, ok := codeValue(entry.Src)
		x, isInt := entry.Dst.(postscript.Integer)
		if !ok || !isInt || x < 0 {
			continue
		}
		res.notdefSingles[code] = cid.CID(x)
	}
	for _, entry := range codeMap.NotdefRanges {
		if rng, ok := makeRange(entry.Low, entry.High, entry.Dst); ok {
			res.notdefRanges = append(res.notdefRanges, rng)
		}
	}
	sortRanges(res.notdefRanges)

	return res, nil
}

func makeRange(low, high []byte, dst postscript.Object) (cidRange, bool) {
	l, ok1 := codeValue(low)
	h, ok2 := codeValue(high)
	x, isInt := dst.(postscript.Integer)
	if !ok1 || !ok2 || !isInt || x < 0 || l > h {
		return cidRange{}, false
	}
	return cidRange{low: l, high: h, first: cid.CID(x)}, true
}

func sortRanges(rr []cidRange) {
	slices.SortStableFunc(rr, func(a, b cidRange) int {
		return int(a.low) - int(b.low)
	})
}

// codeValue converts a one- or two-byte code to its numeric value.
func codeValue(code []byte) (uint16, bool) {
	switch len(code) {
	case 1:
		return uint16(code[0]), true
	case 2:
		return uint16(code[0])<<8 | uint16(code[1]), true
	default:
		return 0, false
	}
}
