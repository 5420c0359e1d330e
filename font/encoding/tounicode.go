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

	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/postscript"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/pdf"
)

// ToUnicode maps character codes to text, as described by the ToUnicode
// entry of a font dictionary.
type ToUnicode struct {
	singles map[codeKey]string
	ranges  []bfRange
}

// codeKey identifies a character code, including its length in bytes.
// The codes <41> and <0041> are different.
type codeKey struct {
	value    uint32
	numBytes int
}

type bfRange struct {
	low, high codeKey

	// Either base or values is used.  For base, the last character is
	// incremented for each code in the range.
	base   string
	values []string
}

// Lookup returns the text for a character code of the given length.
func (t *ToUnicode) Lookup(code int, numBytes int) (string, bool) {
	if t == nil || code < 0 {
		return "", false
	}
	key := codeKey{value: uint32(code), numBytes: numBytes}
	if s, ok := t.singles[key]; ok {
		return s, true
	}
	for i := len(t.ranges) - 1; i >= 0; i-- {
		r := t.ranges[i]
		if r.low.numBytes != numBytes || key.value < r.low.value || key.value > r.high.value {
			continue
		}
		idx := int(key.value - r.low.value)
		if r.values != nil {
			if idx < len(r.values) && r.values[idx] != "" {
				return r.values[idx], true
			}
			return "", false
		}
		if r.base == "" {
			return "", false
		}
		rr := []rune(r.base)
		rr[len(rr)-1] += rune(idx)
		return string(rr), true
	}
	return "", false
}

// ReadToUnicode reads a ToUnicode CMap stream.
// If obj is null, nil is returned without error.
func ReadToUnicode(r pdf.Getter, obj pdf.Object) (*ToUnicode, error) {
	data, _, err := pdf.GetStreamData(r, obj)
	if err != nil {
		return nil, pdf.Wrap(err, "ToUnicode")
	}
	if data == nil {
		return nil, nil
	}

	raw, err := postscript.ReadCMap(bytes.NewReader(data))
	if err != nil {
		return nil, &font.InvalidFontError{
			SubSystem: "encoding",
			Reason:    "cannot parse ToUnicode CMap: " + err.Error(),
		}
	}
	codeMap, ok := raw["CodeMap"].(*postscript.CMapInfo)
	if !ok {
		return nil, &font.InvalidFontError{
			SubSystem: "encoding",
			Reason:    "unsupported ToUnicode CMap format",
		}
	}

	res := &ToUnicode{
		singles: make(map[codeKey]string),
	}
	for _, entry := range codeMap.BfChars {
		key, ok := makeCodeKey(entry.Src)
		if !ok {
			continue
		}
		if s, ok := utf16Text(entry.Dst); ok {
			res.singles[key] = s
		}
	}
	for _, entry := range codeMap.BfRanges {
		low, ok1 := makeCodeKey(entry.Low)
		high, ok2 := makeCodeKey(entry.High)
		if !ok1 || !ok2 || low.numBytes != high.numBytes || low.value > high.value {
			continue
		}
		r := bfRange{low: low, high: high}
		switch dst := entry.Dst.(type) {
		case postscript.String:
			r.base, _ = utf16Text(dst)
		case postscript.Array:
			r.values = make([]string, len(dst))
			for i, v := range dst {
				r.values[i], _ = utf16Text(v)
			}
		default:
			continue
		}
		res.ranges = append(res.ranges, r)
	}
	return res, nil
}

func makeCodeKey(code []byte) (codeKey, bool) {
	if len(code) == 0 || len(code) > 4 {
		return codeKey{}, false
	}
	var x uint32
	for _, b := range code {
		x = x<<8 | uint32(b)
	}
	return codeKey{value: x, numBytes: len(code)}, true
}

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// utf16Text decodes a UTF-16BE string from a ToUnicode CMap.
func utf16Text(obj postscript.Object) (string, bool) {
	s, ok := obj.(postscript.String)
	if !ok || len(s) == 0 || len(s)%2 != 0 {
		return "", false
	}
	text, err := utf16BE.NewDecoder().Bytes(s)
	if err != nil {
		return "", false
	}
	return string(text), true
}
