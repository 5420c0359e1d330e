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
	"fmt"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/pdfenc"
	"seehuhn.de/go/pdfglyph/pdf"
)

// Simple is the encoding of a simple font.  It consists of a base table
// and a set of differences.  Simple encodings are immutable.
type Simple struct {
	base        *[256]string
	differences map[byte]string
}

// NewSimple returns a new simple encoding.  If base is nil, the standard
// encoding is used.  The differences map must not be changed by the caller
// afterwards.
func NewSimple(base *[256]string, differences map[byte]string) *Simple {
	if base == nil {
		base = &pdfenc.StandardEncoding
	}
	return &Simple{base: base, differences: differences}
}

// NoNames is a base table which maps no code to a glyph name.  This is used
// for fonts where codes select glyphs directly.
var NoNames = &[256]string{}

// Name returns the glyph name for a code.
// The empty string is returned if the code is not mapped.
func (e *Simple) Name(code byte) string {
	if name, ok := e.differences[code]; ok {
		return name
	}
	name := e.base[code]
	if name == ".notdef" {
		return ""
	}
	return name
}

// Decode implements the [Decoder] interface.
func (e *Simple) Decode(text []byte) []Code {
	res := make([]Code, len(text))
	for i, b := range text {
		res[i] = Code{Code: int(b), Name: e.Name(b), NumBytes: 1}
	}
	return res
}

// DifferenceNames returns the glyph names from the Differences array, in
// order of the codes.  Names from the base encoding are not included.
func (e *Simple) DifferenceNames() []string {
	var res []string
	for code := 0; code < 256; code++ {
		if name, ok := e.differences[byte(code)]; ok && name != "" {
			res = append(res, name)
		}
	}
	return res
}

// HasDifferences returns true if the encoding dictionary had a non-empty
// Differences array.
func (e *Simple) HasDifferences() bool {
	return len(e.differences) > 0
}

// ReadSimple reads the Encoding entry of a simple font dictionary.
//
// The entry can be the name of a predefined encoding or an encoding
// dictionary.  If the entry is absent, or if the dictionary has no usable
// BaseEncoding, the built-in encoding of the font is used as the base.  If
// builtin is nil, the standard encoding is used instead.
//
// Malformed entries are logged and treated as absent.
func ReadSimple(r pdf.Getter, obj pdf.Object, builtin *[256]string) *Simple {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		font.Logger().Warn("encoding: cannot read Encoding", "err", err)
		obj = nil
	}

	switch obj := obj.(type) {
	case pdf.Name:
		if enc, ok := pdfenc.ByName(obj); ok {
			return NewSimple(enc.Encoding, nil)
		}
		font.Logger().Warn("encoding: unknown encoding name", "name", string(obj))
		return NewSimple(builtin, nil)

	case pdf.Dict:
		base := builtin
		baseName, _ := pdf.GetName(r, obj["BaseEncoding"])
		if enc, ok := pdfenc.ByName(baseName); ok {
			base = enc.Encoding
		}
		return NewSimple(base, readDifferences(r, obj["Differences"]))

	case nil:
		return NewSimple(builtin, nil)

	default:
		font.Logger().Warn("encoding: invalid Encoding entry",
			"type", fmt.Sprintf("%T", obj))
		return NewSimple(builtin, nil)
	}
}

func readDifferences(r pdf.Getter, obj pdf.Object) map[byte]string {
	diffArray, _ := pdf.GetArray(r, obj)
	if len(diffArray) == 0 {
		return nil
	}

	differences := make(map[byte]string)
	code := -1
	for _, item := range diffArray {
		item, err := pdf.Resolve(r, item)
		if err != nil {
			continue
		}
		switch item := item.(type) {
		case pdf.Integer:
			code = int(item)
		case pdf.Name:
			if code >= 0 && code < 256 {
				differences[byte(code)] = string(item)
				code++
			}
		}
	}
	return differences
}
