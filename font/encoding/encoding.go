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

// Package encoding maps the bytes of PDF text strings to character codes,
// glyph names and CIDs.
//
// Simple fonts use [Simple] encodings, which map single bytes to glyph
// names.  Composite fonts use [CMap] encodings, which map two-byte codes to
// CIDs.  Text content is obtained from ToUnicode CMaps, see [ToUnicode].
package encoding

import "seehuhn.de/go/postscript/cid"

// Code describes one character code of a PDF text string.
type Code struct {
	// Code is the numeric value of the character code.
	Code int

	// Name is the glyph name, for simple fonts.  This is empty if the
	// encoding does not specify a name.
	Name string

	// CID is the character identifier, for composite fonts.
	CID cid.CID

	// Font is the index of the descendant font, for composite fonts.
	Font int

	// NumBytes is the number of bytes the code occupies in the text string.
	NumBytes int
}

// Decoder splits PDF text strings into character codes.
type Decoder interface {
	Decode(text []byte) []Code
}

// OneByte is the decoder used for composite fonts without a usable CMap.
// Each byte is one code, and the CID equals the code.
type OneByte struct{}

// Decode implements the [Decoder] interface.
func (OneByte) Decode(text []byte) []Code {
	res := make([]Code, len(text))
	for i, b := range text {
		res[i] = Code{Code: int(b), CID: cid.CID(b), NumBytes: 1}
	}
	return res
}
