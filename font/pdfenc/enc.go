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

package pdfenc

import "seehuhn.de/go/pdfglyph/pdf"

// An Encoding is a mapping from single byte codes to glyph names.
// Unused codes map to ".notdef".
type Encoding struct {
	Encoding *[256]string
	Has      map[string]bool
}

func newEncoding(table *[256]string) *Encoding {
	has := make(map[string]bool)
	for _, name := range table {
		if name != ".notdef" {
			has[name] = true
		}
	}
	return &Encoding{
		Encoding: table,
		Has:      has,
	}
}

// Decode returns the glyph name for the given code.  The empty string is
// returned for unused codes.
func (e *Encoding) Decode(code byte) string {
	name := e.Encoding[code]
	if name == ".notdef" {
		return ""
	}
	return name
}

// The predefined encodings.
var (
	Standard  = newEncoding(&StandardEncoding)
	WinAnsi   = newEncoding(&WinAnsiEncoding)
	MacRoman  = newEncoding(&MacRomanEncoding)
	MacExpert = newEncoding(&MacExpertEncoding)
	Symbol    = newEncoding(&SymbolEncoding)
)

// ByName returns the predefined encoding with the given PDF name.
// The second return value is false if the name is not one of
// StandardEncoding, WinAnsiEncoding, MacRomanEncoding and
// MacExpertEncoding.
func ByName(name pdf.Name) (*Encoding, bool) {
	switch name {
	case "StandardEncoding":
		return Standard, true
	case "WinAnsiEncoding":
		return WinAnsi, true
	case "MacRomanEncoding":
		return MacRoman, true
	case "MacExpertEncoding":
		return MacExpert, true
	default:
		return nil, false
	}
}
