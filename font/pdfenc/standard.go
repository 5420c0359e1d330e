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

// StandardEncoding is the Adobe Standard Encoding for Latin text.
//
// See Appendix D.2 of PDF 32000-1:2008.
var StandardEncoding = [256]string{
	// 0x00
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x08
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x10
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x18
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x20
	"space", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand", "quoteright",
	// 0x28
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen", "period", "slash",
	// 0x30
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	// 0x38
	"eight", "nine", "colon", "semicolon", "less", "equal", "greater", "question",
	// 0x40
	"at", "A", "B", "C", "D", "E", "F", "G",
	// 0x48
	"H", "I", "J", "K", "L", "M", "N", "O",
	// 0x50
	"P", "Q", "R", "S", "T", "U", "V", "W",
	// 0x58
	"X", "Y", "Z", "bracketleft", "backslash", "bracketright", "asciicircum", "underscore",
	// 0x60
	"quoteleft", "a", "b", "c", "d", "e", "f", "g",
	// 0x68
	"h", "i", "j", "k", "l", "m", "n", "o",
	// 0x70
	"p", "q", "r", "s", "t", "u", "v", "w",
	// 0x78
	"x", "y", "z", "braceleft", "bar", "braceright", "asciitilde", ".notdef",
	// 0x80
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x88
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x90
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x98
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0xa0
	".notdef", "exclamdown", "cent", "sterling", "fraction", "yen", "florin", "section",
	// 0xa8
	"currency", "quotesingle", "quotedblleft", "guillemotleft", "guilsinglleft", "guilsinglright", "fi", "fl",
	// 0xb0
	".notdef", "endash", "dagger", "daggerdbl", "periodcentered", ".notdef", "paragraph", "bullet",
	// 0xb8
	"quotesinglbase", "quotedblbase", "quotedblright", "guillemotright", "ellipsis", "perthousand", ".notdef", "questiondown",
	// 0xc0
	".notdef", "grave", "acute", "circumflex", "tilde", "macron", "breve", "dotaccent",
	// 0xc8
	"dieresis", ".notdef", "ring", "cedilla", ".notdef", "hungarumlaut", "ogonek", "caron",
	// 0xd0
	"emdash", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0xd8
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0xe0
	".notdef", "AE", ".notdef", "ordfeminine", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0xe8
	"Lslash", "Oslash", "OE", "ordmasculine", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0xf0
	".notdef", "ae", ".notdef", ".notdef", ".notdef", "dotlessi", ".notdef", ".notdef",
	// 0xf8
	"lslash", "oslash", "oe", "germandbls", ".notdef", ".notdef", ".notdef", ".notdef",
}
