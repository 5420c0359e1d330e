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

// MacRomanEncoding is the PDF version of the MacOS standard encoding for
// Latin text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var MacRomanEncoding = [256]string{
	// 0x00
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x08
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x10
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x18
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x20
	"space", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand", "quotesingle",
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
	"grave", "a", "b", "c", "d", "e", "f", "g",
	// 0x68
	"h", "i", "j", "k", "l", "m", "n", "o",
	// 0x70
	"p", "q", "r", "s", "t", "u", "v", "w",
	// 0x78
	"x", "y", "z", "braceleft", "bar", "braceright", "asciitilde", ".notdef",
	// 0x80
	"Adieresis", "Aring", "Ccedilla", "Eacute", "Ntilde", "Odieresis", "Udieresis", "aacute",
	// 0x88
	"agrave", "acircumflex", "adieresis", "atilde", "aring", "ccedilla", "eacute", "egrave",
	// 0x90
	"ecircumflex", "edieresis", "iacute", "igrave", "icircumflex", "idieresis", "ntilde", "oacute",
	// 0x98
	"ograve", "ocircumflex", "odieresis", "otilde", "uacute", "ugrave", "ucircumflex", "udieresis",
	// 0xa0
	"dagger", "degree", "cent", "sterling", "section", "bullet", "paragraph", "germandbls",
	// 0xa8
	"registered", "copyright", "trademark", "acute", "dieresis", ".notdef", "AE", "Oslash",
	// 0xb0
	".notdef", "plusminus", ".notdef", ".notdef", "yen", "mu", ".notdef", ".notdef",
	// 0xb8
	".notdef", ".notdef", ".notdef", "ordfeminine", "ordmasculine", ".notdef", "ae", "oslash",
	// 0xc0
	"questiondown", "exclamdown", "logicalnot", ".notdef", "florin", ".notdef", ".notdef", "guillemotleft",
	// 0xc8
	"guillemotright", "ellipsis", "space", "Agrave", "Atilde", "Otilde", "OE", "oe",
	// 0xd0
	"endash", "emdash", "quotedblleft", "quotedblright", "quoteleft", "quoteright", "divide", ".notdef",
	// 0xd8
	"ydieresis", "Ydieresis", "fraction", "currency", "guilsinglleft", "guilsinglright", "fi", "fl",
	// 0xe0
	"daggerdbl", "periodcentered", "quotesinglbase", "quotedblbase", "perthousand", "Acircumflex", "Ecircumflex", "Aacute",
	// 0xe8
	"Edieresis", "Egrave", "Iacute", "Icircumflex", "Idieresis", "Igrave", "Oacute", "Ocircumflex",
	// 0xf0
	".notdef", "Ograve", "Uacute", "Ucircumflex", "Ugrave", "dotlessi", "circumflex", "tilde",
	// 0xf8
	"macron", "breve", "dotaccent", "ring", "cedilla", "hungarumlaut", "ogonek", "caron",
}
