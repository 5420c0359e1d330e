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

// SymbolEncoding is the built-in encoding for the Symbol font.
//
// See Appendix D.5 of PDF 32000-1:2008.
var SymbolEncoding = [256]string{
	// 0x00
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x08
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x10
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x18
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x20
	"space", "exclam", "universal", "numbersign", "existential", "percent", "ampersand", "suchthat",
	// 0x28
	"parenleft", "parenright", "asteriskmath", "plus", "comma", "minus", "period", "slash",
	// 0x30
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	// 0x38
	"eight", "nine", "colon", "semicolon", "less", "equal", "greater", "question",
	// 0x40
	"congruent", "Alpha", "Beta", "Chi", "Delta", "Epsilon", "Phi", "Gamma",
	// 0x48
	"Eta", "Iota", "theta1", "Kappa", "Lambda", "Mu", "Nu", "Omicron",
	// 0x50
	"Pi", "Theta", "Rho", "Sigma", "Tau", "Upsilon", "sigma1", "Omega",
	// 0x58
	"Xi", "Psi", "Zeta", "bracketleft", "therefore", "bracketright", "perpendicular", "underscore",
	// 0x60
	"radicalex", "alpha", "beta", "chi", "delta", "epsilon", "phi", "gamma",
	// 0x68
	"eta", "iota", "phi1", "kappa", "lambda", "mu", "nu", "omicron",
	// 0x70
	"pi", "theta", "rho", "sigma", "tau", "upsilon", "omega1", "omega",
	// 0x78
	"xi", "psi", "zeta", "braceleft", "bar", "braceright", "similar", ".notdef",
	// 0x80
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x88
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x90
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0x98
	".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef", ".notdef",
	// 0xa0
	"Euro", "Upsilon1", "minute", "lessequal", "fraction", "infinity", "florin", "club",
	// 0xa8
	"diamond", "heart", "spade", "arrowboth", "arrowleft", "arrowup", "arrowright", "arrowdown",
	// 0xb0
	"degree", "plusminus", "second", "greaterequal", "multiply", "proportional", "partialdiff", "bullet",
	// 0xb8
	"divide", "notequal", "equivalence", "approxequal", "ellipsis", "arrowvertex", "arrowhorizex", "carriagereturn",
	// 0xc0
	"aleph", "Ifraktur", "Rfraktur", "weierstrass", "circlemultiply", "circleplus", "emptyset", "intersection",
	// 0xc8
	"union", "propersuperset", "reflexsuperset", "notsubset", "propersubset", "reflexsubset", "element", "notelement",
	// 0xd0
	"angle", "gradient", "registerserif", "copyrightserif", "trademarkserif", "product", "radical", "dotmath",
	// 0xd8
	"logicalnot", "logicaland", "logicalor", "arrowdblboth", "arrowdblleft", "arrowdblup", "arrowdblright", "arrowdbldown",
	// 0xe0
	"lozenge", "angleleft", "registersans", "copyrightsans", "trademarksans", "summation", "parenlefttp", "parenleftex",
	// 0xe8
	"parenleftbt", "bracketlefttp", "bracketleftex", "bracketleftbt", "bracelefttp", "braceleftmid", "braceleftbt", "braceex",
	// 0xf0
	".notdef", "angleright", "integral", "integraltp", "integralex", "integralbt", "parenrighttp", "parenrightex",
	// 0xf8
	"parenrightbt", "bracketrighttp", "bracketrightex", "bracketrightbt", "bracerighttp", "bracerightmid", "bracerightbt", ".notdef",
}
