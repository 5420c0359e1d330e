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

package font

import "seehuhn.de/go/pdfglyph/font/internal/seal"

// ProgramKind identifies the implementation behind a [Program].
type ProgramKind int

// These are the supported font program variants.
const (
	ProgramCFF       ProgramKind = iota + 1 // CFF / Type1C font program
	ProgramTrueType                         // TrueType "glyf" outlines
	ProgramType1                            // Type 1 font program
	ProgramBuiltin                          // built-in substitute font
	ProgramComposite                        // composite (Type0) font
	ProgramType3                            // procedural Type 3 glyphs
)

func (k ProgramKind) String() string {
	switch k {
	case ProgramCFF:
		return "CFF"
	case ProgramTrueType:
		return "TrueType"
	case ProgramType1:
		return "Type1"
	case ProgramBuiltin:
		return "Builtin"
	case ProgramComposite:
		return "Composite"
	case ProgramType3:
		return "Type3"
	default:
		return "unknown"
	}
}

// Program renders the glyphs of one PDF font.
//
// Glyph looks up a glyph by character code and/or glyph name.  Code is
// [NoCode] if only the name is known, name is empty if only the code is
// known.  Each implementation documents which of the two it uses.  Glyph
// never returns nil: glyphs which cannot be found or rendered are replaced
// by an empty glyph.
//
// The set of implementations is closed; they are provided by the
// sub-packages of this module.  Programs are immutable after construction
// and are safe for concurrent use.
type Program interface {
	Glyph(code int, name string) *Glyph
	Kind() ProgramKind

	seal.Program
}
