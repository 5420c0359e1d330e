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

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfglyph/pdf"
)

// Kind says which representation a [Glyph] uses.
type Kind int

// These are the possible glyph representations.
const (
	KindOutline   Kind = iota + 1 // Glyph.Outline is set
	KindProcedure                 // Glyph.Procedure is set
)

// Glyph is the result of looking up a character in a font.
//
// Exactly one of Outline and Procedure is non-nil, as indicated by Kind.
// Outlines and the advance vector are given in glyph space, where one unit
// corresponds to one unit of text space before the font size is applied.
// Glyphs are shared between callers and must not be modified.
type Glyph struct {
	Kind Kind

	Code int     // character code from the PDF string
	Name string  // glyph name, may be empty
	CID  cid.CID // character identifier, for composite fonts only

	Advance vec.Vec2

	Outline   *Outline
	Procedure *Procedure
}

// Procedure describes a glyph which is drawn by a PDF content stream.
// This is used for Type 3 fonts.
//
// The content stream is not interpreted by this library; Content and
// Resources are handed to the caller unchanged.
type Procedure struct {
	Name      pdf.Name
	Ref       pdf.Object // the CharProcs entry, usually a reference
	Content   []byte     // decoded content stream, nil for the empty procedure
	Resources pdf.Dict
}

// IsEmpty returns true if the procedure draws nothing.
func (p *Procedure) IsEmpty() bool {
	return p == nil || len(p.Content) == 0
}

// NewOutlineGlyph returns a glyph with the given outline.
// A nil outline is replaced by an empty one.
func NewOutlineGlyph(code int, name string, o *Outline, advance vec.Vec2) *Glyph {
	if o == nil {
		o = &Outline{}
	}
	return &Glyph{
		Kind:    KindOutline,
		Code:    code,
		Name:    name,
		Advance: advance,
		Outline: o,
	}
}

// EmptyGlyph returns an outline glyph which draws nothing and has zero
// advance.  This is used whenever a glyph cannot be found or rendered.
func EmptyGlyph(code int, name string) *Glyph {
	return NewOutlineGlyph(code, name, nil, vec.Vec2{})
}

// NoCode is used as the character code for lookups by glyph name only.
const NoCode = -1
