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

// Package cid implements composite (Type 0) PDF fonts.
//
// A composite font maps the character codes of a PDF string to CIDs using a
// CMap, and the CIDs to the glyphs of a descendant font.
package cid

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/builtin"
	"seehuhn.de/go/pdfglyph/font/cff"
	"seehuhn.de/go/pdfglyph/font/encoding"
	"seehuhn.de/go/pdfglyph/font/internal/seal"
	"seehuhn.de/go/pdfglyph/font/truetype"
)

// Outliner gives access to the glyphs of a font file by glyph index.
// Outlines and advance widths are given in glyph space.
type Outliner interface {
	NumGlyphs() int
	GlyphName(gid glyph.ID) string
	Outline(gid glyph.ID) (*font.Outline, float64, error)
}

// GIDFunc selects the glyph for a character code and the corresponding CID.
type GIDFunc func(code int, c cid.CID) glyph.ID

// Program renders the glyphs of a composite font.
type Program struct {
	seal.Marker

	desc   Outliner
	cmap   *encoding.CMap
	toGID  GIDFunc
	widths *font.CIDWidths
}

// New returns a Program for a composite font.
//
// The CMap maps character codes to CIDs.  If cmap is nil, the character
// code is used as the CID.  Glyph advances are taken from widths; a nil
// value gives every glyph the default width.
func New(desc Outliner, cmap *encoding.CMap, toGID GIDFunc, widths *font.CIDWidths) *Program {
	return &Program{
		desc:   desc,
		cmap:   cmap,
		toGID:  toGID,
		widths: widths,
	}
}

// NewCFF returns a Program for a composite font with an embedded CFF font
// program (CIDFontType0).  CID-keyed fonts map CIDs to glyphs using their
// charset, for other fonts the CID is the glyph index.
func NewCFF(f *cff.Font, cmap *encoding.CMap, widths *font.CIDWidths) *Program {
	toGID := func(_ int, c cid.CID) glyph.ID {
		gid, _ := f.CIDToGID(c)
		return gid
	}
	return New(f, cmap, toGID, widths)
}

// NewTrueType returns a Program for a composite font with an embedded
// TrueType font program (CIDFontType2).  The cidToGID slice is the decoded
// CIDToGIDMap; nil means that CIDs are glyph indices.
func NewTrueType(f *truetype.Font, cmap *encoding.CMap, cidToGID []glyph.ID, widths *font.CIDWidths) *Program {
	toGID := func(_ int, c cid.CID) glyph.ID {
		if cidToGID == nil {
			return glyph.ID(c)
		}
		if int(c) < len(cidToGID) {
			return cidToGID[c]
		}
		return 0
	}
	return New(f, cmap, toGID, widths)
}

// NewBuiltin returns a Program for a composite font without an embedded
// font program.  Glyphs are found by mapping character codes to text using
// the ToUnicode CMap.  If no ToUnicode entry is present, the character code
// is interpreted as a Unicode value.
func NewBuiltin(f *builtin.Font, cmap *encoding.CMap, toUnicode *encoding.ToUnicode, widths *font.CIDWidths) *Program {
	numBytes := 2
	if cmap == nil {
		numBytes = 1
	}
	toGID := func(code int, _ cid.CID) glyph.ID {
		return f.RuneToGID(builtin.CodeToRune(toUnicode, code, numBytes))
	}
	return New(f, cmap, toGID, widths)
}

// Kind implements the [font.Program] interface.
func (p *Program) Kind() font.ProgramKind {
	return font.ProgramComposite
}

// CID returns the CID for a character code.
func (p *Program) CID(code int) cid.CID {
	if code < 0 || code > 0xFFFF {
		return 0
	}
	if p.cmap == nil {
		return cid.CID(code)
	}
	return p.cmap.Lookup(uint16(code))
}

// Glyph implements the [font.Program] interface.
//
// The code is mapped to a CID using the CMap, and the CID is mapped to a
// glyph of the descendant font.  Glyph names are not used for lookup.
// The advance is taken from the W and DW entries of the CIDFont dictionary;
// outlines are not scaled to match.
func (p *Program) Glyph(code int, name string) *font.Glyph {
	c := p.CID(code)

	gid := p.toGID(code, c)
	if int(gid) >= p.desc.NumGlyphs() {
		gid = 0
	}

	o, _, err := p.desc.Outline(gid)
	if err != nil {
		font.Logger().Debug("cid: cannot render glyph",
			"cid", c, "gid", gid, "err", err)
		o = nil
	}

	if name == "" {
		name = p.desc.GlyphName(gid)
	}
	advance := vec.Vec2{X: p.widths.Get(c) / 1000}
	g := font.NewOutlineGlyph(code, name, o, advance)
	g.CID = c
	return g
}
