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

// Package type3 implements Type 3 fonts, where glyphs are drawn by PDF
// content streams.
//
// The content streams are not interpreted.  Glyphs of a Type 3 font are
// returned as procedures, which the caller replays.
package type3

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/internal/seal"
	"seehuhn.de/go/pdfglyph/pdf"
)

// Program renders the glyphs of a Type 3 font.
type Program struct {
	seal.Marker

	r          pdf.Getter
	charProcs  pdf.Dict
	resources  pdf.Dict
	fontMatrix matrix.Matrix
	widths     *font.SimpleWidths
}

// Read reads the CharProcs, Resources, FontMatrix, FirstChar and Widths
// entries of a Type 3 font dictionary.  The content streams of the glyphs
// are read lazily, when a glyph is first requested.
func Read(r pdf.Getter, fontDict pdf.Dict) (*Program, error) {
	charProcs, err := pdf.GetDict(r, fontDict["CharProcs"])
	if err != nil {
		return nil, pdf.Wrap(err, "CharProcs")
	} else if charProcs == nil {
		return nil, pdf.Errorf("missing CharProcs in Type 3 font")
	}

	fontMatrix, err := pdf.GetMatrix(r, fontDict["FontMatrix"])
	if err != nil {
		return nil, pdf.Wrap(err, "FontMatrix")
	}
	if fontMatrix == (matrix.Matrix{}) {
		fontMatrix = matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}
	}

	resources, err := pdf.GetDict(r, fontDict["Resources"])
	if err != nil {
		font.Logger().Warn("type3: ignoring malformed Resources", "err", err)
		resources = nil
	}

	p := &Program{
		r:          r,
		charProcs:  charProcs,
		resources:  resources,
		fontMatrix: fontMatrix,
		widths:     font.ReadSimpleWidths(r, fontDict, 0),
	}
	return p, nil
}

// Kind implements the [font.Program] interface.
func (p *Program) Kind() font.ProgramKind {
	return font.ProgramType3
}

// FontMatrix returns the matrix which maps glyph space to text space.
func (p *Program) FontMatrix() matrix.Matrix {
	return p.fontMatrix
}

// Glyph implements the [font.Program] interface.
//
// Type 3 glyphs are selected by name only.  If the name is missing, or if
// CharProcs has no entry for it, an empty procedure with zero advance is
// returned.
func (p *Program) Glyph(code int, name string) *font.Glyph {
	g := &font.Glyph{
		Kind:      font.KindProcedure,
		Code:      code,
		Name:      name,
		Procedure: &font.Procedure{Name: pdf.Name(name)},
	}

	ref, ok := p.charProcs[pdf.Name(name)]
	if name == "" || !ok {
		return g
	}

	content, _, err := pdf.GetStreamData(p.r, ref)
	if err != nil {
		font.Logger().Debug("type3: cannot read glyph procedure",
			"name", name, "err", err)
		return g
	}
	g.Procedure.Ref = ref
	g.Procedure.Content = content
	g.Procedure.Resources = p.resources

	if w, ok := p.widths.Get(code); ok {
		// Widths are given in glyph space; only the linear part of the
		// font matrix applies.
		m := p.fontMatrix
		g.Advance = vec.Vec2{X: m[0] * w, Y: m[1] * w}
	}
	return g
}
