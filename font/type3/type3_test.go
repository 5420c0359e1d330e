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

package type3

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/pdf"
)

var cmpApprox = cmpopts.EquateApprox(0, 1e-9)

func testFont() (pdf.Getter, pdf.Dict) {
	boxRef := pdf.NewReference(10, 0)
	objects := pdf.Objects{
		boxRef: &pdf.Stream{
			Dict: pdf.Dict{},
			Data: []byte("100 0 0 0 80 80 d1\n0 0 80 80 re f\n"),
		},
	}
	fontDict := pdf.Dict{
		"Type":    pdf.Name("Font"),
		"Subtype": pdf.Name("Type3"),
		"CharProcs": pdf.Dict{
			"box": boxRef,
		},
		"FontMatrix": pdf.Array{
			pdf.Real(0.01), pdf.Integer(0), pdf.Integer(0),
			pdf.Real(0.01), pdf.Integer(0), pdf.Integer(0),
		},
		"Resources": pdf.Dict{"ProcSet": pdf.Array{pdf.Name("PDF")}},
		"FirstChar": pdf.Integer(65),
		"Widths":    pdf.Array{pdf.Integer(100), pdf.Integer(50)},
	}
	return objects, fontDict
}

func TestGlyph(t *testing.T) {
	r, fontDict := testFont()
	p, err := Read(r, fontDict)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind() != font.ProgramType3 {
		t.Errorf("wrong kind %v", p.Kind())
	}
	if d := cmp.Diff(matrix.Matrix{0.01, 0, 0, 0.01, 0, 0}, p.FontMatrix(), cmpApprox); d != "" {
		t.Errorf("wrong font matrix (-want +got):\n%s", d)
	}

	g := p.Glyph(65, "box")
	if g.Kind != font.KindProcedure || g.Outline != nil {
		t.Fatalf("unexpected glyph kind %v", g.Kind)
	}
	if g.Procedure.IsEmpty() {
		t.Error("empty procedure for existing glyph")
	}
	if g.Procedure.Ref != pdf.NewReference(10, 0) {
		t.Errorf("wrong reference %v", g.Procedure.Ref)
	}
	if g.Procedure.Resources == nil {
		t.Error("missing resources")
	}
	if d := cmp.Diff(vec.Vec2{X: 1}, g.Advance, cmpApprox); d != "" {
		t.Errorf("wrong advance (-want +got):\n%s", d)
	}

	// The width depends on the code, not on the glyph.
	g = p.Glyph(66, "box")
	if d := cmp.Diff(vec.Vec2{X: 0.5}, g.Advance, cmpApprox); d != "" {
		t.Errorf("wrong advance (-want +got):\n%s", d)
	}
}

func TestMissingGlyph(t *testing.T) {
	r, fontDict := testFont()
	p, err := Read(r, fontDict)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"", "circle"} {
		g := p.Glyph(65, name)
		if g.Kind != font.KindProcedure {
			t.Errorf("%q: wrong kind %v", name, g.Kind)
		}
		if !g.Procedure.IsEmpty() {
			t.Errorf("%q: procedure not empty", name)
		}
		if g.Advance != (vec.Vec2{}) {
			t.Errorf("%q: non-zero advance %v", name, g.Advance)
		}
	}
}

func TestReadErrors(t *testing.T) {
	r, fontDict := testFont()
	delete(fontDict, "CharProcs")
	_, err := Read(r, fontDict)
	if !pdf.IsMalformed(err) {
		t.Errorf("missing CharProcs: expected malformed error, got %v", err)
	}

	// a missing FontMatrix defaults to the usual 1/1000 scaling
	r, fontDict = testFont()
	delete(fontDict, "FontMatrix")
	p, err := Read(r, fontDict)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(vec.Vec2{X: 0.1}, p.Glyph(65, "box").Advance, cmpApprox); d != "" {
		t.Errorf("wrong advance (-want +got):\n%s", d)
	}
}
