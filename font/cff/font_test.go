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

package cff

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
)

func testProgramFont(t *testing.T) *Font {
	t.Helper()
	tf := &testFont{
		charStrings: [][]byte{
			cs(t2endchar), // .notdef
			cs(250, t2endchar),
			cs(278, 0, 0, t2rmoveto, 100, 0, t2rlineto, 0, 700, t2rlineto, t2endchar),
			cs(100, 100, t2rmoveto, 200, 200, t2rlineto, t2endchar),
		},
		charset: []uint16{1, 2, nStandardStrings},
		strings: []string{"custom"},
	}
	return tf.read(t)
}

func TestRead(t *testing.T) {
	f := testProgramFont(t)

	if f.FontName != "Test" {
		t.Errorf("wrong font name %q", f.FontName)
	}
	if f.NumGlyphs() != 4 {
		t.Errorf("wrong number of glyphs %d", f.NumGlyphs())
	}
	if f.FontMatrix != defaultFontMatrix {
		t.Errorf("wrong font matrix %v", f.FontMatrix)
	}

	var names []string
	for gid := range f.NumGlyphs() {
		names = append(names, f.GlyphName(glyph.ID(gid)))
	}
	if diff := cmp.Diff([]string{".notdef", "space", "exclam", "custom"}, names); diff != "" {
		t.Errorf("unexpected glyph names (-want +got):\n%s", diff)
	}

	enc := f.BuiltinEncoding()
	if enc[32] != "space" || enc[33] != "exclam" || enc[65] != ".notdef" {
		t.Errorf("unexpected built-in encoding %q %q %q", enc[32], enc[33], enc[65])
	}
}

func TestReadErrors(t *testing.T) {
	cff2 := []byte{2, 0, 5, 0, 0}
	if _, err := Read(cff2); !font.IsUnsupported(err) {
		t.Errorf("CFF2: expected NotSupportedError, got %v", err)
	}

	for i, data := range [][]byte{
		nil,
		{1, 0, 4},
		{1, 0, 4, 4, 0, 0, 0, 0},
		[]byte("true\x00\x01\x00\x00"),
	} {
		if _, err := Read(data); !font.IsInvalid(err) {
			t.Errorf("%d: expected InvalidFontError, got %v", i, err)
		}
	}
}

func TestProgram(t *testing.T) {
	f := testProgramFont(t)
	p := NewProgram(f, nil)

	if p.Kind() != font.ProgramCFF {
		t.Errorf("wrong kind %v", p.Kind())
	}

	// by code, through the standard encoding
	g := p.Glyph(33, "")
	if g.Name != "exclam" {
		t.Errorf("wrong glyph %q", g.Name)
	}
	if diff := cmp.Diff(vec.Vec2{X: 0.278}, g.Advance, cmpApprox); diff != "" {
		t.Errorf("wrong advance %v", g.Advance)
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 0.1, Y: 0}, {X: 0.1, Y: 0.7}}
	if diff := cmp.Diff(want, g.Outline.Coords, cmpApprox); diff != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", diff)
	}

	// by name
	g = p.Glyph(font.NoCode, "custom")
	if g.Outline.IsEmpty() || g.Name != "custom" {
		t.Errorf("glyph %q not found by name", "custom")
	}

	// the name wins over the code
	g = p.Glyph(33, "space")
	if !g.Outline.IsEmpty() || math.Abs(g.Advance.X-0.25) > 1e-9 {
		t.Errorf("wrong glyph for name %q: %v", "space", g)
	}

	// unresolved lookups use glyph 0
	for _, test := range []struct {
		code int
		name string
	}{
		{65, ""},
		{1000, ""},
		{font.NoCode, "nonexistent"},
		{-5, ""},
	} {
		g := p.Glyph(test.code, test.name)
		if g == nil || g.Kind != font.KindOutline || !g.Outline.IsEmpty() {
			t.Errorf("%d %q: unexpected glyph %v", test.code, test.name, g)
		}
	}
}

func TestProgramWidths(t *testing.T) {
	f := testProgramFont(t)
	widths := &font.SimpleWidths{
		FirstChar: 32,
		Widths:    []float64{0, 556},
	}
	p := NewProgram(f, widths)

	g := p.Glyph(33, "")
	if diff := cmp.Diff(vec.Vec2{X: 0.556}, g.Advance, cmpApprox); diff != "" {
		t.Errorf("wrong advance %v", g.Advance)
	}
	q := 0.556 / 0.278
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 0.1 * q, Y: 0}, {X: 0.1 * q, Y: 0.7}}
	if diff := cmp.Diff(want, g.Outline.Coords, cmpApprox); diff != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", diff)
	}

	// a requested width of zero leaves the outline unchanged
	g = p.Glyph(32, "")
	if g.Advance.X != 0 {
		t.Errorf("wrong advance %v", g.Advance)
	}
}

func TestHasGlyphs(t *testing.T) {
	p := NewProgram(testProgramFont(t), nil)
	if !p.HasGlyphs([]string{"space", "custom", ".notdef", ""}) {
		t.Error("glyphs not found")
	}
	if p.HasGlyphs([]string{"space", "A"}) {
		t.Error("missing glyph not detected")
	}
}

func TestLocalSubrsFromPrivate(t *testing.T) {
	subrs := make([][]byte, 100)
	for i := range subrs {
		subrs[i] = cs(t2return)
	}
	subrs[50] = cs(0, 0, t2rmoveto, 10, 20, t2rlineto, t2return)
	tf := &testFont{
		charStrings: [][]byte{cs(50-107, t2callsubr, t2endchar)},
		subrs:       subrs,
	}
	f := tf.read(t)
	o, _, err := f.Outline(0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]vec.Vec2{{X: 0, Y: 0}, {X: 0.01, Y: 0.02}}, o.Coords, cmpApprox); diff != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", diff)
	}
}

func FuzzRead(f *testing.F) {
	f.Add((&testFont{charStrings: [][]byte{cs(t2endchar)}}).bytes())
	f.Fuzz(func(t *testing.T, data []byte) {
		fnt, err := Read(data)
		if err != nil {
			return
		}
		p := NewProgram(fnt, nil)
		for code := range 256 {
			if p.Glyph(code, "") == nil {
				t.Fatal("nil glyph")
			}
		}
	})
}
