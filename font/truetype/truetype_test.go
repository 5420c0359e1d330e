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

package truetype

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
)

func readTestFont(t *testing.T) *Font {
	t.Helper()
	f, err := Read(buildTestFont(testGlyphs))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestSimpleOutline(t *testing.T) {
	f := readTestFont(t)

	o, adv, err := f.Outline(1)
	if err != nil {
		t.Fatal(err)
	}
	want := &font.Outline{
		Cmds: []font.Cmd{font.CmdMoveTo, font.CmdQuadTo, font.CmdQuadTo, font.CmdClose},
		Coords: []vec.Vec2{
			{X: 0, Y: 0},
			{X: 0.1, Y: 0}, {X: 0.1, Y: 0.05},
			{X: 0.1, Y: 0.1}, {X: 0, Y: 0.1},
		},
	}
	if d := cmp.Diff(want, o, cmpApprox); d != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", d)
	}
	if math.Abs(adv-0.6) > 1e-9 {
		t.Errorf("wrong advance %g", adv)
	}
}

func TestAllOffCurve(t *testing.T) {
	f := readTestFont(t)

	o, _, err := f.Outline(2)
	if err != nil {
		t.Fatal(err)
	}
	want := &font.Outline{
		Cmds: []font.Cmd{
			font.CmdMoveTo,
			font.CmdQuadTo, font.CmdQuadTo, font.CmdQuadTo, font.CmdQuadTo,
			font.CmdClose,
		},
		Coords: []vec.Vec2{
			{X: 0, Y: 0.05},
			{X: 0, Y: 0}, {X: 0.05, Y: 0},
			{X: 0.1, Y: 0}, {X: 0.1, Y: 0.05},
			{X: 0.1, Y: 0.1}, {X: 0.05, Y: 0.1},
			{X: 0, Y: 0.1}, {X: 0, Y: 0.05},
		},
	}
	if d := cmp.Diff(want, o, cmpApprox); d != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", d)
	}
}

func TestCompositeOutline(t *testing.T) {
	f := readTestFont(t)

	base, _, err := f.Outline(1)
	if err != nil {
		t.Fatal(err)
	}
	copied, _, err := f.Outline(3)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(base, copied); d != "" {
		t.Errorf("identity composite differs from its component (-want +got):\n%s", d)
	}

	small, _, err := f.Outline(5)
	if err != nil {
		t.Fatal(err)
	}
	want := &font.Outline{
		Cmds: []font.Cmd{font.CmdMoveTo, font.CmdQuadTo, font.CmdQuadTo, font.CmdClose},
		Coords: []vec.Vec2{
			{X: 0.01, Y: 0.02},
			{X: 0.06, Y: 0.02}, {X: 0.06, Y: 0.045},
			{X: 0.06, Y: 0.07}, {X: 0.01, Y: 0.07},
		},
	}
	if d := cmp.Diff(want, small, cmpApprox); d != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", d)
	}
}

func TestCompositeCycle(t *testing.T) {
	f := readTestFont(t)

	_, _, err := f.Outline(4)
	if !errors.Is(err, font.ErrRecursionLimit) {
		t.Errorf("expected recursion limit error, got %v", err)
	}

	p := NewProgram(f, nil)
	g := p.Glyph(font.NoCode, "loop")
	if !g.Outline.IsEmpty() {
		t.Errorf("self-referencing glyph rendered as %s", g.Outline)
	}
}

func TestCompositeDepth(t *testing.T) {
	gg := []testGlyph{
		{name: ".notdef"},
		{name: "A", data: testGlyphs[1].data},
	}
	// glyph k refers to glyph k-1, for k = 2, 3, ...
	for k := 2; k < 2+maxCompositeDepth+1; k++ {
		gg = append(gg, testGlyph{
			name: "c" + string(rune('a'+k)),
			data: encodeComposite(testComponent{gid: k - 1}),
		})
	}
	f, err := Read(buildTestFont(gg))
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = f.Outline(glyph.ID(1 + maxCompositeDepth))
	if err != nil {
		t.Errorf("nesting depth %d: %v", maxCompositeDepth, err)
	}
	_, _, err = f.Outline(glyph.ID(2 + maxCompositeDepth))
	if !errors.Is(err, font.ErrRecursionLimit) {
		t.Errorf("nesting depth %d: expected recursion limit, got %v",
			maxCompositeDepth+1, err)
	}
}

func TestLookup(t *testing.T) {
	f := readTestFont(t)

	nameCases := []struct {
		name string
		gid  glyph.ID
		ok   bool
	}{
		{"A", 1, true},
		{"circle", 2, true},
		{"small", 5, true},
		{"uni0041", 1, true}, // through the cmap
		{"B", 0, false},
		{"", 0, false},
	}
	for _, c := range nameCases {
		gid, ok := f.NameToGID(c.name)
		if gid != c.gid || ok != c.ok {
			t.Errorf("NameToGID(%q) = %d, %t, want %d, %t", c.name, gid, ok, c.gid, c.ok)
		}
	}

	codeCases := []struct {
		code uint32
		gid  glyph.ID
		ok   bool
	}{
		{0x41, 1, true},
		{0x42, 5, true}, // symbol font range 0xF000
		{0xF042, 5, true},
		{0x43, 0, false},
		{0x141, 0, false},
	}
	for _, c := range codeCases {
		gid, ok := f.CodeToGID(c.code)
		if gid != c.gid || ok != c.ok {
			t.Errorf("CodeToGID(%d) = %d, %t, want %d, %t", c.code, gid, ok, c.gid, c.ok)
		}
	}
}

func TestCollection(t *testing.T) {
	single := readTestFont(t)
	f, err := Read(buildCollection(buildTestFont(testGlyphs)))
	if err != nil {
		t.Fatal(err)
	}

	if f.NumGlyphs() != single.NumGlyphs() {
		t.Errorf("%d glyphs, want %d", f.NumGlyphs(), single.NumGlyphs())
	}
	if gid, ok := f.CodeToGID(0x41); gid != 1 || !ok {
		t.Errorf("CodeToGID(0x41) = %d, %t", gid, ok)
	}
	for gid := range glyph.ID(single.NumGlyphs()) {
		if gid == 4 {
			continue // the self-referencing glyph
		}
		want, _, err := single.Outline(gid)
		if err != nil {
			t.Fatal(err)
		}
		got, _, err := f.Outline(gid)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("glyph %d (-want +got):\n%s", gid, d)
		}
	}
}

func TestProgram(t *testing.T) {
	f := readTestFont(t)

	widths := &font.SimpleWidths{
		FirstChar: 0x41,
		Widths:    []float64{300, 0},
	}
	p := NewProgram(f, widths)
	if p.Kind() != font.ProgramTrueType {
		t.Errorf("wrong kind %v", p.Kind())
	}

	// The requested width is half the natural width.
	g := p.Glyph(0x41, "")
	if g.Name != "A" {
		t.Errorf("wrong glyph name %q", g.Name)
	}
	if d := cmp.Diff(vec.Vec2{X: 0.3}, g.Advance, cmpApprox); d != "" {
		t.Errorf("wrong advance (-want +got):\n%s", d)
	}
	wantCoords := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 0.05, Y: 0}, {X: 0.05, Y: 0.05},
		{X: 0.05, Y: 0.1}, {X: 0, Y: 0.1},
	}
	if d := cmp.Diff(wantCoords, g.Outline.Coords, cmpApprox); d != "" {
		t.Errorf("unexpected coordinates (-want +got):\n%s", d)
	}

	// The name takes precedence over the code.  A requested width of 0
	// keeps the outline unchanged.
	g = p.Glyph(0x42, "circle")
	if g.Advance.X != 0 {
		t.Errorf("wrong advance %v", g.Advance)
	}
	if len(g.Outline.Cmds) != 6 {
		t.Errorf("unexpected outline %s", g.Outline)
	}

	// Unmapped codes render glyph 0, which is empty.
	g = p.Glyph(0x60, "")
	if !g.Outline.IsEmpty() || g.Name != ".notdef" {
		t.Errorf("unexpected glyph %+v", g)
	}
	if math.Abs(g.Advance.X-0.5) > 1e-9 {
		t.Errorf("wrong advance %v", g.Advance)
	}
}

func TestReadErrors(t *testing.T) {
	cff := buildSfnt(0x4F54544F, map[string][]byte{"CFF ": {1, 0, 4, 4}})
	_, err := Read(cff)
	if !font.IsUnsupported(err) {
		t.Errorf("OpenType CFF: expected unsupported error, got %v", err)
	}

	_, err = Read(buildCollection(cff))
	if !font.IsUnsupported(err) {
		t.Errorf("collection with CFF font: expected unsupported error, got %v", err)
	}

	_, err = Read([]byte("ttcf\x00\x01\x00\x00\x00\x00\x00\x00"))
	if err == nil {
		t.Error("empty collection accepted")
	}

	noGlyf := buildSfnt(0x00010000, map[string][]byte{"head": make([]byte, 54)})
	_, err = Read(noGlyf)
	if !font.IsInvalid(err) {
		t.Errorf("font without glyf table: expected invalid font error, got %v", err)
	}
}

// TestGoRegular compares outlines and advance widths with the values
// computed by golang.org/x/image/font/sfnt.
func TestGoRegular(t *testing.T) {
	f, err := Read(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := xsfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	upem := int(f.UnitsPerEm)
	ppem := fixed.I(upem)

	buf := &xsfnt.Buffer{}
	for _, r := range "AgQ&%8@é" {
		gid, err := ref.GlyphIndex(buf, r)
		if err != nil || gid == 0 {
			t.Fatalf("rune %q: glyph not found", r)
		}

		adv, err := ref.GlyphAdvance(buf, gid, ppem, xfont.HintingNone)
		if err != nil {
			t.Fatal(err)
		}
		segs, err := ref.LoadGlyph(buf, gid, ppem, nil)
		if err != nil {
			t.Fatal(err)
		}
		var want []vec.Vec2
		for _, seg := range segs {
			n := 1
			switch seg.Op {
			case xsfnt.SegmentOpQuadTo:
				n = 2
			case xsfnt.SegmentOpCubeTo:
				n = 3
			}
			for _, p := range seg.Args[:n] {
				// x/image uses a y-axis which points down
				want = append(want, vec.Vec2{X: float64(p.X) / 64, Y: -float64(p.Y) / 64})
			}
		}

		o, natural, err := f.Outline(glyph.ID(gid))
		if err != nil {
			t.Fatal(err)
		}
		var got []vec.Vec2
		for _, p := range o.Coords {
			got = append(got, vec.Vec2{X: p.X * float64(upem), Y: p.Y * float64(upem)})
		}

		// Implied on-curve points may be rounded differently by x/image, so
		// points are matched with a tolerance of half a font design unit.
		if missing := unmatched(want, got, 0.5); len(missing) > 0 {
			t.Errorf("rune %q: points missing from outline: %v", r, missing)
		}
		if extra := unmatched(got, want, 0.5); len(extra) > 0 {
			t.Errorf("rune %q: unexpected points in outline: %v", r, extra)
		}
		if math.Abs(natural*float64(upem)-float64(adv)/64) > 1e-6 {
			t.Errorf("rune %q: advance %g != %g", r, natural*float64(upem), float64(adv)/64)
		}

		if d := cmp.Diff(f.GlyphName(glyph.ID(gid)), mustName(t, ref, buf, gid)); d != "" {
			t.Errorf("rune %q: glyph name (-want +got):\n%s", r, d)
		}
	}
}

func mustName(t *testing.T, f *xsfnt.Font, buf *xsfnt.Buffer, gid xsfnt.GlyphIndex) string {
	t.Helper()
	name, err := f.GlyphName(buf, gid)
	if err != nil {
		t.Fatal(err)
	}
	return name
}

// unmatched returns the points of a which have no point of b within
// distance tol in each coordinate.
func unmatched(a, b []vec.Vec2, tol float64) []vec.Vec2 {
	var res []vec.Vec2
	for _, p := range a {
		found := slices.ContainsFunc(b, func(q vec.Vec2) bool {
			return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
		})
		if !found {
			res = append(res, p)
		}
	}
	return res
}

func FuzzRead(f *testing.F) {
	f.Add(buildTestFont(testGlyphs))
	f.Add(goregular.TTF[:4096])
	f.Fuzz(func(t *testing.T, data []byte) {
		tt, err := Read(data)
		if err != nil {
			return
		}
		p := NewProgram(tt, nil)
		for gid := 0; gid < min(tt.NumGlyphs(), 32); gid++ {
			g := p.Glyph(font.NoCode, tt.GlyphName(glyph.ID(gid)))
			if g == nil || g.Outline == nil {
				t.Fatalf("glyph %d: no outline", gid)
			}
		}
	})
}
