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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestBuilder(t *testing.T) {
	var b OutlineBuilder
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.LineTo(vec.Vec2{X: 1, Y: 0})
	b.QuadTo(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1})
	b.MoveTo(vec.Vec2{X: 2, Y: 2}) // implicitly closes the first sub-path
	b.CubeTo(vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 2, Y: 3})

	if !b.IsOpen() {
		t.Fatal("sub-path not open")
	}
	o := b.Outline()
	if b.IsOpen() {
		t.Error("Outline did not close the sub-path")
	}

	want := &Outline{
		Cmds: []Cmd{
			CmdMoveTo, CmdLineTo, CmdQuadTo, CmdClose,
			CmdMoveTo, CmdCubeTo, CmdClose,
		},
		Coords: []vec.Vec2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
			{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3},
		},
	}
	if d := cmp.Diff(want, o); d != "" {
		t.Errorf("wrong outline (-want +got):\n%s", d)
	}
	if b.Current() != (vec.Vec2{X: 2, Y: 2}) {
		t.Errorf("current point %v after close", b.Current())
	}

	// the result is independent of the builder
	b.LineTo(vec.Vec2{X: 5, Y: 5})
	if d := cmp.Diff(want, o); d != "" {
		t.Errorf("outline changed (-want +got):\n%s", d)
	}
}

func TestBuilderImplicitMove(t *testing.T) {
	var b OutlineBuilder
	b.LineTo(vec.Vec2{X: 1, Y: 1})
	o := b.Outline()

	want := &Outline{
		Cmds:   []Cmd{CmdMoveTo, CmdLineTo, CmdClose},
		Coords: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}
	if d := cmp.Diff(want, o); d != "" {
		t.Errorf("wrong outline (-want +got):\n%s", d)
	}
}

func TestAppend(t *testing.T) {
	var inner OutlineBuilder
	inner.MoveTo(vec.Vec2{X: 1, Y: 1})
	inner.LineTo(vec.Vec2{X: 2, Y: 1})
	part := inner.Outline()

	var b OutlineBuilder
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.LineTo(vec.Vec2{X: 0, Y: 1})
	b.Append(part, matrix.Matrix{2, 0, 0, 2, 10, 0})
	b.Append(nil, matrix.Identity)
	o := b.Outline()

	want := &Outline{
		Cmds: []Cmd{CmdMoveTo, CmdLineTo, CmdClose, CmdMoveTo, CmdLineTo, CmdClose},
		Coords: []vec.Vec2{
			{X: 0, Y: 0}, {X: 0, Y: 1},
			{X: 12, Y: 2}, {X: 14, Y: 2},
		},
	}
	if d := cmp.Diff(want, o); d != "" {
		t.Errorf("wrong outline (-want +got):\n%s", d)
	}
}

func TestTransform(t *testing.T) {
	var b OutlineBuilder
	b.MoveTo(vec.Vec2{X: 1, Y: 2})
	b.LineTo(vec.Vec2{X: 3, Y: 4})
	o := b.Outline()

	scaled := o.Transform(matrix.Scale(2, -1))
	want := []vec.Vec2{{X: 2, Y: -2}, {X: 6, Y: -4}}
	if d := cmp.Diff(want, scaled.Coords); d != "" {
		t.Errorf("wrong points (-want +got):\n%s", d)
	}
	if o.Coords[0] != (vec.Vec2{X: 1, Y: 2}) {
		t.Error("Transform modified the original outline")
	}

	var empty *Outline
	if !empty.Transform(matrix.Identity).IsEmpty() {
		t.Error("transformed nil outline is not empty")
	}
}

func TestOutlineString(t *testing.T) {
	var b OutlineBuilder
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.LineTo(vec.Vec2{X: 1, Y: 0.5})

	got := b.Outline().String()
	want := "MoveTo 0,0; LineTo 1,0.5; Close"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if s := (*Outline)(nil).String(); s != "<empty outline>" {
		t.Errorf("nil outline: %q", s)
	}
}

func TestAll(t *testing.T) {
	var b OutlineBuilder
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.CubeTo(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1})
	o := b.Outline()

	var cmds []Cmd
	total := 0
	for cmd, pts := range o.All() {
		cmds = append(cmds, cmd)
		if len(pts) != cmd.NumPoints() {
			t.Errorf("%s: %d points", cmd, len(pts))
		}
		total += len(pts)
	}
	if d := cmp.Diff([]Cmd{CmdMoveTo, CmdCubeTo, CmdClose}, cmds); d != "" {
		t.Errorf("wrong commands (-want +got):\n%s", d)
	}
	if total != len(o.Coords) {
		t.Errorf("visited %d of %d points", total, len(o.Coords))
	}
}
