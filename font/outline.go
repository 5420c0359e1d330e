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
	"fmt"
	"iter"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Cmd is a path construction command.
type Cmd uint8

// These are the path commands used in glyph outlines.
const (
	CmdMoveTo Cmd = iota // 1 point
	CmdLineTo            // 1 point
	CmdQuadTo            // 2 points: control point, end point
	CmdCubeTo            // 3 points: two control points, end point
	CmdClose             // no points
)

// NumPoints returns the number of coordinates used by the command.
func (c Cmd) NumPoints() int {
	switch c {
	case CmdMoveTo, CmdLineTo:
		return 1
	case CmdQuadTo:
		return 2
	case CmdCubeTo:
		return 3
	default:
		return 0
	}
}

func (c Cmd) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	case CmdCubeTo:
		return "CubeTo"
	case CmdClose:
		return "Close"
	default:
		return fmt.Sprintf("Cmd(%d)", c)
	}
}

// Outline is the vector outline of a glyph.
//
// Coords holds the points for all commands, in order; see [Cmd.NumPoints].
// Outlines are constructed using an [OutlineBuilder] and must not be
// modified afterwards.  A nil *Outline is a valid, empty outline.
type Outline struct {
	Cmds   []Cmd
	Coords []vec.Vec2
}

// IsEmpty returns true if the outline contains no drawing commands.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Cmds) == 0
}

// All iterates over the commands of the outline, together with their
// points.  The point slices must not be modified.
func (o *Outline) All() iter.Seq2[Cmd, []vec.Vec2] {
	return func(yield func(Cmd, []vec.Vec2) bool) {
		if o == nil {
			return
		}
		pos := 0
		for _, cmd := range o.Cmds {
			n := cmd.NumPoints()
			if !yield(cmd, o.Coords[pos:pos+n]) {
				return
			}
			pos += n
		}
	}
}

// Transform returns a new outline with all points mapped through m.
func (o *Outline) Transform(m matrix.Matrix) *Outline {
	if o.IsEmpty() {
		return &Outline{}
	}
	res := &Outline{
		Cmds:   append([]Cmd(nil), o.Cmds...),
		Coords: make([]vec.Vec2, len(o.Coords)),
	}
	for i, p := range o.Coords {
		res.Coords[i] = Apply(m, p)
	}
	return res
}

func (o *Outline) String() string {
	if o.IsEmpty() {
		return "<empty outline>"
	}
	var parts []string
	for cmd, pts := range o.All() {
		s := cmd.String()
		for _, p := range pts {
			s += fmt.Sprintf(" %g,%g", p.X, p.Y)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

// Apply maps the point v through the affine transformation m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// OutlineBuilder accumulates path commands.  The zero value is ready to use.
// Calling Outline returns an independent, immutable [Outline]; the builder
// can continue to be used afterwards.
type OutlineBuilder struct {
	cmds   []Cmd
	coords []vec.Vec2

	open  bool
	start vec.Vec2
	cur   vec.Vec2
}

// Current returns the current point.
func (b *OutlineBuilder) Current() vec.Vec2 {
	return b.cur
}

// IsOpen returns true if a sub-path has been started but not yet closed.
func (b *OutlineBuilder) IsOpen() bool {
	return b.open
}

// MoveTo starts a new sub-path.  Any open sub-path is closed first.
func (b *OutlineBuilder) MoveTo(p vec.Vec2) {
	b.Close()
	b.cmds = append(b.cmds, CmdMoveTo)
	b.coords = append(b.coords, p)
	b.open = true
	b.start = p
	b.cur = p
}

func (b *OutlineBuilder) ensureOpen() {
	if !b.open {
		b.cmds = append(b.cmds, CmdMoveTo)
		b.coords = append(b.coords, b.cur)
		b.open = true
		b.start = b.cur
	}
}

// LineTo appends a straight line segment.
func (b *OutlineBuilder) LineTo(p vec.Vec2) {
	b.ensureOpen()
	b.cmds = append(b.cmds, CmdLineTo)
	b.coords = append(b.coords, p)
	b.cur = p
}

// QuadTo appends a quadratic Bézier segment.
func (b *OutlineBuilder) QuadTo(c, p vec.Vec2) {
	b.ensureOpen()
	b.cmds = append(b.cmds, CmdQuadTo)
	b.coords = append(b.coords, c, p)
	b.cur = p
}

// CubeTo appends a cubic Bézier segment.
func (b *OutlineBuilder) CubeTo(c1, c2, p vec.Vec2) {
	b.ensureOpen()
	b.cmds = append(b.cmds, CmdCubeTo)
	b.coords = append(b.coords, c1, c2, p)
	b.cur = p
}

// Close closes the current sub-path, if one is open.
// The current point moves back to the start of the sub-path.
func (b *OutlineBuilder) Close() {
	if !b.open {
		return
	}
	b.cmds = append(b.cmds, CmdClose)
	b.open = false
	b.cur = b.start
}

// Append adds all sub-paths of o, mapped through m.
// Any open sub-path of the builder is closed first.
func (b *OutlineBuilder) Append(o *Outline, m matrix.Matrix) {
	if o.IsEmpty() {
		return
	}
	b.Close()
	for cmd, pts := range o.All() {
		switch cmd {
		case CmdMoveTo:
			b.MoveTo(Apply(m, pts[0]))
		case CmdLineTo:
			b.LineTo(Apply(m, pts[0]))
		case CmdQuadTo:
			b.QuadTo(Apply(m, pts[0]), Apply(m, pts[1]))
		case CmdCubeTo:
			b.CubeTo(Apply(m, pts[0]), Apply(m, pts[1]), Apply(m, pts[2]))
		case CmdClose:
			b.Close()
		}
	}
	b.Close()
}

// Outline closes any open sub-path and returns the outline built so far.
func (b *OutlineBuilder) Outline() *Outline {
	b.Close()
	return &Outline{
		Cmds:   append([]Cmd(nil), b.cmds...),
		Coords: append([]vec.Vec2(nil), b.coords...),
	}
}
