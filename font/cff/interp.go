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
	"fmt"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfglyph/font"
)

const (
	maxStack     = 96 // Type 2 requires 48, some fonts use more
	maxTransient = 32
	maxCallDepth = 10 // nested callsubr/callgsubr
	maxSeacDepth = 1
)

// interp holds the state of the Type 2 charstring interpreter while one
// glyph is decoded.  Subroutine calls share the operand stack, the
// transient array and the current point.
type interp struct {
	f         *Font
	seacDepth int

	subrs        cffIndex
	gsubrs       cffIndex
	nominalWidth float64

	stack     [maxStack]float64
	n         int
	transient [maxTransient]float64

	nStems   int
	widthSet bool
	width    float64

	pos vec.Vec2
	b   font.OutlineBuilder
}

// run executes the charstring code.  Subroutine calls are tracked on an
// explicit stack of return addresses.
func (ip *interp) run(code []byte) error {
	var frames [][]byte
	for {
		if len(code) == 0 {
			if len(frames) == 0 {
				// some fonts omit the final endchar
				return nil
			}
			code, frames = frames[len(frames)-1], frames[:len(frames)-1]
			continue
		}

		b0 := code[0]
		switch {
		case b0 >= 32 && b0 <= 246:
			ip.push(float64(int(b0) - 139))
			code = code[1:]
			continue
		case b0 >= 247 && b0 <= 250:
			if len(code) < 2 {
				return errIncomplete
			}
			ip.push(float64((int(b0)-247)*256 + int(code[1]) + 108))
			code = code[2:]
			continue
		case b0 >= 251 && b0 <= 254:
			if len(code) < 2 {
				return errIncomplete
			}
			ip.push(float64(-(int(b0)-251)*256 - int(code[1]) - 108))
			code = code[2:]
			continue
		case b0 == 28:
			if len(code) < 3 {
				return errIncomplete
			}
			ip.push(float64(int16(uint16(code[1])<<8 | uint16(code[2]))))
			code = code[3:]
			continue
		case b0 == 255:
			if len(code) < 5 {
				return errIncomplete
			}
			// 16.16 fixed point
			x := int32(uint32(code[1])<<24 | uint32(code[2])<<16 | uint32(code[3])<<8 | uint32(code[4]))
			ip.push(float64(x) / 65536)
			code = code[5:]
			continue
		}

		op := t2op(b0)
		if b0 == 12 {
			if len(code) < 2 {
				return errIncomplete
			}
			op = t2op(0x0c00) | t2op(code[1])
			code = code[2:]
		} else {
			code = code[1:]
		}

		switch op {
		case t2callsubr, t2callgsubr:
			if ip.n < 1 {
				ip.anomaly(op, errStackUnderflow)
				continue
			}
			ip.n--
			subrs := ip.subrs
			if op == t2callgsubr {
				subrs = ip.gsubrs
			}
			body, err := getSubr(subrs, int(ip.stack[ip.n]))
			if err != nil {
				ip.anomaly(op, err)
				continue
			}
			if len(frames) >= maxCallDepth {
				return font.ErrRecursionLimit
			}
			frames = append(frames, code)
			code = body

		case t2return:
			if len(frames) == 0 {
				return nil
			}
			code, frames = frames[len(frames)-1], frames[:len(frames)-1]

		case t2endchar:
			return ip.endchar()

		case t2hintmask, t2cntrmask:
			args := ip.setWidth(ip.n%2 == 1)
			ip.nStems += len(args) / 2
			ip.clear()
			k := (ip.nStems + 7) / 8
			if len(code) < k {
				return errIncomplete
			}
			code = code[k:]

		default:
			err := ip.exec(op)
			if err != nil {
				ip.anomaly(op, err)
			}
		}
	}
}

// exec executes all operators which neither change the control flow nor
// access the instruction stream.
func (ip *interp) exec(op t2op) error {
	args := ip.stack[:ip.n]

	switch op {
	case t2hstem, t2vstem, t2hstemhm, t2vstemhm:
		args = ip.setWidth(ip.n%2 == 1)
		ip.nStems += len(args) / 2
		ip.clear()

	case t2rmoveto:
		args = ip.setWidth(ip.n > 2)
		if len(args) < 2 {
			ip.clear()
			return errStackUnderflow
		}
		ip.moveTo(args[0], args[1])
		ip.clear()
	case t2hmoveto, t2vmoveto:
		args = ip.setWidth(ip.n > 1)
		if len(args) < 1 {
			ip.clear()
			return errStackUnderflow
		}
		if op == t2hmoveto {
			ip.moveTo(args[0], 0)
		} else {
			ip.moveTo(0, args[0])
		}
		ip.clear()

	case t2rlineto:
		for ; len(args) >= 2; args = args[2:] {
			ip.lineTo(args[0], args[1])
		}
		ip.clear()
	case t2hlineto, t2vlineto:
		horizontal := op == t2hlineto
		for _, d := range args {
			if horizontal {
				ip.lineTo(d, 0)
			} else {
				ip.lineTo(0, d)
			}
			horizontal = !horizontal
		}
		ip.clear()

	case t2rrcurveto, t2rcurveline, t2rlinecurve:
		if op == t2rlinecurve {
			for ; len(args) >= 8; args = args[2:] {
				ip.lineTo(args[0], args[1])
			}
		}
		for ; len(args) >= 6; args = args[6:] {
			ip.curveTo(args[0], args[1], args[2], args[3], args[4], args[5])
		}
		if op == t2rcurveline && len(args) >= 2 {
			ip.lineTo(args[0], args[1])
		}
		ip.clear()

	case t2hhcurveto:
		var dy1 float64
		if len(args)%4 != 0 {
			dy1, args = args[0], args[1:]
		}
		for ; len(args) >= 4; args = args[4:] {
			ip.curveTo(args[0], dy1, args[1], args[2], args[3], 0)
			dy1 = 0
		}
		ip.clear()
	case t2vvcurveto:
		var dx1 float64
		if len(args)%4 != 0 {
			dx1, args = args[0], args[1:]
		}
		for ; len(args) >= 4; args = args[4:] {
			ip.curveTo(dx1, args[0], args[1], args[2], 0, args[3])
			dx1 = 0
		}
		ip.clear()

	case t2hvcurveto, t2vhcurveto:
		horizontal := op == t2hvcurveto
		for ; len(args) >= 4; args = args[4:] {
			var last float64
			if len(args) == 5 {
				last = args[4]
			}
			if horizontal {
				ip.curveTo(args[0], 0, args[1], args[2], last, args[3])
			} else {
				ip.curveTo(0, args[0], args[1], args[2], args[3], last)
			}
			horizontal = !horizontal
		}
		ip.clear()

	case t2flex:
		if len(args) < 13 {
			ip.clear()
			return errStackUnderflow
		}
		ip.curveTo(args[0], args[1], args[2], args[3], args[4], args[5])
		ip.curveTo(args[6], args[7], args[8], args[9], args[10], args[11])
		ip.clear()
	case t2hflex:
		if len(args) < 7 {
			ip.clear()
			return errStackUnderflow
		}
		ip.curveTo(args[0], 0, args[1], args[2], args[3], 0)
		ip.curveTo(args[4], 0, args[5], -args[2], args[6], 0)
		ip.clear()
	case t2hflex1:
		if len(args) < 9 {
			ip.clear()
			return errStackUnderflow
		}
		dy := args[1] + args[3] + args[7]
		ip.curveTo(args[0], args[1], args[2], args[3], args[4], 0)
		ip.curveTo(args[5], 0, args[6], args[7], args[8], -dy)
		ip.clear()
	case t2flex1:
		if len(args) < 11 {
			ip.clear()
			return errStackUnderflow
		}
		dx := args[0] + args[2] + args[4] + args[6] + args[8]
		dy := args[1] + args[3] + args[5] + args[7] + args[9]
		ip.curveTo(args[0], args[1], args[2], args[3], args[4], args[5])
		if math.Abs(dx) > math.Abs(dy) {
			ip.curveTo(args[6], args[7], args[8], args[9], args[10], -dy)
		} else {
			ip.curveTo(args[6], args[7], args[8], args[9], -dx, args[10])
		}
		ip.clear()

	case t2dotsection: // deprecated
		ip.clear()

	default:
		return ip.arith(op)
	}
	return nil
}

// arith implements the arithmetic, logical and storage operators.
func (ip *interp) arith(op t2op) error {
	var need int
	switch op {
	case t2random:
		need = 0
	case t2abs, t2neg, t2not, t2sqrt, t2drop, t2dup, t2get, t2index:
		need = 1
	case t2add, t2sub, t2div, t2mul, t2and, t2or, t2eq, t2exch, t2put, t2roll:
		need = 2
	case t2ifelse:
		need = 4
	default:
		ip.clear()
		return fmt.Errorf("cff: unknown operator %s", op)
	}
	if ip.n < need {
		ip.clear()
		return errStackUnderflow
	}

	s := ip.stack[:ip.n]
	k := ip.n - need
	switch op {
	case t2abs:
		s[k] = math.Abs(s[k])
	case t2neg:
		s[k] = -s[k]
	case t2not:
		s[k] = boolValue(s[k] == 0)
	case t2sqrt:
		s[k] = math.Sqrt(math.Max(s[k], 0))
	case t2drop:
		ip.n--
	case t2dup:
		ip.push(s[k])
	case t2get:
		i := int(s[k])
		if i < 0 || i >= maxTransient {
			ip.clear()
			return fmt.Errorf("cff: invalid transient index %d", i)
		}
		s[k] = ip.transient[i]
	case t2index:
		i := int(s[k])
		if i < 0 {
			i = 0
		}
		if k-1-i < 0 {
			ip.clear()
			return errStackUnderflow
		}
		s[k] = s[k-1-i]

	case t2add:
		s[k] += s[k+1]
		ip.n--
	case t2sub:
		s[k] -= s[k+1]
		ip.n--
	case t2mul:
		s[k] *= s[k+1]
		ip.n--
	case t2div:
		if s[k+1] == 0 {
			s[k] = 0
		} else {
			s[k] /= s[k+1]
		}
		ip.n--
	case t2and:
		s[k] = boolValue(s[k] != 0 && s[k+1] != 0)
		ip.n--
	case t2or:
		s[k] = boolValue(s[k] != 0 || s[k+1] != 0)
		ip.n--
	case t2eq:
		s[k] = boolValue(s[k] == s[k+1])
		ip.n--
	case t2exch:
		s[k], s[k+1] = s[k+1], s[k]
	case t2put:
		i := int(s[k+1])
		if i < 0 || i >= maxTransient {
			ip.clear()
			return fmt.Errorf("cff: invalid transient index %d", i)
		}
		ip.transient[i] = s[k]
		ip.n -= 2
	case t2roll:
		num, j := int(s[k]), int(s[k+1])
		ip.n -= 2
		if num < 0 || num > ip.n {
			ip.clear()
			return fmt.Errorf("cff: invalid roll count %d", num)
		}
		roll(ip.stack[ip.n-num:ip.n], j)

	case t2ifelse:
		if s[k+2] > s[k+3] {
			s[k] = s[k+1]
		}
		ip.n -= 3

	case t2random:
		ip.push(1 - rand.Float64()) // in (0, 1]
	}
	return nil
}

func (ip *interp) endchar() error {
	args := ip.setWidth(ip.n == 1 || ip.n == 5)
	if len(args) == 4 {
		err := ip.seac(args[0], args[1], byte(args[2]), byte(args[3]))
		if err != nil {
			return err
		}
	}
	ip.clear()
	return nil
}

// seac draws an accented character, composed from a base glyph and an
// accent.  The glyphs are selected by their codes in the standard encoding.
func (ip *interp) seac(adx, ady float64, bchar, achar byte) error {
	if ip.seacDepth >= maxSeacDepth {
		return font.ErrRecursionLimit
	}
	baseGID, ok1 := ip.f.standardGID(bchar)
	accentGID, ok2 := ip.f.standardGID(achar)
	if !ok1 || !ok2 {
		font.Logger().Debug("cff: seac components not found",
			"base", bchar, "accent", achar)
		return nil
	}

	base, _, err := ip.f.decode(baseGID, ip.seacDepth+1)
	if err != nil {
		return err
	}
	accent, _, err := ip.f.decode(accentGID, ip.seacDepth+1)
	if err != nil {
		return err
	}
	ip.b.Append(base, matrix.Identity)
	ip.b.Append(accent, matrix.Translate(adx, ady))
	return nil
}

// setWidth consumes the optional width operand at the bottom of the stack.
// The returned slice holds the remaining operands.
func (ip *interp) setWidth(present bool) []float64 {
	args := ip.stack[:ip.n]
	if ip.widthSet {
		return args
	}
	ip.widthSet = true
	if present && len(args) > 0 {
		ip.width = ip.nominalWidth + args[0]
		return args[1:]
	}
	return args
}

func (ip *interp) push(x float64) {
	if ip.n >= maxStack {
		ip.anomaly(0, errStackOverflow)
	}
	ip.stack[ip.n] = x
	ip.n++
}

func (ip *interp) clear() {
	ip.n = 0
}

func (ip *interp) anomaly(op t2op, err error) {
	font.Logger().Debug("cff: charstring anomaly", "op", op, "err", err)
	ip.clear()
}

func (ip *interp) moveTo(dx, dy float64) {
	ip.pos = vec.Vec2{X: ip.pos.X + dx, Y: ip.pos.Y + dy}
	ip.b.MoveTo(ip.pos)
}

func (ip *interp) ensureOpen() {
	if !ip.b.IsOpen() {
		ip.b.MoveTo(ip.pos)
	}
}

func (ip *interp) lineTo(dx, dy float64) {
	ip.ensureOpen()
	ip.pos = vec.Vec2{X: ip.pos.X + dx, Y: ip.pos.Y + dy}
	ip.b.LineTo(ip.pos)
}

func (ip *interp) curveTo(dxa, dya, dxb, dyb, dxc, dyc float64) {
	ip.ensureOpen()
	a := vec.Vec2{X: ip.pos.X + dxa, Y: ip.pos.Y + dya}
	b := vec.Vec2{X: a.X + dxb, Y: a.Y + dyb}
	ip.pos = vec.Vec2{X: b.X + dxc, Y: b.Y + dyc}
	ip.b.CubeTo(a, b, ip.pos)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// subrBias returns the number which is added to subroutine numbers
// before indexing the subroutine INDEX.
func subrBias(nSubrs int) int {
	switch {
	case nSubrs < 1240:
		return 107
	case nSubrs < 33900:
		return 1131
	default:
		return 32768
	}
}

func getSubr(subrs cffIndex, biased int) ([]byte, error) {
	idx := biased + subrBias(len(subrs))
	if idx < 0 || idx >= len(subrs) {
		return nil, errInvalidSubr
	}
	return subrs[idx], nil
}

// roll performs a circular shift of data by j positions.  Positive j moves
// elements towards the top of the stack.
func roll(data []float64, j int) {
	n := len(data)
	if n == 0 {
		return
	}
	j %= n
	if j < 0 {
		j += n
	}
	if j == 0 {
		return
	}

	tmp := make([]float64, j)
	copy(tmp, data[n-j:])
	copy(data[j:], data[:n-j])
	copy(data[:j], tmp)
}

type t2op uint16

func (op t2op) String() string {
	if name, ok := t2opNames[op]; ok {
		return name
	}
	if op > 0xff {
		return fmt.Sprintf("op12.%d", op&0xff)
	}
	return fmt.Sprintf("op%d", op)
}

const (
	t2hstem      t2op = 0x0001
	t2vstem      t2op = 0x0003
	t2vmoveto    t2op = 0x0004
	t2rlineto    t2op = 0x0005
	t2hlineto    t2op = 0x0006
	t2vlineto    t2op = 0x0007
	t2rrcurveto  t2op = 0x0008
	t2callsubr   t2op = 0x000a
	t2return     t2op = 0x000b
	t2endchar    t2op = 0x000e
	t2hstemhm    t2op = 0x0012
	t2hintmask   t2op = 0x0013
	t2cntrmask   t2op = 0x0014
	t2rmoveto    t2op = 0x0015
	t2hmoveto    t2op = 0x0016
	t2vstemhm    t2op = 0x0017
	t2rcurveline t2op = 0x0018
	t2rlinecurve t2op = 0x0019
	t2vvcurveto  t2op = 0x001a
	t2hhcurveto  t2op = 0x001b
	t2callgsubr  t2op = 0x001d
	t2vhcurveto  t2op = 0x001e
	t2hvcurveto  t2op = 0x001f

	t2dotsection t2op = 0x0c00
	t2and        t2op = 0x0c03
	t2or         t2op = 0x0c04
	t2not        t2op = 0x0c05
	t2abs        t2op = 0x0c09
	t2add        t2op = 0x0c0a
	t2sub        t2op = 0x0c0b
	t2div        t2op = 0x0c0c
	t2neg        t2op = 0x0c0e
	t2eq         t2op = 0x0c0f
	t2drop       t2op = 0x0c12
	t2put        t2op = 0x0c14
	t2get        t2op = 0x0c15
	t2ifelse     t2op = 0x0c16
	t2random     t2op = 0x0c17
	t2mul        t2op = 0x0c18
	t2sqrt       t2op = 0x0c1a
	t2dup        t2op = 0x0c1b
	t2exch       t2op = 0x0c1c
	t2index      t2op = 0x0c1d
	t2roll       t2op = 0x0c1e
	t2hflex      t2op = 0x0c22
	t2flex       t2op = 0x0c23
	t2hflex1     t2op = 0x0c24
	t2flex1      t2op = 0x0c25
)

var t2opNames = map[t2op]string{
	t2hstem: "hstem", t2vstem: "vstem", t2vmoveto: "vmoveto",
	t2rlineto: "rlineto", t2hlineto: "hlineto", t2vlineto: "vlineto",
	t2rrcurveto: "rrcurveto", t2callsubr: "callsubr", t2return: "return",
	t2endchar: "endchar", t2hstemhm: "hstemhm", t2hintmask: "hintmask",
	t2cntrmask: "cntrmask", t2rmoveto: "rmoveto", t2hmoveto: "hmoveto",
	t2vstemhm: "vstemhm", t2rcurveline: "rcurveline",
	t2rlinecurve: "rlinecurve", t2vvcurveto: "vvcurveto",
	t2hhcurveto: "hhcurveto", t2callgsubr: "callgsubr",
	t2vhcurveto: "vhcurveto", t2hvcurveto: "hvcurveto",
	t2dotsection: "dotsection", t2and: "and", t2or: "or", t2not: "not",
	t2abs: "abs", t2add: "add", t2sub: "sub", t2div: "div", t2neg: "neg",
	t2eq: "eq", t2drop: "drop", t2put: "put", t2get: "get",
	t2ifelse: "ifelse", t2random: "random", t2mul: "mul", t2sqrt: "sqrt",
	t2dup: "dup", t2exch: "exch", t2index: "index", t2roll: "roll",
	t2hflex: "hflex", t2flex: "flex", t2hflex1: "hflex1", t2flex1: "flex1",
}
