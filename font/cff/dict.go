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
	"strconv"

	"seehuhn.de/go/geom/matrix"
)

// cffDict holds the operands of a Top DICT, Font DICT or Private DICT,
// keyed by operator.
type cffDict map[dictOp][]float64

// decodeDict decodes the DICT data in buf.
func decodeDict(buf []byte) (cffDict, error) {
	res := cffDict{}
	var operands []float64

	for len(buf) > 0 {
		b0 := buf[0]
		switch {
		case b0 == 12:
			if len(buf) < 2 {
				return nil, errCorruptDict
			}
			res[dictOp(b0)<<8|dictOp(buf[1])] = operands
			operands = nil
			buf = buf[2:]
		case b0 <= 21:
			res[dictOp(b0)] = operands
			operands = nil
			buf = buf[1:]
		case b0 == 28:
			if len(buf) < 3 {
				return nil, errCorruptDict
			}
			operands = append(operands, float64(int16(uint16(buf[1])<<8|uint16(buf[2]))))
			buf = buf[3:]
		case b0 == 29:
			if len(buf) < 5 {
				return nil, errCorruptDict
			}
			x := int32(uint32(buf[1])<<24 | uint32(buf[2])<<16 | uint32(buf[3])<<8 | uint32(buf[4]))
			operands = append(operands, float64(x))
			buf = buf[5:]
		case b0 == 30:
			rest, x, err := decodeReal(buf[1:])
			if err != nil {
				return nil, err
			}
			operands = append(operands, x)
			buf = rest
		case b0 >= 32 && b0 <= 246:
			operands = append(operands, float64(int(b0)-139))
			buf = buf[1:]
		case b0 >= 247 && b0 <= 250:
			if len(buf) < 2 {
				return nil, errCorruptDict
			}
			operands = append(operands, float64((int(b0)-247)*256+int(buf[1])+108))
			buf = buf[2:]
		case b0 >= 251 && b0 <= 254:
			if len(buf) < 2 {
				return nil, errCorruptDict
			}
			operands = append(operands, float64(-(int(b0)-251)*256-int(buf[1])-108))
			buf = buf[2:]
		default: // 22-27, 31 and 255 are reserved
			return nil, errCorruptDict
		}
	}

	if len(operands) > 0 {
		return nil, errCorruptDict
	}
	return res, nil
}

// decodeReal decodes a packed BCD real number.  The leading 0x1e must
// already be removed from buf.
func decodeReal(buf []byte) ([]byte, float64, error) {
	var s []byte
	for i := 0; ; i++ {
		if i/2 >= len(buf) {
			return nil, 0, invalidSince("incomplete real number")
		}
		nibble := buf[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 15
		}

		switch nibble {
		case 0xa:
			s = append(s, '.')
		case 0xb:
			s = append(s, 'E')
		case 0xc:
			s = append(s, 'E', '-')
		case 0xd:
			return nil, 0, invalidSince("reserved nibble in real number")
		case 0xe:
			s = append(s, '-')
		case 0xf:
			x, err := strconv.ParseFloat(string(s), 64)
			if err != nil {
				return nil, 0, invalidSince("malformed real number " + strconv.Quote(string(s)))
			}
			return buf[i/2+1:], x, nil
		default:
			s = append(s, '0'+nibble)
		}
	}
}

// getInt returns the single integer operand of op.
func (d cffDict) getInt(op dictOp, defVal int) int {
	xx := d[op]
	if len(xx) != 1 || xx[0] != math.Trunc(xx[0]) {
		return defVal
	}
	return int(xx[0])
}

// getNumber returns the single numeric operand of op.
func (d cffDict) getNumber(op dictOp, defVal float64) float64 {
	xx := d[op]
	if len(xx) != 1 {
		return defVal
	}
	return xx[0]
}

// getPair returns the two integer operands of op.
func (d cffDict) getPair(op dictOp) (int, int, bool) {
	xx := d[op]
	if len(xx) != 2 || xx[0] != math.Trunc(xx[0]) || xx[1] != math.Trunc(xx[1]) {
		return 0, 0, false
	}
	return int(xx[0]), int(xx[1]), true
}

var defaultFontMatrix = matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}

// getFontMatrix returns the FontMatrix of the DICT.  The second return value
// indicates whether the matrix was given explicitly.
func (d cffDict) getFontMatrix() (matrix.Matrix, bool) {
	xx := d[opFontMatrix]
	if len(xx) != 6 {
		return defaultFontMatrix, false
	}
	var res matrix.Matrix
	copy(res[:], xx)
	if res[0]*res[3]-res[1]*res[2] == 0 {
		return defaultFontMatrix, false
	}
	return res, true
}

type dictOp uint16

func (op dictOp) String() string {
	switch op {
	case opCharset:
		return "charset"
	case opEncoding:
		return "Encoding"
	case opCharStrings:
		return "CharStrings"
	case opPrivate:
		return "Private"
	case opCharstringType:
		return "CharstringType"
	case opFontMatrix:
		return "FontMatrix"
	case opROS:
		return "ROS"
	case opFDArray:
		return "FDArray"
	case opFDSelect:
		return "FDSelect"
	case opSubrs:
		return "Subrs"
	case opDefaultWidthX:
		return "defaultWidthX"
	case opNominalWidthX:
		return "nominalWidthX"
	}
	if op < 256 {
		return fmt.Sprintf("op%d", op)
	}
	return fmt.Sprintf("op12.%d", op&0xff)
}

const (
	// Top DICT operators
	opCharset        dictOp = 0x000F
	opEncoding       dictOp = 0x0010
	opCharStrings    dictOp = 0x0011
	opPrivate        dictOp = 0x0012
	opCharstringType dictOp = 0x0C06
	opFontMatrix     dictOp = 0x0C07
	opROS            dictOp = 0x0C1E
	opFDArray        dictOp = 0x0C24
	opFDSelect       dictOp = 0x0C25

	// Private DICT operators
	opSubrs         dictOp = 0x0013 // offset relative to the Private DICT
	opDefaultWidthX dictOp = 0x0014
	opNominalWidthX dictOp = 0x0015
)
