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
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpApprox = cmpopts.EquateApprox(0, 1e-9)

// encodeIndex is the inverse of readIndex, used to build test fonts.
func encodeIndex(data [][]byte) []byte {
	count := len(data)
	if count == 0 {
		return []byte{0, 0}
	}

	bodyLength := 0
	for _, blob := range data {
		bodyLength += len(blob)
	}
	offSize := 1
	for bodyLength+1 >= 1<<(8*offSize) {
		offSize++
	}

	res := []byte{byte(count >> 8), byte(count), byte(offSize)}
	pos := 1
	for i := 0; i <= count; i++ {
		for j := offSize - 1; j >= 0; j-- {
			res = append(res, byte(pos>>(8*j)))
		}
		if i < count {
			pos += len(data[i])
		}
	}
	for _, blob := range data {
		res = append(res, blob...)
	}
	return res
}

// dictInt encodes an integer operand using the 5-byte form, so that the
// size of a DICT does not depend on the values.
func dictInt(x int) []byte {
	return []byte{29, byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
}

// csInt encodes an integer charstring operand.
func csInt(x int) []byte {
	switch {
	case x >= -107 && x <= 107:
		return []byte{byte(x + 139)}
	case x >= 108 && x <= 1131:
		x -= 108
		return []byte{byte(x>>8 + 247), byte(x)}
	case x >= -1131 && x <= -108:
		x = -x - 108
		return []byte{byte(x>>8 + 251), byte(x)}
	default:
		return []byte{28, byte(x >> 8), byte(x)}
	}
}

// cs assembles a charstring from integers (operands) and t2op values
// (operators).
func cs(items ...interface{}) []byte {
	var res []byte
	for _, item := range items {
		switch x := item.(type) {
		case int:
			res = append(res, csInt(x)...)
		case t2op:
			if x > 0xff {
				res = append(res, 12, byte(x))
			} else {
				res = append(res, byte(x))
			}
		case []byte:
			res = append(res, x...)
		default:
			panic("unexpected charstring item")
		}
	}
	return res
}

// testFont describes a name-keyed CFF font for use in unit tests.
type testFont struct {
	charStrings  [][]byte
	subrs        [][]byte
	gsubrs       [][]byte
	charset      []uint16 // SIDs of glyphs 1, 2, ...; nil selects ISOAdobe
	strings      []string
	nominalWidth int
}

func (tf *testFont) bytes() []byte {
	hdr := []byte{1, 0, 4, 4}
	names := encodeIndex([][]byte{[]byte("Test")})
	var extra [][]byte
	for _, s := range tf.strings {
		extra = append(extra, []byte(s))
	}
	stringIndex := encodeIndex(extra)
	gsubrIndex := encodeIndex(tf.gsubrs)

	var charsetData []byte
	if tf.charset != nil {
		charsetData = append(charsetData, 0)
		for _, sid := range tf.charset {
			charsetData = append(charsetData, byte(sid>>8), byte(sid))
		}
	}
	csIndex := encodeIndex(tf.charStrings)

	var privateDict []byte
	privateDict = append(privateDict, dictInt(tf.nominalWidth)...)
	privateDict = append(privateDict, byte(opNominalWidthX))
	if tf.subrs != nil {
		privateDict = append(privateDict, dictInt(len(privateDict)+6)...)
		privateDict = append(privateDict, byte(opSubrs))
	}
	subrIndex := encodeIndex(tf.subrs)

	topDict := func(charsetOffs, csOffs, privOffs int) []byte {
		var res []byte
		if tf.charset != nil {
			res = append(res, dictInt(charsetOffs)...)
			res = append(res, byte(opCharset))
		}
		res = append(res, dictInt(csOffs)...)
		res = append(res, byte(opCharStrings))
		res = append(res, dictInt(len(privateDict))...)
		res = append(res, dictInt(privOffs)...)
		res = append(res, byte(opPrivate))
		return res
	}

	topIndexLen := len(encodeIndex([][]byte{topDict(0, 0, 0)}))
	charsetOffs := len(hdr) + len(names) + topIndexLen + len(stringIndex) + len(gsubrIndex)
	csOffs := charsetOffs + len(charsetData)
	privOffs := csOffs + len(csIndex)

	var res []byte
	res = append(res, hdr...)
	res = append(res, names...)
	res = append(res, encodeIndex([][]byte{topDict(charsetOffs, csOffs, privOffs)})...)
	res = append(res, stringIndex...)
	res = append(res, gsubrIndex...)
	res = append(res, charsetData...)
	res = append(res, csIndex...)
	res = append(res, privateDict...)
	if tf.subrs != nil {
		res = append(res, subrIndex...)
	}
	return res
}

func (tf *testFont) read(t *testing.T) *Font {
	t.Helper()
	f, err := Read(tf.bytes())
	if err != nil {
		t.Fatal(err)
	}
	return f
}
