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
	"bytes"
	"testing"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/parser"
)

func TestIndexThreeItems(t *testing.T) {
	buf := []byte{
		0, 3,       // count
		1,          // offSize
		1, 3, 4, 7, // offsets
		'a', 'b', 'c', 'd', 'e', 'f',
		0xff, // not part of the INDEX
	}
	p := parser.New("test", buf)
	out, err := readIndex(p)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]byte{[]byte("ab"), []byte("c"), []byte("def")}
	if len(out) != len(want) {
		t.Fatalf("wrong count %d", len(out))
	}
	for i := range want {
		if !bytes.Equal(out[i], want[i]) {
			t.Errorf("item %d: got %q, want %q", i, out[i], want[i])
		}
	}
	if p.Pos() != len(buf)-1 {
		t.Errorf("INDEX ends at %d, expected %d", p.Pos(), len(buf)-1)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	blob := make([]byte, 1+127)
	for i := range blob {
		blob[i] = byte(i + 1)
	}

	for _, count := range []int{0, 2, 3, 517} {
		data := make([][]byte, count)
		for i := range data {
			d := i % 2
			data[i] = blob[d : d+127]
		}

		buf := encodeIndex(data)
		if count == 0 && len(buf) != 2 {
			t.Error("wrong length for empty INDEX")
		}

		out, err := readIndex(parser.New("CFF", buf))
		if err != nil {
			t.Error(err)
			continue
		}
		if len(out) != len(data) {
			t.Errorf("wrong length %d != %d", len(out), len(data))
			continue
		}
		for i := range out {
			if !bytes.Equal(out[i], data[i]) {
				t.Errorf("wrong data for item %d", i)
			}
		}
	}
}

func TestIndexMalformed(t *testing.T) {
	cases := [][]byte{
		{0, 1, 5, 1, 2},          // invalid offSize
		{0, 2, 1, 1, 3, 2, 0, 0}, // decreasing offsets
		{0, 1, 1, 2, 3},          // offset 0 must be 1
		{0, 1, 1, 1, 9, 0},       // data too short
	}
	for i, buf := range cases {
		_, err := readIndex(parser.New("CFF", buf))
		if !font.IsInvalid(err) {
			t.Errorf("%d: expected InvalidFontError, got %v", i, err)
		}
	}
}

func FuzzIndex(f *testing.F) {
	f.Add(encodeIndex([][]byte{[]byte("a"), []byte("bc")}))
	f.Add([]byte{0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := readIndex(parser.New("CFF", data))
		if err != nil {
			return
		}
		out2, err := readIndex(parser.New("CFF", encodeIndex(out)))
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != len(out2) {
			t.Fatal("round trip changed the number of items")
		}
	})
}
