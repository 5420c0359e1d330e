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

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfglyph/font/parser"
)

func TestCharsetDecode(t *testing.T) {
	cases := []struct {
		blob   []byte
		nGlyph int
		first  uint16
		last   uint16
	}{
		{[]byte{0, 0, 1, 0, 3, 0, 15}, 4, 1, 15},
		{[]byte{1, 0, 2, 13}, 15, 2, 2 + 13},
		{[]byte{2, 0, 3, 2, 1}, 1 + 2*256 + 2, 3, 3 + 2*256 + 1},
	}

	for i, test := range cases {
		p := parser.New("charset", test.blob)
		charset, err := readCharset(p, test.nGlyph)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if len(charset) != test.nGlyph {
			t.Errorf("%d: expected %d glyphs, got %d", i, test.nGlyph, len(charset))
			continue
		}
		if charset[0] != 0 || charset[1] != test.first || charset[test.nGlyph-1] != test.last {
			t.Errorf("%d: wrong charset %d, %d, ..., %d",
				i, charset[0], charset[1], charset[test.nGlyph-1])
		}
	}
}

func TestPredefinedCharsets(t *testing.T) {
	cases := []struct {
		offs   int
		length int
		index  int
		name   string
	}{
		{0, 229, 34, "A"},
		{0, 229, 228, "zcaron"},
		{1, 166, 2, "exclamsmall"},
		{1, 166, 165, "Ydieresissmall"},
		{2, 87, 2, "dollaroldstyle"},
		{2, 87, 86, "commainferior"},
	}
	for _, test := range cases {
		charset := predefinedCharset(test.offs, 1000)
		if len(charset) != test.length {
			t.Errorf("charset %d: wrong length %d != %d", test.offs, len(charset), test.length)
			continue
		}
		if name := standardStrings[charset[test.index]]; name != test.name {
			t.Errorf("charset %d: glyph %d is %q, not %q", test.offs, test.index, name, test.name)
		}
	}

	if got := predefinedCharset(0, 3); len(got) != 3 {
		t.Errorf("predefined charset not truncated: %d", len(got))
	}
}

func TestStandardStrings(t *testing.T) {
	for sid, name := range map[uint16]string{
		0:   ".notdef",
		1:   "space",
		34:  "A",
		95:  "asciitilde",
		149: "germandbls",
		229: "exclamsmall",
		266: "ff",
		379: "001.000",
		390: "Semibold",
	} {
		if got := standardStrings[sid]; got != name {
			t.Errorf("SID %d: got %q, want %q", sid, got, name)
		}
	}

	ss := newStrings(cffIndex{[]byte("extra")})
	if got := ss.get(nStandardStrings); got != "extra" {
		t.Errorf("wrong custom string %q", got)
	}
	if got := ss.get(nStandardStrings + 1); got != "" {
		t.Errorf("invalid SID resolved to %q", got)
	}
}

func TestEncodingFormats(t *testing.T) {
	charset := []uint16{0, 34, 35, 36, 37}

	// format 0 with a supplement which maps code 97 to SID 36 (glyph 3)
	blob := []byte{0x80, 4, 65, 66, 68, 67, 1, 97, 0, 36}
	enc, err := readEncoding(parser.New("encoding", blob), charset)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]int{65: 1, 66: 2, 68: 3, 67: 4, 97: 3}
	got := map[int]int{}
	for code, gid := range enc {
		if gid != 0 {
			got[code] = int(gid)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("format 0 (-want +got):\n%s", diff)
	}

	// format 1: codes 40-41 and 50-51
	blob = []byte{1, 2, 40, 1, 50, 1}
	enc, err = readEncoding(parser.New("encoding", blob), charset)
	if err != nil {
		t.Fatal(err)
	}
	if enc[40] != 1 || enc[41] != 2 || enc[50] != 3 || enc[51] != 4 || enc[42] != 0 {
		t.Errorf("format 1 decoded wrongly: %v", enc[40:52])
	}
}

func TestExpertEncoding(t *testing.T) {
	for code, name := range map[byte]string{
		32:  "space",
		33:  "exclamsmall",
		44:  "comma",
		97:  "Asmall",
		122: "Zsmall",
		126: "Tildesmall",
		188: "onequarter",
		255: "Ydieresissmall",
		64:  "",
	} {
		if got := expertEncoding(code); got != name {
			t.Errorf("code %d: got %q, want %q", code, got, name)
		}
	}
}

func TestFDSelect(t *testing.T) {
	// format 3: glyphs 0-1 use FD 1, glyphs 2-4 use FD 0
	blob := []byte{3, 0, 2, 0, 0, 1, 0, 2, 0, 0, 5}
	fds, err := readFDSelect(parser.New("FDSelect", blob), 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint8{1, 1, 0, 0, 0}, fds); diff != "" {
		t.Errorf("format 3 (-want +got):\n%s", diff)
	}

	blob = []byte{0, 0, 1, 1}
	fds, err = readFDSelect(parser.New("FDSelect", blob), 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint8{0, 1, 1}, fds); diff != "" {
		t.Errorf("format 0 (-want +got):\n%s", diff)
	}

	if _, err := readFDSelect(parser.New("FDSelect", []byte{0, 0, 2}), 2, 2); err == nil {
		t.Error("out of range FD accepted")
	}
}

func FuzzEncoding(f *testing.F) {
	charset := make([]uint16, 258)
	for i := range charset {
		charset[i] = uint16(i)
	}
	f.Add([]byte{0x80, 4, 65, 66, 68, 67, 1, 97, 0, 36})
	f.Add([]byte{1, 2, 40, 1, 50, 1})
	f.Fuzz(func(t *testing.T, data []byte) {
		enc, err := readEncoding(parser.New("encoding", data), charset)
		if err != nil {
			return
		}
		if len(enc) != 256 {
			t.Fatalf("wrong encoding length %d", len(enc))
		}
		for _, gid := range enc {
			if int(gid) >= len(charset) {
				t.Fatalf("invalid glyph %d", gid)
			}
		}
	})
}
