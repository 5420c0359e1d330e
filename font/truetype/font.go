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

// Package truetype renders glyphs from TrueType font programs.
//
// Font files are decoded using seehuhn.de/go/sfnt; the "glyf" outlines are
// then interpreted directly.  Outlines are returned in glyph space with the
// y-axis pointing up, as stored in the font file; no coordinate flip is
// applied.
package truetype

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
)

// Font is a decoded TrueType font program.
type Font struct {
	UnitsPerEm uint16

	outlines *glyf.Outlines

	// subtables lists the usable cmap subtables, in order of preference.
	subtables []cmapEntry
	unicode   cmap.Subtable // the (3,1) subtable, if present
	mac       cmap.Subtable // the (1,0) subtable, if present

	nameToGID map[string]glyph.ID
}

type cmapEntry struct {
	key cmap.Key
	sub cmap.Subtable
}

// cmapPreference is the order in which cmap subtables are tried for
// character code lookups.
var cmapPreference = []cmap.Key{
	{PlatformID: 3, EncodingID: 1}, // Microsoft Unicode BMP
	{PlatformID: 0, EncodingID: 0}, // Unicode default
	{PlatformID: 0, EncodingID: 3}, // Unicode 2.0 BMP
	{PlatformID: 0, EncodingID: 4}, // Unicode 2.0 full repertoire
	{PlatformID: 1, EncodingID: 0}, // Macintosh Roman
	{PlatformID: 3, EncodingID: 0}, // Microsoft Symbol
}

// symbolPages are OR-ed into single byte codes when the plain code is not
// mapped by any subtable.  Symbol fonts usually map their glyphs to these
// ranges.
var symbolPages = []uint32{0xF000, 0xF100, 0xF200}

// Read decodes a TrueType font program.
// For TrueType collections, the first font of the collection is used.
//
// Fonts with CFF outlines ("OTTO") are rejected with a
// [font.NotSupportedError].
func Read(data []byte) (*Font, error) {
	if hasTag(data, "ttcf") {
		var err error
		data, err = firstFont(data)
		if err != nil {
			return nil, err
		}
	}
	if hasTag(data, "OTTO") {
		return nil, errCFFOutlines
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &font.InvalidFontError{
			SubSystem: "truetype",
			Reason:    err.Error(),
		}
	}
	outlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok || outlines == nil {
		if info.Outlines != nil && !ok {
			return nil, errCFFOutlines
		}
		return nil, &font.InvalidFontError{
			SubSystem: "truetype",
			Reason:    "no glyph outlines",
		}
	}

	f := &Font{
		UnitsPerEm: info.UnitsPerEm,
		outlines:   outlines,
	}
	if f.UnitsPerEm == 0 {
		f.UnitsPerEm = 1000
	}

	if outlines.Names != nil {
		f.nameToGID = make(map[string]glyph.ID, len(outlines.Names))
		for gid, name := range outlines.Names {
			if name == "" || gid >= len(outlines.Glyphs) {
				continue
			}
			if _, seen := f.nameToGID[name]; !seen {
				f.nameToGID[name] = glyph.ID(gid)
			}
		}
	}

	// The "cmap" table is optional for our purposes.
	if info.CMapTable != nil {
		f.readCmap(info.CMapTable)
	}

	return f, nil
}

var errCFFOutlines = &font.NotSupportedError{
	SubSystem: "truetype",
	Feature:   "OpenType fonts with CFF outlines",
}

func hasTag(data []byte, tag string) bool {
	return len(data) >= 4 && string(data[:4]) == tag
}

func (f *Font) readCmap(table cmap.Table) {
	for _, key := range cmapPreference {
		if _, ok := table[key]; !ok {
			continue
		}
		sub, err := table.Get(key)
		if err != nil {
			font.Logger().Debug("truetype: skipping cmap subtable",
				"platform", key.PlatformID, "encoding", key.EncodingID, "err", err)
			continue
		}
		if sub == nil {
			continue
		}
		f.subtables = append(f.subtables, cmapEntry{key: key, sub: sub})
		switch key {
		case cmap.Key{PlatformID: 3, EncodingID: 1}:
			f.unicode = sub
		case cmap.Key{PlatformID: 1, EncodingID: 0}:
			f.mac = sub
		}
	}
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.outlines.Glyphs)
}

// GlyphName returns the name of a glyph from the "post" table, or the
// empty string if the glyph has no name.
func (f *Font) GlyphName(gid glyph.ID) string {
	if int(gid) >= len(f.outlines.Names) {
		return ""
	}
	return f.outlines.Names[gid]
}

// CodeToGID maps a character code to a glyph using the cmap subtables.
// The second return value is false if no subtable maps the code.
func (f *Font) CodeToGID(code uint32) (glyph.ID, bool) {
	if gid, ok := f.lookupCode(code); ok {
		return gid, true
	}
	if code < 256 {
		for _, page := range symbolPages {
			if gid, ok := f.lookupCode(page | code); ok {
				return gid, true
			}
		}
	}
	return 0, false
}

func (f *Font) lookupCode(code uint32) (glyph.ID, bool) {
	for _, e := range f.subtables {
		gid := e.sub.Lookup(rune(code))
		if gid != 0 && int(gid) < len(f.outlines.Glyphs) {
			return gid, true
		}
	}
	return 0, false
}

// NameToGID maps a glyph name to a glyph.
//
// Names are first looked up in the "post" table.  Otherwise the name is
// mapped to a Unicode character using the Adobe Glyph List, which is then
// looked up in the Microsoft Unicode cmap subtable; for Macintosh-only
// fonts, the Mac OS Roman code of the character is used instead.
func (f *Font) NameToGID(name string) (glyph.ID, bool) {
	if name == "" {
		return 0, false
	}
	if gid, ok := f.nameToGID[name]; ok {
		return gid, true
	}

	text := names.ToUnicode(name, "")
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError || size != len(text) {
		return 0, false
	}
	if f.unicode != nil {
		if gid := f.unicode.Lookup(r); gid != 0 && int(gid) < len(f.outlines.Glyphs) {
			return gid, true
		}
		return 0, false
	}
	if f.mac != nil {
		if b, ok := charmap.Macintosh.EncodeRune(r); ok {
			if gid := f.mac.Lookup(rune(b)); gid != 0 && int(gid) < len(f.outlines.Glyphs) {
				return gid, true
			}
		}
	}
	return 0, false
}

// Advance returns the advance width of a glyph as a fraction of the em
// square.
func (f *Font) Advance(gid glyph.ID) float64 {
	ww := f.outlines.Widths
	if int(gid) >= len(ww) {
		return 0
	}
	return float64(ww[gid]) / float64(f.UnitsPerEm)
}
