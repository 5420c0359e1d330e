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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/parser"
	"seehuhn.de/go/pdfglyph/font/pdfenc"
)

// Font is a decoded CFF font program.
//
// Only the information needed to render glyphs is kept.  A Font is
// immutable after it has been returned by [Read] and can be used
// concurrently.
type Font struct {
	FontName string

	// FontMatrix maps design units to glyph space.
	FontMatrix matrix.Matrix

	// IsCIDKeyed is true for fonts with a ROS entry in the Top DICT.
	// For these fonts the charset maps glyph indices to CIDs.
	IsCIDKeyed bool

	charStrings cffIndex
	gsubrs      cffIndex
	charset     []uint16
	strings     *cffStrings

	// encoding maps codes to glyphs for fonts with a custom encoding.
	// If encoding is nil, predefined is used instead.
	encoding   []glyph.ID
	predefined func(byte) string

	private  []*privateInfo
	fdSelect []uint8
	fdMatrix []matrix.Matrix

	nameToGID map[string]glyph.ID
	cidToGID  map[cid.CID]glyph.ID
}

type privateInfo struct {
	subrs        cffIndex
	defaultWidth float64
	nominalWidth float64
}

// Read decodes a CFF font program.  If the data contains more than one
// font, the first one is used.
func Read(data []byte) (*Font, error) {
	p := parser.New("CFF", data)

	hdr, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	major, minor, hdrSize := hdr[0], hdr[1], hdr[2]
	if major == 2 {
		return nil, notSupported(fmt.Sprintf("CFF version %d.%d", major, minor))
	} else if major != 1 || hdrSize < 4 {
		return nil, invalidSince("not a CFF font")
	}
	err = p.SeekPos(int(hdrSize))
	if err != nil {
		return nil, err
	}

	fontNames, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	topDictIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	if len(fontNames) == 0 || len(topDictIndex) == 0 {
		return nil, invalidSince("no font found")
	}
	stringIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	gsubrs, err := readIndex(p)
	if err != nil {
		return nil, err
	}

	topDict, err := decodeDict(topDictIndex[0])
	if err != nil {
		return nil, err
	}
	if tp := topDict.getInt(opCharstringType, 2); tp != 2 {
		return nil, notSupported(fmt.Sprintf("charstring type %d", tp))
	}

	f := &Font{
		FontName: string(fontNames[0]),
		gsubrs:   gsubrs,
		strings:  newStrings(stringIndex),
	}
	topMatrix, explicitMatrix := topDict.getFontMatrix()
	f.FontMatrix = topMatrix

	f.charStrings, err = readIndexAt(p, topDict.getInt(opCharStrings, 0), "CharStrings")
	if err != nil {
		return nil, err
	}
	nGlyphs := len(f.charStrings)
	if nGlyphs == 0 {
		return nil, invalidSince("no glyphs")
	}

	_, f.IsCIDKeyed = topDict[opROS]

	charsetOffs := topDict.getInt(opCharset, 0)
	if charsetOffs <= 2 && !f.IsCIDKeyed {
		f.charset = predefinedCharset(charsetOffs, nGlyphs)
	} else {
		err = seekFont(p, charsetOffs)
		if err != nil {
			return nil, err
		}
		f.charset, err = readCharset(p, nGlyphs)
		if err != nil {
			return nil, err
		}
	}

	if f.IsCIDKeyed {
		err = f.readCIDData(p, topDict, explicitMatrix)
		if err != nil {
			return nil, err
		}
		f.cidToGID = make(map[cid.CID]glyph.ID, len(f.charset))
		for gid := len(f.charset) - 1; gid >= 0; gid-- {
			f.cidToGID[cid.CID(f.charset[gid])] = glyph.ID(gid)
		}
		return f, nil
	}

	switch encodingOffs := topDict.getInt(opEncoding, 0); encodingOffs {
	case 0:
		f.predefined = pdfenc.Standard.Decode
	case 1:
		f.predefined = expertEncoding
	default:
		err = seekFont(p, encodingOffs)
		if err != nil {
			return nil, err
		}
		f.encoding, err = readEncoding(p, f.charset)
		if err != nil {
			return nil, err
		}
	}

	private, err := readPrivate(p, topDict)
	if err != nil {
		return nil, err
	}
	f.private = []*privateInfo{private}

	f.nameToGID = make(map[string]glyph.ID, len(f.charset))
	for gid := len(f.charset) - 1; gid >= 0; gid-- {
		f.nameToGID[f.strings.get(f.charset[gid])] = glyph.ID(gid)
	}

	return f, nil
}

// readCIDData reads the FDArray and FDSelect structures of a CID-keyed
// font.
func (f *Font) readCIDData(p *parser.Parser, topDict cffDict, explicitMatrix bool) error {
	fdArray, err := readIndexAt(p, topDict.getInt(opFDArray, 0), "Font DICT")
	if err != nil {
		return err
	}
	if len(fdArray) == 0 || len(fdArray) > 256 {
		return invalidSince("invalid FDArray")
	}

	for _, blob := range fdArray {
		fontDict, err := decodeDict(blob)
		if err != nil {
			return err
		}
		private, err := readPrivate(p, fontDict)
		if err != nil {
			return err
		}
		f.private = append(f.private, private)

		m, ok := fontDict.getFontMatrix()
		switch {
		case ok && explicitMatrix:
			m = m.Mul(f.FontMatrix)
		case !ok:
			m = f.FontMatrix
		}
		f.fdMatrix = append(f.fdMatrix, m)
	}

	err = seekFont(p, topDict.getInt(opFDSelect, 0))
	if err != nil {
		return err
	}
	f.fdSelect, err = readFDSelect(p, len(f.charStrings), len(fdArray))
	return err
}

// readPrivate reads the Private DICT referenced by d, together with the
// local subroutines.
func readPrivate(p *parser.Parser, d cffDict) (*privateInfo, error) {
	res := &privateInfo{}

	size, offs, ok := d.getPair(opPrivate)
	if !ok || size == 0 {
		return res, nil
	}
	err := p.SetRegion("Private", offs, size)
	if err != nil {
		return nil, err
	}
	blob, err := p.ReadBytes(size)
	if err != nil {
		return nil, err
	}
	privateDict, err := decodeDict(blob)
	if err != nil {
		return nil, err
	}

	res.defaultWidth = privateDict.getNumber(opDefaultWidthX, 0)
	res.nominalWidth = privateDict.getNumber(opNominalWidthX, 0)

	if subrsOffs := privateDict.getInt(opSubrs, 0); subrsOffs > 0 {
		res.subrs, err = readIndexAt(p, offs+subrsOffs, "Subrs")
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func seekFont(p *parser.Parser, offs int) error {
	err := p.SetRegion("CFF", 0, p.Size())
	if err != nil {
		return err
	}
	if offs < 4 {
		return invalidSince(fmt.Sprintf("invalid offset %d", offs))
	}
	return p.SeekPos(offs)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.charStrings)
}

// GlyphName returns the name of a glyph.  The empty string is returned for
// CID-keyed fonts and for invalid glyph indices.
func (f *Font) GlyphName(gid glyph.ID) string {
	if f.IsCIDKeyed || int(gid) >= len(f.charset) {
		return ""
	}
	return f.strings.get(f.charset[gid])
}

// GlyphID returns the glyph with the given name.
func (f *Font) GlyphID(name string) (glyph.ID, bool) {
	gid, ok := f.nameToGID[name]
	return gid, ok
}

// CodeToGID maps a character code to a glyph, using the font's built-in
// encoding.
func (f *Font) CodeToGID(code byte) (glyph.ID, bool) {
	if f.encoding != nil {
		gid := f.encoding[code]
		return gid, gid != 0
	}
	if f.predefined == nil {
		return 0, false
	}
	name := f.predefined(code)
	if name == "" {
		return 0, false
	}
	return f.GlyphID(name)
}

// CIDToGID maps a CID to a glyph of a CID-keyed font.  For other fonts, the
// CID is used as the glyph index.
func (f *Font) CIDToGID(c cid.CID) (glyph.ID, bool) {
	if !f.IsCIDKeyed {
		return glyph.ID(c), int(c) < len(f.charStrings)
	}
	gid, ok := f.cidToGID[c]
	return gid, ok
}

// BuiltinEncoding returns the names of the glyphs mapped by the font's
// built-in encoding.  Nil is returned for CID-keyed fonts.
func (f *Font) BuiltinEncoding() *[256]string {
	if f.IsCIDKeyed {
		return nil
	}
	res := &[256]string{}
	for code := range res {
		res[code] = ".notdef"
		if gid, ok := f.CodeToGID(byte(code)); ok {
			res[code] = f.GlyphName(gid)
		}
	}
	return res
}

func (f *Font) standardGID(code byte) (glyph.ID, bool) {
	name := pdfenc.Standard.Decode(code)
	if name == "" {
		return 0, false
	}
	return f.GlyphID(name)
}

func (f *Font) fdIndex(gid glyph.ID) int {
	if int(gid) < len(f.fdSelect) {
		return int(f.fdSelect[gid])
	}
	return 0
}

// Outline returns the outline and the advance width of a glyph, both in
// glyph space.  Invalid glyph indices are replaced by glyph 0.
func (f *Font) Outline(gid glyph.ID) (*font.Outline, float64, error) {
	if int(gid) >= len(f.charStrings) {
		gid = 0
	}
	o, width, err := f.decode(gid, 0)
	if err != nil {
		return nil, 0, err
	}

	m := f.FontMatrix
	if f.IsCIDKeyed {
		m = f.fdMatrix[f.fdIndex(gid)]
	}
	return o.Transform(m), width * m[0], nil
}

// decode runs the charstring for the given glyph.  The outline and width
// are returned in design units.
func (f *Font) decode(gid glyph.ID, seacDepth int) (*font.Outline, float64, error) {
	var private *privateInfo
	if idx := f.fdIndex(gid); idx < len(f.private) {
		private = f.private[idx]
	} else {
		private = &privateInfo{}
	}

	ip := &interp{
		f:            f,
		seacDepth:    seacDepth,
		subrs:        private.subrs,
		gsubrs:       f.gsubrs,
		nominalWidth: private.nominalWidth,
		width:        private.defaultWidth,
	}
	err := ip.run(f.charStrings[gid])
	if err != nil {
		return nil, 0, fmt.Errorf("glyph %d: %w", gid, err)
	}
	return ip.b.Outline(), ip.width, nil
}
