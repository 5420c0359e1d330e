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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfglyph/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// Only the fields which are relevant for locating and substituting font
// programs are included.  The embedded font programs are kept as
// references; they are read by the font dispatch code.
//
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	FontName    string
	FontFamily  string
	FontStretch os2.Width
	FontWeight  os2.Weight

	Flags Flags

	FontBBox     *rect.Rect
	ItalicAngle  float64
	MissingWidth float64

	FontFile  pdf.Object // Type 1 font program
	FontFile2 pdf.Object // TrueType font program
	FontFile3 pdf.Object // font program with a /Subtype entry
}

// IsFixedPitch returns true if all glyphs have the same width.
func (d *Descriptor) IsFixedPitch() bool { return d != nil && d.Flags&FlagFixedPitch != 0 }

// IsSerif returns true if the glyphs have serifs.
func (d *Descriptor) IsSerif() bool { return d != nil && d.Flags&FlagSerif != 0 }

// IsSymbolic returns true if the font uses glyphs outside the standard
// Latin character set.
func (d *Descriptor) IsSymbolic() bool { return d != nil && d.Flags&FlagSymbolic != 0 }

// IsItalic returns true for slanted fonts.
func (d *Descriptor) IsItalic() bool { return d != nil && d.Flags&FlagItalic != 0 }

// IsBold returns true if the font should be rendered in a bold weight.
func (d *Descriptor) IsBold() bool {
	return d != nil && (d.Flags&FlagForceBold != 0 || d.FontWeight >= 600)
}

// ReadDescriptor decodes a font descriptor dictionary.
// If obj is null, nil is returned without error.
func ReadDescriptor(r pdf.Getter, obj pdf.Object) (*Descriptor, error) {
	fontDescriptor, err := pdf.GetDictTyped(r, obj, "FontDescriptor")
	if err != nil || fontDescriptor == nil {
		return nil, err
	}

	res := &Descriptor{}

	fontName, err := pdf.GetName(r, fontDescriptor["FontName"])
	if err != nil {
		return nil, pdf.Wrap(err, "FontName")
	}
	res.FontName = string(fontName)

	fontFamily, err := pdf.GetString(r, fontDescriptor["FontFamily"])
	if err != nil {
		return nil, pdf.Wrap(err, "FontFamily")
	}
	res.FontFamily = string(fontFamily)

	fontStretch, _ := pdf.GetName(r, fontDescriptor["FontStretch"])
	switch fontStretch {
	case "UltraCondensed":
		res.FontStretch = os2.WidthUltraCondensed
	case "ExtraCondensed":
		res.FontStretch = os2.WidthExtraCondensed
	case "Condensed":
		res.FontStretch = os2.WidthCondensed
	case "SemiCondensed":
		res.FontStretch = os2.WidthSemiCondensed
	case "Normal":
		res.FontStretch = os2.WidthNormal
	case "SemiExpanded":
		res.FontStretch = os2.WidthSemiExpanded
	case "Expanded":
		res.FontStretch = os2.WidthExpanded
	case "ExtraExpanded":
		res.FontStretch = os2.WidthExtraExpanded
	case "UltraExpanded":
		res.FontStretch = os2.WidthUltraExpanded
	}

	fontWeight, _ := pdf.GetNumber(r, fontDescriptor["FontWeight"])
	if fontWeight > 0 && fontWeight < 1000 {
		res.FontWeight = os2.Weight(math.Round(fontWeight))
	}

	flags, err := pdf.GetInteger(r, fontDescriptor["Flags"])
	if err != nil {
		return nil, pdf.Wrap(err, "Flags")
	}
	res.Flags = Flags(flags)

	// A broken bounding box is not worth giving up the font for.
	res.FontBBox, _ = pdf.GetRectangle(r, fontDescriptor["FontBBox"])

	italicAngle, err := pdf.GetNumber(r, fontDescriptor["ItalicAngle"])
	if err != nil {
		return nil, pdf.Wrap(err, "ItalicAngle")
	}
	res.ItalicAngle = italicAngle

	missingWidth, err := pdf.GetNumber(r, fontDescriptor["MissingWidth"])
	if err != nil {
		return nil, pdf.Wrap(err, "MissingWidth")
	}
	res.MissingWidth = missingWidth

	res.FontFile = fontDescriptor["FontFile"]
	res.FontFile2 = fontDescriptor["FontFile2"]
	res.FontFile3 = fontDescriptor["FontFile3"]

	return res, nil
}
