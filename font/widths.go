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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfglyph/pdf"
)

// DefaultCIDWidth is the width used for CIDs not listed in the W array of a
// CIDFont dictionary, if no DW entry is present.
const DefaultCIDWidth = 1000.0

// SimpleWidths holds the glyph widths requested by a simple font dictionary.
// Widths are given in PDF glyph space units, i.e. 1/1000 of text space.
type SimpleWidths struct {
	FirstChar    int
	Widths       []float64
	MissingWidth float64
}

// ReadSimpleWidths reads the FirstChar and Widths entries of a simple font
// dictionary.  MissingWidth is taken from the font descriptor, if any.
// If no usable Widths array is present, nil is returned.
func ReadSimpleWidths(r pdf.Getter, fontDict pdf.Dict, missingWidth float64) *SimpleWidths {
	firstChar, _ := pdf.GetInteger(r, fontDict["FirstChar"])
	widths, _ := pdf.GetArray(r, fontDict["Widths"])
	if widths == nil || len(widths) > 256 || firstChar < 0 || firstChar >= 256 {
		return nil
	}

	res := &SimpleWidths{
		FirstChar:    int(firstChar),
		Widths:       make([]float64, len(widths)),
		MissingWidth: missingWidth,
	}
	for i, obj := range widths {
		w, err := pdf.GetNumber(r, obj)
		if err != nil {
			w = missingWidth
		}
		res.Widths[i] = w
	}
	return res
}

// Get returns the width requested for the given character code.
// The second return value is false if the font dictionary does not specify
// a width for this code.
func (w *SimpleWidths) Get(code int) (float64, bool) {
	if w == nil {
		return 0, false
	}
	idx := code - w.FirstChar
	if idx >= 0 && idx < len(w.Widths) {
		return w.Widths[idx], true
	}
	if w.MissingWidth != 0 {
		return w.MissingWidth, true
	}
	return 0, false
}

// CIDWidths holds the glyph widths of a CIDFont, from the W and DW entries.
type CIDWidths struct {
	Widths  map[cid.CID]float64
	Default float64
}

// Get returns the width for the given CID.
func (w *CIDWidths) Get(c cid.CID) float64 {
	if w == nil {
		return DefaultCIDWidth
	}
	if width, ok := w.Widths[c]; ok {
		return width
	}
	return w.Default
}

// ReadCIDWidths reads the W and DW entries of a CIDFont dictionary.
func ReadCIDWidths(r pdf.Getter, cidFontDict pdf.Dict) (*CIDWidths, error) {
	res := &CIDWidths{Default: DefaultCIDWidth}

	if obj, ok := cidFontDict["DW"]; ok {
		dw, err := pdf.GetNumber(r, obj)
		if err != nil {
			return res, pdf.Wrap(err, "DW")
		}
		res.Default = dw
	}

	ww, err := decodeCompositeWidths(r, cidFontDict["W"])
	if err != nil {
		return res, pdf.Wrap(err, "W")
	}
	res.Widths = ww
	return res, nil
}

func decodeCompositeWidths(r pdf.Getter, obj pdf.Object) (map[cid.CID]float64, error) {
	w, err := pdf.GetArray(r, obj)
	if w == nil {
		return nil, err
	}

	res := make(map[cid.CID]float64)
	for len(w) > 1 {
		c0, err := pdf.GetInteger(r, w[0])
		if err != nil {
			return nil, err
		}
		obj1, err := pdf.Resolve(r, w[1])
		if err != nil {
			return nil, err
		}
		if c1, ok := obj1.(pdf.Integer); ok {
			if len(w) < 3 || c0 < 0 || c1 < c0 || c1-c0 > 65536 {
				return nil, pdf.Errorf("invalid W entry in CIDFont dictionary")
			}
			wi, err := pdf.GetNumber(r, w[2])
			if err != nil {
				return nil, err
			}
			for c := c0; c <= c1; c++ {
				res[cid.CID(c)] = wi
			}
			w = w[3:]
		} else {
			wi, err := pdf.GetArray(r, w[1])
			if err != nil {
				return nil, err
			}
			if c0 < 0 {
				return nil, pdf.Errorf("invalid W entry in CIDFont dictionary")
			}
			for _, wiObj := range wi {
				wi, err := pdf.GetNumber(r, wiObj)
				if err != nil {
					return nil, err
				}
				res[cid.CID(c0)] = wi
				c0++
			}
			w = w[2:]
		}
	}
	if len(w) != 0 {
		return nil, pdf.Errorf("invalid W entry in CIDFont dictionary")
	}

	return res, nil
}

// FitWidth scales an outline horizontally so that its advance matches the
// width requested by the PDF font dictionary.
//
// The outline and natural are given in glyph space.  The requested width is
// given in PDF glyph space units (1/1000 of text space).  If no width is
// requested, or if either width is zero, the outline is returned unchanged
// together with its natural advance.
func FitWidth(o *Outline, natural float64, requested float64, ok bool) (*Outline, vec.Vec2) {
	if !ok {
		return o, vec.Vec2{X: natural}
	}
	target := requested / 1000
	if natural == 0 || target == 0 {
		return o, vec.Vec2{X: target}
	}
	q := target / natural
	if q == 1 || o.IsEmpty() {
		return o, vec.Vec2{X: target}
	}
	return o.Transform(matrix.Scale(q, 1)), vec.Vec2{X: target}
}
