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

package cid

import (
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfglyph/pdf"
)

// ReadCIDToGIDMap reads the CIDToGIDMap entry of a CIDFontType2 dictionary.
//
// A nil slice is returned for the identity mapping, which is also used if
// the entry is absent.
func ReadCIDToGIDMap(r pdf.Getter, obj pdf.Object) ([]glyph.ID, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	switch obj := obj.(type) {
	case nil:
		return nil, nil
	case pdf.Name:
		if obj != "Identity" {
			return nil, pdf.Errorf("invalid CIDToGIDMap %q", obj)
		}
		return nil, nil
	case *pdf.Stream:
		data := obj.Data
		if len(data)%2 != 0 {
			return nil, pdf.Errorf("CIDToGIDMap has odd length %d", len(data))
		}
		res := make([]glyph.ID, len(data)/2)
		for i := range res {
			res[i] = glyph.ID(data[2*i])<<8 | glyph.ID(data[2*i+1])
		}
		return res, nil
	default:
		return nil, pdf.Errorf("invalid CIDToGIDMap of type %T", obj)
	}
}
