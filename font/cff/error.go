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
	"errors"

	"seehuhn.de/go/pdfglyph/font"
)

func invalidSince(reason string) error {
	return &font.InvalidFontError{
		SubSystem: "cff",
		Reason:    reason,
	}
}

func notSupported(feature string) error {
	return &font.NotSupportedError{
		SubSystem: "cff",
		Feature:   feature,
	}
}

var (
	errCorruptDict    = invalidSince("invalid DICT")
	errIncomplete     = errors.New("cff: incomplete charstring")
	errStackUnderflow = errors.New("cff: operand stack underflow")
	errStackOverflow  = errors.New("cff: operand stack overflow")
	errInvalidSubr    = errors.New("cff: invalid subroutine index")
)
