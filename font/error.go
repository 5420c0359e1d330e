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
	"errors"

	"seehuhn.de/go/pdfglyph/pdf"
)

// InvalidFontError indicates a problem with font data.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return err.SubSystem + ": " + err.Reason
}

// NotSupportedError indicates that a font file seems valid but uses a
// feature which is not supported by this library.
type NotSupportedError struct {
	SubSystem string
	Feature   string
}

func (err *NotSupportedError) Error() string {
	return err.SubSystem + ": " + err.Feature + " not supported"
}

// UnsupportedSubtypeError is returned when a font dictionary has a
// Subtype for which no font program can be constructed.
type UnsupportedSubtypeError struct {
	Subtype pdf.Name
}

func (err *UnsupportedSubtypeError) Error() string {
	return "unsupported font type: " + string(err.Subtype)
}

// ErrRecursionLimit is returned when a glyph description nests deeper than
// allowed, for example through recursive subroutine calls or cyclic
// composite glyphs.
var ErrRecursionLimit = errors.New("font: recursion limit exceeded")

// IsUnsupported returns true if the error is a NotSupportedError.
func IsUnsupported(err error) bool {
	var e *NotSupportedError
	return errors.As(err, &e)
}

// IsInvalid returns true if the error indicates malformed font data.
func IsInvalid(err error) bool {
	var e *InvalidFontError
	return errors.As(err, &e)
}
