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

package pdf

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedFileError indicates that a PDF object does not have the
// structure required by the PDF specification.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	parts := make([]string, 0, 2)
	for i := len(err.Loc) - 1; i >= 0; i-- {
		parts = append(parts, err.Loc[i])
	}
	msg := "malformed PDF object"
	if err.Err != nil {
		msg = err.Err.Error()
	}
	if len(parts) == 0 {
		return msg
	}
	return strings.Join(parts, ": ") + ": " + msg
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// Errorf returns a [MalformedFileError] with the given message.
func Errorf(format string, args ...interface{}) error {
	return &MalformedFileError{
		Err: fmt.Errorf(format, args...),
	}
}

// Wrap adds location information to an error.  If err is a
// [MalformedFileError], the location is added to the error; other errors
// are wrapped with fmt.Errorf.  A nil error is returned unchanged.
func Wrap(err error, loc string) error {
	if err == nil {
		return nil
	}
	var mf *MalformedFileError
	if errors.As(err, &mf) {
		return &MalformedFileError{
			Err: mf.Err,
			Loc: append(append([]string(nil), mf.Loc...), loc),
		}
	}
	return fmt.Errorf("%s: %w", loc, err)
}

// IsMalformed returns true if err indicates a malformed PDF object.
func IsMalformed(err error) bool {
	var mf *MalformedFileError
	return errors.As(err, &mf)
}
