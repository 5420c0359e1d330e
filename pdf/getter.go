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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Getter gives access to the indirect objects of a PDF file.
type Getter interface {
	Get(Reference) (Object, error)
}

// Objects is an in-memory collection of indirect objects.
// It implements the [Getter] interface.  Missing objects resolve to null,
// as required by the PDF specification.
type Objects map[Reference]Object

// Get implements the [Getter] interface.
func (o Objects) Get(ref Reference) (Object, error) {
	return o[ref], nil
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function reads the corresponding object from
// the file and returns the result.  If obj is not a [Reference], it is
// returned unchanged.  The function recursively follows chains of references
// until it resolves to a non-reference object.
//
// If a reference loop is encountered, the function returns an error of type
// [MalformedFileError].
func Resolve(r Getter, obj Object) (Object, error) {
	origObj := obj

	count := 0
	for {
		ref, isReference := obj.(Reference)
		if !isReference {
			break
		}
		if r == nil {
			return nil, nil
		}
		count++
		if count > 16 {
			return nil, &MalformedFileError{
				Err: errors.New("too many levels of indirection"),
				Loc: []string{"object " + origObj.(Reference).String()},
			}
		}

		var err error
		obj, err = r.Get(ref)
		if err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	obj, err = Resolve(r, obj)
	if err != nil {
		return x, err
	}

	if obj == nil {
		return x, nil
	}

	var isCorrectType bool
	x, isCorrectType = obj.(T)
	if isCorrectType {
		return x, nil
	}

	return x, &MalformedFileError{
		Err: fmt.Errorf("expected %T but got %T", x, obj),
	}
}

// Helper functions for getting objects of a specific type.  Each of these
// functions calls Resolve on the object before attempting to convert it to the
// desired type.  If the object is `null`, a zero object is returned witout
// error.  If the object is of the wrong type, an error is returned.
//
// The signature of these functions is
//
//	func GetT(r Getter, obj Object) (x T, err error)
//
// where T is the type of the object to be returned.
var (
	GetArray   = resolveAndCast[Array]
	GetBool    = resolveAndCast[Bool]
	GetDict    = resolveAndCast[Dict]
	GetInteger = resolveAndCast[Integer]
	GetName    = resolveAndCast[Name]
	GetReal    = resolveAndCast[Real]
	GetStream  = resolveAndCast[*Stream]
	GetString  = resolveAndCast[String]
)

// GetDictTyped resolves any indirect reference and checks that the resulting
// object is a dictionary.  If the dictionary has a "Type" entry, it must
// match the given type.  Streams are accepted, too, and their dictionary is
// returned.
func GetDictTyped(r Getter, obj Object, tp Name) (Dict, error) {
	obj, err := Resolve(r, obj)
	if err != nil {
		return nil, err
	}
	var dict Dict
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case Dict:
		dict = x
	case *Stream:
		dict = x.Dict
	default:
		return nil, Errorf("expected %s dictionary but got %T", tp, obj)
	}

	if val, isPresent := dict["Type"]; isPresent {
		haveType, err := GetName(r, val)
		if err != nil {
			return nil, err
		}
		if haveType != tp && haveType != "" {
			return nil, Errorf("expected dictionary type %q, got %q", tp, haveType)
		}
	}
	return dict, nil
}

// GetNumber is a helper function for reading numeric values from a PDF file.
// This resolves indirect references and makes sure the resulting object is an
// Integer or a Real.
func GetNumber(r Getter, obj Object) (float64, error) {
	obj, err := Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	switch x := obj.(type) {
	case Integer:
		return float64(x), nil
	case Real:
		return float64(x), nil
	case nil:
		return 0, nil
	default:
		return 0, &MalformedFileError{
			Err: fmt.Errorf("expected number but got %T", obj),
		}
	}
}

// GetNumbers reads an array of numbers.
func GetNumbers(r Getter, obj Object) ([]float64, error) {
	a, err := GetArray(r, obj)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	res := make([]float64, len(a))
	for i, x := range a {
		res[i], err = GetNumber(r, x)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// GetRectangle resolves references to indirect objects and makes sure the
// resulting object is a PDF rectangle object.
// If the object is null, nil is returned.
func GetRectangle(r Getter, obj Object) (*rect.Rect, error) {
	x, err := GetNumbers(r, obj)
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, nil
	}
	if len(x) != 4 {
		return nil, Errorf("expected 4 numbers for a rectangle, got %d", len(x))
	}
	return &rect.Rect{
		LLx: min(x[0], x[2]),
		LLy: min(x[1], x[3]),
		URx: max(x[0], x[2]),
		URy: max(x[1], x[3]),
	}, nil
}

// GetMatrix reads a transformation matrix, given as an array of six numbers.
// If the object is null, the zero matrix is returned without error.
func GetMatrix(r Getter, obj Object) (matrix.Matrix, error) {
	var m matrix.Matrix
	x, err := GetNumbers(r, obj)
	if err != nil {
		return m, err
	}
	if x == nil {
		return m, nil
	}
	if len(x) != 6 {
		return m, Errorf("expected 6 numbers for a matrix, got %d", len(x))
	}
	copy(m[:], x)
	return m, nil
}

// GetStreamData returns the decoded contents of a stream.
// If the object is null, nil is returned.
func GetStreamData(r Getter, obj Object) ([]byte, Dict, error) {
	stm, err := GetStream(r, obj)
	if err != nil || stm == nil {
		return nil, nil, err
	}
	return stm.Data, stm.Dict, nil
}
