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

// Package dict reads PDF font dictionaries and constructs the font programs
// used to render their glyphs.
//
// Embedded font programs are used where possible.  If a font program is
// missing or cannot be used, the font is loaded from the system using a
// [loader.FontLoader], or is replaced by a built-in substitute font.
package dict

import (
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"seehuhn.de/go/pdfglyph/font"
	"seehuhn.de/go/pdfglyph/font/loader"
	"seehuhn.de/go/pdfglyph/pdf"
)

// Reader constructs fonts from the font dictionaries of a PDF file.
//
// Every font dictionary is read at most once; later calls to [Reader.Read]
// for the same object return the same [Font].  It is safe to use a Reader
// concurrently from multiple goroutines.
type Reader struct {
	r      pdf.Getter
	loader *loader.FontLoader

	mu     sync.Mutex
	byRef  map[pdf.Reference]*Font
	byDict map[uintptr]direct
}

// direct records a font read from a direct object.  The dictionary is kept
// so that its address is not reused.
type direct struct {
	dict pdf.Dict
	font *Font
}

// NewReader returns a new Reader.  The font loader is used to find fonts
// which are not embedded in the PDF file; if it is nil, no external fonts
// are used.
func NewReader(r pdf.Getter, l *loader.FontLoader) *Reader {
	return &Reader{
		r:      r,
		loader: l,
		byRef:  make(map[pdf.Reference]*Font),
		byDict: make(map[uintptr]direct),
	}
}

// Read returns the font for a font dictionary.
//
// Problems with embedded font programs are not reported as errors; a
// substitute font is used instead.  An error of type
// [*font.UnsupportedSubtypeError] is returned for unknown font types.
func (rd *Reader) Read(obj pdf.Object) (*Font, error) {
	rd.mu.Lock()
	defer rd.mu.Unlock()

	ref, isRef := obj.(pdf.Reference)
	if isRef {
		if f, ok := rd.byRef[ref]; ok {
			return f, nil
		}
	}

	fontDict, err := pdf.GetDictTyped(rd.r, obj, "Font")
	if err != nil {
		return nil, err
	} else if fontDict == nil {
		return nil, pdf.Errorf("missing font dictionary")
	}

	key := reflect.ValueOf(fontDict).Pointer()
	if d, ok := rd.byDict[key]; ok {
		if isRef {
			rd.byRef[ref] = d.font
		}
		return d.font, nil
	}

	f, err := rd.read(fontDict)
	if err != nil {
		return nil, err
	}

	if isRef {
		rd.byRef[ref] = f
	}
	rd.byDict[key] = direct{dict: fontDict, font: f}
	return f, nil
}

func (rd *Reader) read(fontDict pdf.Dict) (*Font, error) {
	subtype, err := pdf.GetName(rd.r, fontDict["Subtype"])
	if err != nil {
		return nil, pdf.Wrap(err, "Subtype")
	}

	readerMutex.Lock()
	read, ok := readers[subtype]
	readerMutex.Unlock()
	if !ok {
		return nil, &font.UnsupportedSubtypeError{Subtype: subtype}
	}

	f, err := read(rd, fontDict)
	if err != nil {
		return nil, err
	}
	f.Subtype = subtype
	return f, nil
}

type readerFunc func(rd *Reader, fontDict pdf.Dict) (*Font, error)

var (
	readerMutex sync.Mutex
	readers     map[pdf.Name]readerFunc
)

func registerReader(tp pdf.Name, fn readerFunc) {
	readerMutex.Lock()
	defer readerMutex.Unlock()

	if readers == nil {
		readers = make(map[pdf.Name]readerFunc)
	}

	if _, alreadyPresent := readers[tp]; alreadyPresent {
		panic(fmt.Sprintf("conflicting readers for font type %s", tp))
	}

	readers[tp] = fn
}

var subsetTag = regexp.MustCompile(`^[A-Z]{6}\+(.+)$`)

// postScriptName returns the BaseFont entry of a font dictionary, without
// any subset tag.
func postScriptName(r pdf.Getter, fontDict pdf.Dict) string {
	baseFont, _ := pdf.GetName(r, fontDict["BaseFont"])
	if m := subsetTag.FindStringSubmatch(string(baseFont)); m != nil {
		return m[1]
	}
	return string(baseFont)
}

func warn(msg string, fontName string, err error) {
	font.Logger().Warn("dict: "+msg, "font", fontName, "err", err)
}
