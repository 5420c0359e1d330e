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

// Package builtin provides substitute fonts for PDF fonts whose font
// program is not embedded and cannot be found on the system.
//
// The substitutes are taken from the Go font family.
package builtin

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/pdfglyph/font"
)

// Face identifies one of the substitute fonts.
type Face int

// These are the available substitute fonts.
const (
	Regular         Face = iota // Go Regular
	Bold                        // Go Bold
	Italic                      // Go Italic
	BoldItalic                  // Go Bold Italic
	Mono                        // Go Mono
	MonoBold                    // Go Mono Bold
	MonoItalic                  // Go Mono Italic
	MonoBoldItalic              // Go Mono Bold Italic
	Smallcaps                   // Go Smallcaps
	SmallcapsItalic             // Go Smallcaps Italic
)

var ttf = map[Face][]byte{
	Regular:         goregular.TTF,
	Bold:            gobold.TTF,
	Italic:          goitalic.TTF,
	BoldItalic:      gobolditalic.TTF,
	Mono:            gomono.TTF,
	MonoBold:        gomonobold.TTF,
	MonoItalic:      gomonoitalic.TTF,
	MonoBoldItalic:  gomonobolditalic.TTF,
	Smallcaps:       gosmallcaps.TTF,
	SmallcapsItalic: gosmallcapsitalic.TTF,
}

var (
	parseMu sync.Mutex
	parsed  = map[Face]*Font{}
)

// Font returns the parsed font data for the face.
// Fonts are parsed on first use and shared afterwards.
func (f Face) Font() (*Font, error) {
	parseMu.Lock()
	defer parseMu.Unlock()

	if res, ok := parsed[f]; ok {
		return res, nil
	}
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("builtin: unknown face %d", f)
	}
	res, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("builtin: %w", err)
	}
	parsed[f] = res
	return res, nil
}

// Select chooses a substitute for the named font.
//
// The font descriptor flags are used if available.  In addition, the font
// name is searched for hints like "Bold", "Italic", "Oblique", "Courier"
// and "Mono".
func Select(name string, flags font.Flags) Face {
	lower := strings.ToLower(name)

	mono := flags&font.FlagFixedPitch != 0 ||
		strings.Contains(lower, "courier") ||
		strings.Contains(lower, "mono")
	bold := flags&font.FlagForceBold != 0 ||
		strings.Contains(lower, "bold")
	italic := flags&font.FlagItalic != 0 ||
		strings.Contains(lower, "italic") ||
		strings.Contains(lower, "oblique")

	var face Face
	if mono {
		face = Mono
	}
	if bold {
		face++
	}
	if italic {
		face += 2
	}
	return face
}
