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

// Package loader locates font files which are not embedded in a PDF file.
//
// A [FontLoader] maps PostScript font names to font files.  Entries can be
// added explicitly, using [FontLoader.AddFont] and [FontLoader.AddFontMap],
// or are found by scanning the font directories of the system.  The scan
// happens at most once, on the first call to [FontLoader.Open].
package loader

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// FontType is the type of a font file.
type FontType int

// Supported font types.
const (
	FontTypeType1 FontType = iota + 1 // PostScript Type 1 font
	FontTypeSfnt                      // TrueType or OpenType font
)

func (tp FontType) String() string {
	switch tp {
	case FontTypeType1:
		return "type1"
	case FontTypeSfnt:
		return "sfnt"
	default:
		return fmt.Sprintf("FontType(%d)", int(tp))
	}
}

// A FontLoader finds font files by PostScript name.
//
// It is safe to use a FontLoader concurrently from multiple goroutines.
type FontLoader struct {
	cfg Config

	mu      sync.RWMutex
	scanned bool
	lookup  map[string]*entry
}

type entry struct {
	fontType FontType
	fname    string
}

// New creates a new font loader.
// The font directories are not scanned until a font is requested.
func New(cfg Config) *FontLoader {
	return &FontLoader{
		cfg:    cfg,
		lookup: make(map[string]*entry),
	}
}

// Open opens the font with the given PostScript name.  The returned
// io.ReadCloser must be closed by the caller.
//
// If the font cannot be found, or if the loader is disabled, an error
// wrapping [fs.ErrNotExist] is returned.
func (l *FontLoader) Open(postscriptName string) (FontType, io.ReadCloser, error) {
	if l == nil || l.cfg.Disable {
		return 0, nil, fs.ErrNotExist
	}
	l.ensureScanned()

	l.mu.RLock()
	e, ok := l.lookup[postscriptName]
	l.mu.RUnlock()
	if !ok {
		return 0, nil, fmt.Errorf("font %q: %w", postscriptName, fs.ErrNotExist)
	}

	fd, err := os.Open(e.fname)
	if err != nil {
		return 0, nil, err
	}
	return e.fontType, fd, nil
}

// Fonts returns the PostScript names of all fonts known to the loader, in
// sorted order.  This triggers the directory scan if needed.
func (l *FontLoader) Fonts() []string {
	if l == nil || l.cfg.Disable {
		return nil
	}
	l.ensureScanned()

	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make([]string, 0, len(l.lookup))
	for name := range l.lookup {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// AddFontMap reads a font map from r and adds it to the loader.  A font map
// consists of lines of the form
//
//	<name> <type> <path>
//
// where <name> is the PostScript name of the font, <type> is either "type1"
// or "sfnt", and <path> is the path to the font file.  The fields must be
// separated by single spaces.  Lines starting with '#' or '%' are ignored.
//
// Any previous mapping for <name> is overwritten.
func (l *FontLoader) AddFontMap(r io.Reader) error {
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := lines.Text()
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || line[0] == '%' {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) != 3 || parts[2] == "" {
			return fmt.Errorf("invalid font map line: %q", line)
		}
		var fontType FontType
		switch parts[1] {
		case "type1":
			fontType = FontTypeType1
		case "sfnt":
			fontType = FontTypeSfnt
		default:
			return fmt.Errorf("invalid font type %q", parts[1])
		}

		l.AddFont(parts[0], fontType, parts[2])
	}
	return lines.Err()
}

// AddFont adds a font to the loader.  Any previous mapping for the same
// PostScript name is overwritten.  Fonts found by the directory scan never
// replace fonts added by this method.
func (l *FontLoader) AddFont(postscriptName string, tp FontType, fname string) {
	l.mu.Lock()
	l.lookup[postscriptName] = &entry{fontType: tp, fname: fname}
	l.mu.Unlock()
}

func (l *FontLoader) ensureScanned() {
	l.mu.RLock()
	done := l.scanned
	l.mu.RUnlock()
	if done {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.scanned {
		return
	}
	for name, e := range scanDirs(l.cfg.SearchPath) {
		if _, exists := l.lookup[name]; !exists {
			l.lookup[name] = e
		}
	}
	l.scanned = true
}
