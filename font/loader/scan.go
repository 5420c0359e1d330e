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

package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/pdfglyph/font"
)

// maxFontFileSize limits the size of font files read during a scan.
const maxFontFileSize = 64 << 20

// scanDirs walks the given directories and returns the sfnt font files
// found there, keyed by PostScript name.  Where several files have the same
// PostScript name, the first one found is used.
func scanDirs(dirs []string) map[string]*entry {
	res := make(map[string]*entry)
	buf := &sfnt.Buffer{}

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != dir {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}

			name, err := postScriptName(path, buf)
			if err != nil {
				font.Logger().Debug("loader: skipping font file",
					"file", path, "err", err)
				return nil
			}
			if _, seen := res[name]; !seen {
				res[name] = &entry{fontType: FontTypeSfnt, fname: path}
			}
			return nil
		})
		if err != nil {
			font.Logger().Debug("loader: cannot scan directory",
				"dir", dir, "err", err)
		}
	}
	return res
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc":
		return true
	default:
		return false
	}
}

// postScriptName reads the PostScript name of a font file.
// For font collections, the first font is used.
func postScriptName(path string, buf *sfnt.Buffer) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxFontFileSize {
		return "", &font.NotSupportedError{
			SubSystem: "loader",
			Feature:   "font files larger than 64MiB",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var f *sfnt.Font
	if strings.HasPrefix(string(data[:min(len(data), 4)]), "ttcf") {
		c, err := sfnt.ParseCollection(data)
		if err != nil {
			return "", err
		}
		f, err = c.Font(0)
		if err != nil {
			return "", err
		}
	} else {
		f, err = sfnt.Parse(data)
		if err != nil {
			return "", err
		}
	}

	name, err := f.Name(buf, sfnt.NameIDPostScript)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", &font.InvalidFontError{
			SubSystem: "loader",
			Reason:    "empty PostScript name",
		}
	}
	return name, nil
}
