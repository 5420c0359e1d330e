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
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"seehuhn.de/go/pdfglyph/font"
)

// Environment variables used by [ConfigFromEnv].
const (
	EnvFontPath = "PDFGLYPH_FONT_PATH"
	EnvDisable  = "PDFGLYPH_NO_EXTERNAL_FONTS"
)

// Config controls where a [FontLoader] looks for fonts.
type Config struct {
	// SearchPath lists the directories which are scanned for font files.
	// Sub-directories are included.
	SearchPath []string

	// Disable prevents the loader from finding any fonts.
	Disable bool
}

// ConfigFromEnv returns a configuration based on the environment.
//
// The search path is taken from PDFGLYPH_FONT_PATH, a list of directories
// separated by [os.PathListSeparator].  If this is unset, the default font
// directories of the operating system are used.  If
// PDFGLYPH_NO_EXTERNAL_FONTS is set to a true value, the loader is
// disabled.
func ConfigFromEnv() Config {
	cfg := Config{}

	if path, ok := os.LookupEnv(EnvFontPath); ok {
		cfg.SearchPath = filepath.SplitList(path)
	} else {
		cfg.SearchPath = DefaultSearchPath()
	}

	if val := os.Getenv(EnvDisable); val != "" {
		disable, err := strconv.ParseBool(val)
		if err != nil {
			font.Logger().Warn("loader: invalid value for "+EnvDisable,
				"value", val, "err", err)
		}
		cfg.Disable = disable
	}

	return cfg
}

// DefaultSearchPath returns the font directories of the operating system.
func DefaultSearchPath() []string {
	home, _ := os.UserHomeDir()
	inHome := func(elem ...string) []string {
		if home == "" {
			return nil
		}
		return []string{filepath.Join(append([]string{home}, elem...)...)}
	}

	var res []string
	switch runtime.GOOS {
	case "darwin", "ios":
		res = append(res, "/Library/Fonts", "/System/Library/Fonts")
		res = append(res, inHome("Library", "Fonts")...)
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		res = append(res, filepath.Join(windir, "Fonts"))
	default:
		res = append(res, "/usr/share/fonts", "/usr/local/share/fonts")
		res = append(res, inHome(".fonts")...)
		res = append(res, inHome(".local", "share", "fonts")...)
	}
	return res
}
