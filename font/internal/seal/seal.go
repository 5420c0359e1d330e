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

// Package seal restricts the implementations of font.Program to the
// packages of this module.
//
// Since this package is internal, [Token] cannot be named outside of the
// font package tree, and so no other package can declare the method
// required by [Program].
package seal

// Token is the argument type of the sealing method.
type Token struct{}

// Program is embedded in the font.Program interface.
type Program interface {
	SealedProgram(Token)
}

// Marker must be embedded in all font.Program implementations.
type Marker struct{}

// SealedProgram implements the [Program] interface.
func (Marker) SealedProgram(Token) {}
