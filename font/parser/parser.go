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

// Package parser implements a bounds-checked reader for binary font data.
package parser

import (
	"fmt"

	"seehuhn.de/go/pdfglyph/font"
)

// Parser reads big-endian binary data from a region of a byte slice.
// All reads are bounds-checked; reading past the end of the current region
// returns an error of type [*font.InvalidFontError].
type Parser struct {
	data      []byte
	tableName string

	start, end int // region boundaries within data
	pos        int // absolute position within data
	lastRead   int
}

// New allocates a new Parser, covering all of data.
func New(tableName string, data []byte) *Parser {
	return &Parser{
		data:      data,
		tableName: tableName,
		end:       len(data),
	}
}

// Size returns the total size of the underlying data.
func (p *Parser) Size() int {
	return len(p.data)
}

// SetRegion restricts reading to data[start:start+length] and moves the
// reading position to the start of the region.
func (p *Parser) SetRegion(tableName string, start, length int) error {
	if start < 0 || length < 0 || start > len(p.data) || length > len(p.data)-start {
		p.lastRead = start
		return p.Error("region %d+%d out of range", start, length)
	}
	p.tableName = tableName
	p.start = start
	p.end = start + length
	p.pos = start
	return nil
}

// Pos returns the current reading position, relative to the start of the
// underlying data.
func (p *Parser) Pos() int {
	return p.pos
}

// SeekPos changes the reading position.  The position is given relative to
// the start of the underlying data and must lie inside the current region.
func (p *Parser) SeekPos(pos int) error {
	if pos < p.start || pos > p.end {
		p.lastRead = pos
		return p.Error("seek to %d outside %d-%d", pos, p.start, p.end)
	}
	p.pos = pos
	return nil
}

// Remaining returns the number of bytes left in the current region.
func (p *Parser) Remaining() int {
	return p.end - p.pos
}

// ReadBytes reads n bytes, starting at the current position.  The returned
// slice points into the underlying data and must not be modified.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	p.lastRead = p.pos
	if n < 0 || n > p.end-p.pos {
		return nil, p.Error("unexpected end of data (need %d bytes)", n)
	}
	res := p.data[p.pos : p.pos+n : p.pos+n]
	p.pos += n
	return res, nil
}

// ReadUInt8 reads a single uint8 value from the current position.
func (p *Parser) ReadUInt8() (uint8, error) {
	buf, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUInt16 reads a single uint16 value from the current position.
func (p *Parser) ReadUInt16() (uint16, error) {
	buf, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// ReadInt16 reads a single int16 value from the current position.
func (p *Parser) ReadInt16() (int16, error) {
	val, err := p.ReadUInt16()
	return int16(val), err
}

// ReadUInt24 reads a three byte unsigned integer from the current position.
func (p *Parser) ReadUInt24() (uint32, error) {
	buf, err := p.ReadBytes(3)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

// ReadUInt32 reads a single uint32 value from the current position.
func (p *Parser) ReadUInt32() (uint32, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// ReadUInt reads an unsigned big-endian integer of the given size (1 to 4
// bytes).
func (p *Parser) ReadUInt(size int) (uint32, error) {
	if size < 1 || size > 4 {
		p.lastRead = p.pos
		return 0, p.Error("invalid integer size %d", size)
	}
	buf, err := p.ReadBytes(size)
	if err != nil {
		return 0, err
	}
	var res uint32
	for _, b := range buf {
		res = res<<8 | uint32(b)
	}
	return res, nil
}

// ReadUInt16Slice reads a length followed by a sequence of uint16 values.
func (p *Parser) ReadUInt16Slice() ([]uint16, error) {
	n, err := p.ReadUInt16()
	if err != nil {
		return nil, err
	}
	buf, err := p.ReadBytes(2 * int(n))
	if err != nil {
		return nil, err
	}
	res := make([]uint16, n)
	for i := range res {
		res[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
	}
	return res, nil
}

// Error returns an error which includes the table name and the position
// of the most recent read.
func (p *Parser) Error(format string, a ...interface{}) error {
	tableName := p.tableName
	if tableName == "" {
		tableName = "header"
	}
	return &font.InvalidFontError{
		SubSystem: fmt.Sprintf("%s%+d", tableName, p.lastRead-p.start),
		Reason:    fmt.Sprintf(format, a...),
	}
}
