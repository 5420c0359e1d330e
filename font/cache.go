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

import "sync"

// Cache memoizes the glyphs of one font program.
//
// Entries are never evicted; the cache lives as long as the font.  Lookups
// and cache population are serialized, so that every glyph is computed at
// most once.  It is safe to use a Cache concurrently from multiple
// goroutines.
type Cache struct {
	prog Program

	mu     sync.Mutex
	glyphs map[cacheKey]*Glyph
	misses int
}

type cacheKey struct {
	code int
	name string
}

// NewCache returns an empty cache for the given program.
func NewCache(prog Program) *Cache {
	return &Cache{
		prog:   prog,
		glyphs: make(map[cacheKey]*Glyph),
	}
}

// Program returns the font program behind the cache.
func (c *Cache) Program() Program {
	return c.prog
}

// Glyph returns the glyph for the given code and name, computing it
// if needed.  The result is never nil.
func (c *Cache) Glyph(code int, name string) *Glyph {
	key := cacheKey{code: code, name: name}

	c.mu.Lock()
	defer c.mu.Unlock()

	if g, ok := c.glyphs[key]; ok {
		return g
	}

	g := c.prog.Glyph(code, name)
	if g == nil {
		g = EmptyGlyph(code, name)
	}
	c.misses++
	c.glyphs[key] = g
	return g
}

// Len returns the number of cached glyphs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.glyphs)
}

// Misses returns the number of times the font program was invoked.
func (c *Cache) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
