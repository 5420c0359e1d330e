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

import (
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfglyph/font/internal/seal"
)

type countingProgram struct {
	seal.Marker

	mu    sync.Mutex
	calls int
}

func (p *countingProgram) Kind() ProgramKind { return ProgramType1 }

func (p *countingProgram) Glyph(code int, name string) *Glyph {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if name == "nil" {
		return nil
	}
	return NewOutlineGlyph(code, name, nil, vec.Vec2{X: 0.5})
}

func TestCache(t *testing.T) {
	prog := &countingProgram{}
	c := NewCache(prog)
	if c.Program() != prog {
		t.Fatal("wrong program")
	}

	a1 := c.Glyph(65, "A")
	a2 := c.Glyph(65, "A")
	if a1 != a2 {
		t.Error("repeated lookup returned a different glyph")
	}
	if c.Glyph(65, "") == a1 {
		t.Error("glyph name not part of the cache key")
	}

	g := c.Glyph(NoCode, "nil")
	if g == nil || g.Kind != KindOutline || !g.Outline.IsEmpty() || g.Name != "nil" {
		t.Errorf("nil glyph not replaced: %+v", g)
	}

	if c.Len() != 3 || c.Misses() != 3 || prog.calls != 3 {
		t.Errorf("len %d, misses %d, calls %d", c.Len(), c.Misses(), prog.calls)
	}
}

func TestCacheConcurrent(t *testing.T) {
	prog := &countingProgram{}
	c := NewCache(prog)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for code := 0; code < 100; code++ {
				c.Glyph(code, "")
			}
		}()
	}
	wg.Wait()

	if prog.calls != 100 {
		t.Errorf("font program called %d times", prog.calls)
	}
}

func TestEmptyGlyph(t *testing.T) {
	g := EmptyGlyph(7, "x")
	if g.Kind != KindOutline || !g.Outline.IsEmpty() || g.Advance != (vec.Vec2{}) {
		t.Errorf("unexpected glyph %+v", g)
	}
	if g.Procedure != nil {
		t.Error("outline glyph with procedure")
	}

	var p *Procedure
	if !p.IsEmpty() {
		t.Error("nil procedure not empty")
	}
}

func TestProgramKind(t *testing.T) {
	if s := ProgramComposite.String(); s != "Composite" {
		t.Errorf("got %q", s)
	}
	if s := ProgramKind(0).String(); s != "unknown" {
		t.Errorf("got %q", s)
	}
}

// TestProgramSealed checks that implementing Program requires a type which
// can only be named inside this package tree.
func TestProgramSealed(t *testing.T) {
	tp := reflect.TypeFor[Program]()
	m, ok := tp.MethodByName("SealedProgram")
	if !ok {
		t.Fatal("Program has no sealing method")
	}
	if m.Type.NumIn() != 1 {
		t.Fatalf("sealing method has %d arguments", m.Type.NumIn())
	}
	pkg := m.Type.In(0).PkgPath()
	if !strings.Contains(pkg, "/internal/") {
		t.Errorf("sealing token is defined in public package %q", pkg)
	}

	var _ Program = (*countingProgram)(nil)
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	buf := &strings.Builder{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("test message", "n", 1)
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("message not logged: %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("nop logger wrote %q", buf.String())
	}
}
