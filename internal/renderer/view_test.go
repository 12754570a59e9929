package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/vimlet/internal/engine/textarea"
	"github.com/dshills/vimlet/internal/input/mode"
	"github.com/dshills/vimlet/internal/renderer/backend"
	"github.com/dshills/vimlet/internal/renderer/core"
)

func TestDrawFrameAndTitle(t *testing.T) {
	b := backend.NewNullBackend(60, 6)
	v := NewView(b)
	buf := textarea.FromLines([]string{"hello", "world"})

	v.Draw(buf, mode.Normal)

	top := b.Row(0)
	if !strings.HasPrefix(top, "┌") {
		t.Errorf("top row = %q", top)
	}
	if !strings.Contains(top, "NORMAL MODE (type q to quit, type i to enter insert mode)") {
		t.Errorf("title missing from top row %q", top)
	}
	if got := b.Row(1); !strings.HasPrefix(got, "│hello") || !strings.HasSuffix(got, "│") {
		t.Errorf("Row(1) = %q", got)
	}
	if got := b.Row(2); !strings.HasPrefix(got, "│world") {
		t.Errorf("Row(2) = %q", got)
	}
	if !strings.HasPrefix(b.Row(5), "└") {
		t.Errorf("bottom row = %q", b.Row(5))
	}
	if b.ShowCount() == 0 {
		t.Error("Draw must flush through Show")
	}
}

func TestDrawTitlePerMode(t *testing.T) {
	tests := []struct {
		name string
		m    mode.Mode
		want string
	}{
		{"insert", mode.Insert, "INSERT MODE (type Esc to back to normal mode)"},
		{"visual", mode.Visual, "VISUAL MODE (type y to yank, type d to delete, type Esc to back to normal mode)"},
		{"operator", mode.OperatorPending('d'), "OPERATOR(d) MODE (move cursor to apply operator)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.m); got != tt.want {
				t.Errorf("Title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawCursorPositionAndStyle(t *testing.T) {
	b := backend.NewNullBackend(40, 6)
	v := NewView(b)
	buf := textarea.FromLines([]string{"hello", "world"})
	buf.SetCursor(textarea.Position{Row: 1, Col: 2})

	v.Draw(buf, mode.Normal)

	x, y, visible := b.CursorPosition()
	if !visible || x != 3 || y != 2 {
		t.Errorf("cursor = (%d, %d, %v), want (3, 2, true)", x, y, visible)
	}
	if got := b.CursorStyleValue(); got != backend.CursorStyleBlock {
		t.Errorf("cursor style = %v", got)
	}

	v.Draw(buf, mode.Insert)
	if got := b.CursorStyleValue(); got != backend.CursorStyleBar {
		t.Errorf("insert cursor style = %v", got)
	}

	v.Draw(buf, mode.OperatorPending('y'))
	if got := b.CursorStyleValue(); got != backend.CursorStyleUnderline {
		t.Errorf("operator cursor style = %v", got)
	}
}

func TestDrawCursorAfterWideRunes(t *testing.T) {
	b := backend.NewNullBackend(40, 5)
	v := NewView(b)
	buf := textarea.FromLines([]string{"世界ab"})
	buf.SetCursor(textarea.Position{Row: 0, Col: 2})

	v.Draw(buf, mode.Normal)

	x, y, visible := b.CursorPosition()
	if !visible || x != 5 || y != 1 {
		t.Errorf("cursor = (%d, %d, %v), want (5, 1, true)", x, y, visible)
	}
	if got := b.CellAt(1, 1); got.Rune != '世' || got.Width != 2 {
		t.Errorf("cell(1,1) = %+v", got)
	}
	if !b.CellAt(2, 1).IsContinuation() {
		t.Error("expected continuation cell behind wide rune")
	}
}

func TestDrawSelectionReversed(t *testing.T) {
	b := backend.NewNullBackend(40, 5)
	v := NewView(b)
	buf := textarea.FromLines([]string{"hello"})
	buf.StartSelection()
	buf.SetCursor(textarea.Position{Row: 0, Col: 3})

	v.Draw(buf, mode.Visual)

	for col := 0; col < 5; col++ {
		cell := b.CellAt(1+col, 1)
		reversed := cell.Style.Attributes.Has(core.AttrReverse)
		want := col < 3
		if reversed != want {
			t.Errorf("col %d reversed = %v, want %v", col, reversed, want)
		}
	}
}

func TestDrawScrollsCursorIntoView(t *testing.T) {
	b := backend.NewNullBackend(40, 5)
	v := NewView(b)
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	buf := textarea.FromLines(lines)
	buf.SetCursor(textarea.Position{Row: 10, Col: 0})

	v.Draw(buf, mode.Normal)

	// Inner height is 3, so the viewport must end at row 10.
	if top := buf.ViewportTop(); top != 8 {
		t.Errorf("viewport top = %d, want 8", top)
	}
	_, y, visible := b.CursorPosition()
	if !visible || y != 3 {
		t.Errorf("cursor row = %d (visible %v), want 3", y, visible)
	}
	if got := b.Row(3); !strings.HasPrefix(got, "│"+strings.Repeat("x", 11)+" ") {
		t.Errorf("Row(3) = %q", got)
	}
}

func TestDrawExpandsTabs(t *testing.T) {
	b := backend.NewNullBackend(40, 5)
	v := NewView(b)
	v.SetTabStop(4)
	buf := textarea.FromLines([]string{"a\tb"})

	v.Draw(buf, mode.Normal)

	if got := b.Row(1); !strings.HasPrefix(got, "│a   b ") {
		t.Errorf("Row(1) = %q", got)
	}

	// Cursor on 'b' (rune column 2) lands after the expanded tab.
	buf.SetCursor(textarea.Position{Row: 0, Col: 2})
	v.Draw(buf, mode.Normal)
	x, _, _ := b.CursorPosition()
	if x != 5 {
		t.Errorf("cursor x = %d, want 5", x)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	b := backend.NewNullBackend(2, 1)
	v := NewView(b)
	buf := textarea.FromLines([]string{"hello"})

	// Must not panic or draw outside the screen.
	v.Draw(buf, mode.Normal)
}
