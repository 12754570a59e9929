package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimlet/internal/input/key"
	"github.com/dshills/vimlet/internal/renderer/core"
)

func TestNullBackendCells(t *testing.T) {
	b := NewNullBackend(10, 4)

	b.SetCell(0, 0, core.NewCell('h'))
	b.SetCell(1, 0, core.NewCell('i'))
	if got := b.Row(0); got != "hi" {
		t.Errorf("Row(0) = %q, want %q", got, "hi")
	}

	// Out-of-bounds writes are dropped, not panics.
	b.SetCell(-1, 0, core.NewCell('x'))
	b.SetCell(0, 99, core.NewCell('x'))

	b.Fill(core.RectFromSize(1, 0, 2, 10), core.NewCell('-'))
	if got := b.Row(1); got != "----------" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := b.Row(3); got != "" {
		t.Errorf("Row(3) = %q, want empty", got)
	}

	b.Clear()
	if got := b.Row(1); got != "" {
		t.Errorf("after Clear Row(1) = %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(10, 4)

	b.ShowCursor(3, 2)
	x, y, visible := b.CursorPosition()
	if x != 3 || y != 2 || !visible {
		t.Errorf("cursor = (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor still visible after HideCursor")
	}

	b.SetCursorStyle(CursorStyleBar)
	if got := b.CursorStyleValue(); got != CursorStyleBar {
		t.Errorf("cursor style = %v", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 4)

	b.PostEvent(KeyEvent(key.NewRuneEvent('q', key.ModNone)))
	ev := b.PollEvent()
	if ev.Type != EventKey || !ev.Key.IsPlainRune('q') {
		t.Errorf("event = %+v", ev)
	}

	b.PostEvent(ResizeEvent(80, 24))
	ev = b.PollEvent()
	if ev.Type != EventResize || ev.Width != 80 || ev.Height != 24 {
		t.Errorf("resize event = %+v", ev)
	}

	if err := b.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if ev := b.PollEvent(); ev.Type != EventNone {
		t.Errorf("event after shutdown = %+v", ev)
	}
	// Posting after shutdown must not panic.
	b.PostEvent(KeyEvent(key.NewRuneEvent('x', key.ModNone)))
}

func TestConvertKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		in   *tcell.EventKey
		want key.Event
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone),
			key.NewRuneEvent('j', key.ModNone),
		},
		{
			"escape",
			tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		},
		{
			"enter stays enter despite ctrl-m aliasing",
			tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone),
			key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		},
		{
			"tab stays tab despite ctrl-i aliasing",
			tcell.NewEventKey(tcell.KeyTab, '\t', tcell.ModNone),
			key.NewSpecialEvent(key.KeyTab, key.ModNone),
		},
		{
			"backspace stays backspace despite ctrl-h aliasing",
			tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
		},
		{
			"ctrl-d folds to modified rune",
			tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl),
			key.NewRuneEvent('d', key.ModCtrl),
		},
		{
			"ctrl-r folds to modified rune",
			tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl),
			key.NewRuneEvent('r', key.ModCtrl),
		},
		{
			"arrow key",
			tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyUp, key.ModNone),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertKeyEvent(tt.in)
			if !got.Equals(tt.want) {
				t.Errorf("convertKeyEvent = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConvertModifiers(t *testing.T) {
	got := convertModifiers(tcell.ModShift | tcell.ModCtrl)
	if !got.HasShift() || !got.HasCtrl() || got.HasAlt() {
		t.Errorf("modifiers = %v", got)
	}
}
