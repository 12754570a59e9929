package textarea

import (
	"strings"

	"github.com/dshills/vimlet/internal/input/key"
)

// InsertRune inserts a single character at the cursor and advances it.
func (t *TextArea) InsertRune(r rune) {
	t.beginEdit()
	line := t.lines[t.cursor.Row]
	col := clamp(t.cursor.Col, 0, len(line))
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:col]...)
	out = append(out, r)
	out = append(out, line[col:]...)
	t.lines[t.cursor.Row] = out
	t.cursor.Col = col + 1
}

// InsertString inserts text at the cursor. Line separators in the text
// split the current line. The cursor ends after the inserted text.
func (t *TextArea) InsertString(text string) {
	if text == "" {
		return
	}
	t.beginEdit()
	t.spliceAtCursor(text)
}

// spliceAtCursor performs the raw insertion without touching history.
func (t *TextArea) spliceAtCursor(text string) {
	parts := strings.Split(text, "\n")
	line := t.lines[t.cursor.Row]
	col := clamp(t.cursor.Col, 0, len(line))
	head := append([]rune(nil), line[:col]...)
	tail := append([]rune(nil), line[col:]...)

	if len(parts) == 1 {
		merged := append(head, []rune(parts[0])...)
		t.lines[t.cursor.Row] = append(merged, tail...)
		t.cursor.Col = col + len([]rune(parts[0]))
		return
	}

	block := make([][]rune, len(parts))
	block[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts)-1; i++ {
		block[i] = []rune(parts[i])
	}
	lastLen := len([]rune(parts[len(parts)-1]))
	block[len(parts)-1] = append([]rune(parts[len(parts)-1]), tail...)

	out := make([][]rune, 0, len(t.lines)+len(block)-1)
	out = append(out, t.lines[:t.cursor.Row]...)
	out = append(out, block...)
	out = append(out, t.lines[t.cursor.Row+1:]...)
	t.lines = out
	t.cursor = Position{t.cursor.Row + len(parts) - 1, lastLen}
}

// InsertNewline splits the current line at the cursor.
func (t *TextArea) InsertNewline() {
	t.beginEdit()
	t.spliceAtCursor("\n")
}

// DeleteChar deletes the character under the cursor. At the end of a
// line it merges the following line instead. Returns true on change.
func (t *TextArea) DeleteChar() bool {
	row, col := t.cursor.Row, t.cursor.Col
	line := t.lines[row]
	if col < len(line) {
		t.beginEdit()
		t.lines[row] = append(line[:col:col], line[col+1:]...)
		return true
	}
	if row+1 < len(t.lines) {
		t.beginEdit()
		t.lines[row] = append(line[:len(line):len(line)], t.lines[row+1]...)
		t.lines = append(t.lines[:row+1], t.lines[row+2:]...)
		return true
	}
	return false
}

// DeleteCharBefore deletes the character before the cursor. At column 0
// it merges the current line into the previous one. Returns true on
// change.
func (t *TextArea) DeleteCharBefore() bool {
	row, col := t.cursor.Row, t.cursor.Col
	if col > 0 {
		t.beginEdit()
		line := t.lines[row]
		t.lines[row] = append(line[:col-1:col-1], line[col:]...)
		t.cursor.Col = col - 1
		return true
	}
	if row > 0 {
		t.beginEdit()
		prev := t.lines[row-1]
		t.cursor = Position{row - 1, len(prev)}
		t.lines[row-1] = append(prev[:len(prev):len(prev)], t.lines[row]...)
		t.lines = append(t.lines[:row], t.lines[row+1:]...)
		return true
	}
	return false
}

// DeleteToLineEnd removes from the cursor to the end of the line,
// capturing the removed text in the register. At the end of a line it
// merges the following line instead. Returns true on change.
func (t *TextArea) DeleteToLineEnd() bool {
	row, col := t.cursor.Row, t.cursor.Col
	line := t.lines[row]
	if col < len(line) {
		t.beginEdit()
		t.register.Set(string(line[col:]))
		t.lines[row] = line[:col:col]
		return true
	}
	return t.DeleteChar()
}

// DeleteToLineStart removes from the start of the line to the cursor,
// capturing the removed text in the register. Returns true on change.
func (t *TextArea) DeleteToLineStart() bool {
	row, col := t.cursor.Row, t.cursor.Col
	if col == 0 {
		return false
	}
	t.beginEdit()
	line := t.lines[row]
	t.register.Set(string(line[:col]))
	t.lines[row] = append([]rune(nil), line[col:]...)
	t.cursor.Col = 0
	return true
}

// Paste inserts the register content at the cursor.
//
// Character-wise content splices into the current line, the cursor
// landing on the last pasted character. Line-wise content becomes a
// block of whole lines (a trailing separator contributes no empty
// line), inserted above the current line when the cursor is at column
// 0 and below it otherwise; the cursor moves to the head of the first
// pasted line.
func (t *TextArea) Paste() bool {
	content := t.register.Text()
	if content == "" {
		return false
	}
	t.beginEdit()

	if !t.register.Linewise() {
		col := t.cursor.Col
		t.spliceAtCursor(content)
		t.cursor.Col = col + len([]rune(content)) - 1
		return true
	}

	parts := strings.Split(content, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	block := make([][]rune, len(parts))
	for i, p := range parts {
		block[i] = []rune(p)
	}
	at := t.cursor.Row
	if t.cursor.Col != 0 {
		at++
	}
	out := make([][]rune, 0, len(t.lines)+len(block))
	out = append(out, t.lines[:at]...)
	out = append(out, block...)
	out = append(out, t.lines[at:]...)
	t.lines = out
	t.cursor = Position{at, 0}
	return true
}

// Input applies default insert-mode handling for a key event:
// printable characters, Enter, Tab, Backspace, Delete, arrow and
// navigation keys, and the usual control-key line edits. It returns
// true if the event was consumed.
func (t *TextArea) Input(ev key.Event) bool {
	if ev.Modifiers.HasCtrl() && ev.IsRune() {
		switch ev.Rune {
		case 'a':
			t.MoveCursor(MoveLineHead)
		case 'e':
			t.MoveCursor(MoveLineEnd)
		case 'h':
			t.DeleteCharBefore()
		case 'd':
			t.DeleteChar()
		case 'k':
			t.DeleteToLineEnd()
		case 'u':
			t.DeleteToLineStart()
		default:
			return false
		}
		return true
	}

	switch {
	case ev.IsChar() && !ev.IsModified():
		t.InsertRune(ev.Rune)
	case ev.IsEnter():
		t.InsertNewline()
	case ev.Key == key.KeyTab:
		t.InsertRune('\t')
	case ev.Key == key.KeyBackspace:
		t.DeleteCharBefore()
	case ev.Key == key.KeyDelete:
		t.DeleteChar()
	case ev.Key == key.KeyLeft:
		t.MoveCursor(MoveBack)
	case ev.Key == key.KeyRight:
		t.MoveCursor(MoveForward)
	case ev.Key == key.KeyUp:
		t.MoveCursor(MoveUp)
	case ev.Key == key.KeyDown:
		t.MoveCursor(MoveDown)
	case ev.Key == key.KeyHome:
		t.MoveCursor(MoveLineHead)
	case ev.Key == key.KeyEnd:
		t.MoveCursor(MoveLineEnd)
	default:
		return false
	}
	return true
}
