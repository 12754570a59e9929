package textarea

import (
	"strings"
)

// Position is a cursor location: 0-indexed row and rune column.
type Position struct {
	Row int
	Col int
}

// Less reports whether p comes before other in document order.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// TextArea is an editable text buffer with cursor, selection, yank
// register, history, and a scrollable viewport.
type TextArea struct {
	lines    [][]rune
	cursor   Position
	anchor   *Position
	register Register

	undo []snapshot
	redo []snapshot

	topRow       int
	viewHeight   int
	scrollMargin int
}

// New creates an empty text area containing a single empty line.
func New() *TextArea {
	return FromLines(nil)
}

// FromLines creates a text area from the given lines.
// A nil or empty slice yields a single empty line.
func FromLines(lines []string) *TextArea {
	t := &TextArea{viewHeight: 24}
	if len(lines) == 0 {
		t.lines = [][]rune{{}}
		return t
	}
	t.lines = make([][]rune, len(lines))
	for i, l := range lines {
		t.lines[i] = []rune(l)
	}
	return t
}

// FromText creates a text area by splitting text on line separators.
func FromText(text string) *TextArea {
	return FromLines(strings.Split(text, "\n"))
}

// Lines returns the buffer content as an ordered slice of lines.
func (t *TextArea) Lines() []string {
	out := make([]string, len(t.lines))
	for i, l := range t.lines {
		out[i] = string(l)
	}
	return out
}

// String returns the buffer content joined with line separators.
func (t *TextArea) String() string {
	return strings.Join(t.Lines(), "\n")
}

// LineCount returns the number of lines. It is always at least 1.
func (t *TextArea) LineCount() int {
	return len(t.lines)
}

// Line returns the text of the given line, or "" if out of range.
func (t *TextArea) Line(row int) string {
	if row < 0 || row >= len(t.lines) {
		return ""
	}
	return string(t.lines[row])
}

// LineLen returns the rune count of the given line, or 0 if out of range.
func (t *TextArea) LineLen(row int) int {
	if row < 0 || row >= len(t.lines) {
		return 0
	}
	return len(t.lines[row])
}

// Cursor returns the current cursor position.
func (t *TextArea) Cursor() Position {
	return t.cursor
}

// SetCursor repositions the cursor, clamping it into the buffer.
// The column may rest one past the end of the line.
func (t *TextArea) SetCursor(pos Position) {
	pos.Row = clamp(pos.Row, 0, len(t.lines)-1)
	pos.Col = clamp(pos.Col, 0, len(t.lines[pos.Row]))
	t.cursor = pos
}

// Register returns the current yank register.
func (t *TextArea) Register() Register {
	return t.register
}

// SetRegisterText replaces the yank register content.
func (t *TextArea) SetRegisterText(text string) {
	t.register.Set(text)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
