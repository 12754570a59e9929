package textarea

import "unicode"

// CursorMove names a cursor motion.
type CursorMove uint8

const (
	// MoveBack moves one column left, stopping at the line head.
	MoveBack CursorMove = iota

	// MoveForward moves one column right, stopping one past the line end.
	MoveForward

	// MoveUp moves one row up, keeping the column where possible.
	MoveUp

	// MoveDown moves one row down, keeping the column where possible.
	// On the last line the cursor does not move.
	MoveDown

	// MoveWordForward moves to the start of the next word.
	MoveWordForward

	// MoveWordEnd moves to the last character of the next word end.
	MoveWordEnd

	// MoveWordBack moves to the start of the previous word.
	MoveWordBack

	// MoveLineHead moves to column 0.
	MoveLineHead

	// MoveLineEnd moves one past the last character of the line.
	MoveLineEnd

	// MoveTop moves to the first line.
	MoveTop

	// MoveBottom moves to the last line.
	MoveBottom
)

// String returns the motion name.
func (m CursorMove) String() string {
	switch m {
	case MoveBack:
		return "back"
	case MoveForward:
		return "forward"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveWordForward:
		return "word-forward"
	case MoveWordEnd:
		return "word-end"
	case MoveWordBack:
		return "word-back"
	case MoveLineHead:
		return "line-head"
	case MoveLineEnd:
		return "line-end"
	case MoveTop:
		return "top"
	case MoveBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// MoveCursor applies a named motion to the cursor. Motions never fail;
// at a buffer boundary the cursor simply stays put.
func (t *TextArea) MoveCursor(move CursorMove) {
	row, col := t.cursor.Row, t.cursor.Col
	line := t.lines[row]

	switch move {
	case MoveBack:
		if col > 0 {
			t.cursor.Col = col - 1
		}
	case MoveForward:
		if col < len(line) {
			t.cursor.Col = col + 1
		}
	case MoveUp:
		if row > 0 {
			t.cursor.Row = row - 1
			t.cursor.Col = min(col, len(t.lines[row-1]))
		}
	case MoveDown:
		if row+1 < len(t.lines) {
			t.cursor.Row = row + 1
			t.cursor.Col = min(col, len(t.lines[row+1]))
		}
	case MoveWordForward:
		t.cursor = t.wordForward(t.cursor)
	case MoveWordEnd:
		t.cursor = t.wordEnd(t.cursor)
	case MoveWordBack:
		t.cursor = t.wordBack(t.cursor)
	case MoveLineHead:
		t.cursor.Col = 0
	case MoveLineEnd:
		t.cursor.Col = len(line)
	case MoveTop:
		t.cursor.Row = 0
		t.cursor.Col = min(col, len(t.lines[0]))
	case MoveBottom:
		last := len(t.lines) - 1
		t.cursor.Row = last
		t.cursor.Col = min(col, len(t.lines[last]))
	}
}

// Character classes for word motion. A word is a run of letters, digits,
// and underscores, or a run of other non-space punctuation.
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// next advances pos by one character position, crossing line boundaries.
// The end-of-line position counts as a position (it holds the separator).
func (t *TextArea) next(pos Position) (Position, bool) {
	if pos.Col < len(t.lines[pos.Row]) {
		return Position{pos.Row, pos.Col + 1}, true
	}
	if pos.Row+1 < len(t.lines) {
		return Position{pos.Row + 1, 0}, true
	}
	return pos, false
}

// prev steps pos back by one character position, crossing line boundaries.
func (t *TextArea) prev(pos Position) (Position, bool) {
	if pos.Col > 0 {
		return Position{pos.Row, pos.Col - 1}, true
	}
	if pos.Row > 0 {
		return Position{pos.Row - 1, len(t.lines[pos.Row-1])}, true
	}
	return pos, false
}

// classAt returns the class of the character at pos. The end-of-line
// position classifies as space (the separator).
func (t *TextArea) classAt(pos Position) charClass {
	line := t.lines[pos.Row]
	if pos.Col >= len(line) {
		return classSpace
	}
	return classOf(line[pos.Col])
}

func (t *TextArea) wordForward(pos Position) Position {
	start := t.classAt(pos)
	cur := pos
	// Leave the current run.
	for t.classAt(cur) == start && start != classSpace {
		next, ok := t.next(cur)
		if !ok {
			return next
		}
		cur = next
	}
	// Skip whitespace to the next word head.
	for t.classAt(cur) == classSpace {
		next, ok := t.next(cur)
		if !ok {
			return next
		}
		cur = next
	}
	return cur
}

func (t *TextArea) wordEnd(pos Position) Position {
	cur, ok := t.next(pos)
	if !ok {
		return pos
	}
	// Skip whitespace to the next word.
	for t.classAt(cur) == classSpace {
		next, ok := t.next(cur)
		if !ok {
			return cur
		}
		cur = next
	}
	// Advance to the last character of the run.
	run := t.classAt(cur)
	for {
		next, ok := t.next(cur)
		if !ok || t.classAt(next) != run {
			return cur
		}
		cur = next
	}
}

func (t *TextArea) wordBack(pos Position) Position {
	cur, ok := t.prev(pos)
	if !ok {
		return pos
	}
	// Skip whitespace to the previous word.
	for t.classAt(cur) == classSpace {
		prev, ok := t.prev(cur)
		if !ok {
			return cur
		}
		cur = prev
	}
	// Walk to the first character of the run.
	run := t.classAt(cur)
	for {
		prev, ok := t.prev(cur)
		if !ok || t.classAt(prev) != run {
			return cur
		}
		cur = prev
	}
}
