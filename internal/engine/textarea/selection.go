package textarea

import "strings"

// StartSelection anchors a selection at the current cursor position.
// An existing anchor is replaced.
func (t *TextArea) StartSelection() {
	anchor := t.cursor
	t.anchor = &anchor
}

// CancelSelection drops the selection anchor.
func (t *TextArea) CancelSelection() {
	t.anchor = nil
}

// HasSelection reports whether a selection anchor is active.
func (t *TextArea) HasSelection() bool {
	return t.anchor != nil
}

// SelectionRange returns the selected range in document order.
// The end position is exclusive. ok is false when nothing is selected.
func (t *TextArea) SelectionRange() (start, end Position, ok bool) {
	if t.anchor == nil {
		return Position{}, Position{}, false
	}
	start, end = *t.anchor, t.cursor
	if end.Less(start) {
		start, end = end, start
	}
	return start, end, true
}

// Copy captures the selected text into the register, cancels the
// selection, and moves the cursor to the selection start.
// Without a selection it does nothing.
func (t *TextArea) Copy() {
	start, end, ok := t.SelectionRange()
	if !ok {
		return
	}
	t.register.Set(t.textBetween(start, end))
	t.anchor = nil
	t.cursor = start
}

// Cut captures the selected text into the register and deletes it from
// the buffer, leaving the cursor at the selection start. It returns
// true if the buffer was modified.
func (t *TextArea) Cut() bool {
	start, end, ok := t.SelectionRange()
	if !ok {
		return false
	}
	t.anchor = nil
	if start == end {
		t.cursor = start
		return false
	}
	t.beginEdit()
	t.register.Set(t.textBetween(start, end))
	t.deleteRange(start, end)
	return true
}

// textBetween extracts the text in [start, end) with line separators
// between rows.
func (t *TextArea) textBetween(start, end Position) string {
	if start.Row == end.Row {
		line := t.lines[start.Row]
		return string(line[clamp(start.Col, 0, len(line)):clamp(end.Col, 0, len(line))])
	}
	var b strings.Builder
	first := t.lines[start.Row]
	b.WriteString(string(first[clamp(start.Col, 0, len(first)):]))
	for row := start.Row + 1; row < end.Row; row++ {
		b.WriteByte('\n')
		b.WriteString(string(t.lines[row]))
	}
	last := t.lines[end.Row]
	b.WriteByte('\n')
	b.WriteString(string(last[:clamp(end.Col, 0, len(last))]))
	return b.String()
}

// deleteRange removes [start, end) from the buffer and puts the cursor
// at start. Crossing a row boundary merges the surrounding lines.
func (t *TextArea) deleteRange(start, end Position) {
	if start.Row == end.Row {
		line := t.lines[start.Row]
		sc := clamp(start.Col, 0, len(line))
		ec := clamp(end.Col, 0, len(line))
		t.lines[start.Row] = append(line[:sc:sc], line[ec:]...)
	} else {
		first := t.lines[start.Row]
		last := t.lines[end.Row]
		sc := clamp(start.Col, 0, len(first))
		ec := clamp(end.Col, 0, len(last))
		merged := append(first[:sc:sc], last[ec:]...)
		t.lines[start.Row] = merged
		t.lines = append(t.lines[:start.Row+1], t.lines[end.Row+1:]...)
	}
	t.cursor = start
}
