package textarea

// maxHistory bounds the undo stack; the oldest snapshot is dropped
// when the bound is exceeded.
const maxHistory = 100

type snapshot struct {
	lines  [][]rune
	cursor Position
}

func (t *TextArea) takeSnapshot() snapshot {
	lines := make([][]rune, len(t.lines))
	for i, l := range t.lines {
		lines[i] = append([]rune(nil), l...)
	}
	return snapshot{lines: lines, cursor: t.cursor}
}

// beginEdit records the pre-edit state on the undo stack. Every
// text-mutating operation calls it exactly once before changing lines.
// New edits invalidate the redo stack.
func (t *TextArea) beginEdit() {
	t.undo = append(t.undo, t.takeSnapshot())
	if len(t.undo) > maxHistory {
		t.undo = t.undo[1:]
	}
	t.redo = nil
}

func (t *TextArea) restore(s snapshot) {
	t.lines = s.lines
	t.cursor = s.cursor
	t.anchor = nil
	t.clampViewport()
}

// Undo reverts one edit. It returns false when there is nothing to undo.
func (t *TextArea) Undo() bool {
	if len(t.undo) == 0 {
		return false
	}
	t.redo = append(t.redo, t.takeSnapshot())
	s := t.undo[len(t.undo)-1]
	t.undo = t.undo[:len(t.undo)-1]
	t.restore(s)
	return true
}

// Redo reapplies one undone edit. It returns false when there is
// nothing to redo.
func (t *TextArea) Redo() bool {
	if len(t.redo) == 0 {
		return false
	}
	t.undo = append(t.undo, t.takeSnapshot())
	s := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]
	t.restore(s)
	return true
}
