package vim

import "github.com/dshills/vimlet/internal/engine/textarea"

// The paste primitive always inserts at the cursor, so placement
// "after" a point is achieved by moving first. Line-wise content lands
// as whole lines relative to the current line; character-wise content
// splices within it.

// pasteBelow implements p: line-wise content goes below the current
// line, character-wise content after the character under the cursor.
func pasteBelow(buf TextBuffer) {
	if buf.Register().Linewise() {
		buf.MoveCursor(textarea.MoveLineEnd)
	} else {
		buf.MoveCursor(textarea.MoveForward)
	}
	buf.Paste()
}

// pasteAbove implements P: line-wise content goes above the current
// line, character-wise content before the character under the cursor.
func pasteAbove(buf TextBuffer) {
	if buf.Register().Linewise() {
		buf.MoveCursor(textarea.MoveLineHead)
	}
	buf.Paste()
}
