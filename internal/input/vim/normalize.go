package vim

import "github.com/dshills/vimlet/internal/engine/textarea"

// NormalizeCursor clamps the cursor to a position legal outside insert
// mode: the row inside the buffer and the column on an existing
// character, with column 0 as the sole legal position on an empty
// line. The buffer is repositioned only when the cursor actually
// changes.
func NormalizeCursor(buf TextBuffer) {
	cur := buf.Cursor()
	row := cur.Row
	if last := buf.LineCount() - 1; row > last {
		row = last
	}
	if row < 0 {
		row = 0
	}

	col := cur.Col
	if n := buf.LineLen(row); n == 0 {
		col = 0
	} else if col > n-1 {
		col = n - 1
	}
	if col < 0 {
		col = 0
	}

	if row != cur.Row || col != cur.Col {
		buf.SetCursor(textarea.Position{Row: row, Col: col})
	}
}
