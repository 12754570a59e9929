package vim

import (
	"github.com/dshills/vimlet/internal/engine/textarea"
	"github.com/dshills/vimlet/internal/input/mode"
)

// isOperator reports whether r enters operator-pending mode.
func isOperator(r rune) bool {
	return r == 'y' || r == 'd' || r == 'c'
}

// completeOperator finishes the pending operator against the selection
// that the preceding motion just extended. Yank and delete return to
// normal mode; change enters insert mode with the span removed.
// Outside operator-pending mode it is a no-op.
func (in *Interpreter) completeOperator(buf TextBuffer) Transition {
	switch in.mode.Operator() {
	case 'y':
		buf.Copy()
		NormalizeCursor(buf)
		return ToMode(mode.Normal)
	case 'd':
		buf.Cut()
		NormalizeCursor(buf)
		return ToMode(mode.Normal)
	case 'c':
		buf.Cut()
		return ToMode(mode.Insert)
	default:
		return Nop()
	}
}

// applyLineOperator handles the doubled operator (yy, dd, cc): it
// selects the whole current line and completes the operator on it.
func (in *Interpreter) applyLineOperator(buf TextBuffer) Transition {
	lastLine := selectLine(buf)

	switch in.mode.Operator() {
	case 'y':
		buf.Copy()
		NormalizeCursor(buf)
		return ToMode(mode.Normal)
	case 'd':
		buf.Cut()
		// The last-line selection stops at the line end, so the cut
		// leaves an empty line behind. Merge it into the previous
		// line so the line count drops by one, as on any other row.
		// The sole remaining line of a buffer is kept.
		if lastLine && buf.LineCount() > 1 {
			buf.DeleteCharBefore()
		}
		NormalizeCursor(buf)
		return ToMode(mode.Normal)
	case 'c':
		buf.Cut()
		return ToMode(mode.Insert)
	default:
		return Nop()
	}
}

// selectLine anchors a selection covering the current line. On any row
// but the last the selection ends at the head of the following line,
// so it includes the trailing separator. On the last line, where a
// downward move cannot change the cursor, it ends past the final
// character instead and reports lastLine true.
func selectLine(buf TextBuffer) (lastLine bool) {
	buf.MoveCursor(textarea.MoveLineHead)
	buf.StartSelection()
	before := buf.Cursor()
	buf.MoveCursor(textarea.MoveDown)
	if buf.Cursor() == before {
		buf.MoveCursor(textarea.MoveLineEnd)
		return true
	}
	buf.MoveCursor(textarea.MoveLineHead)
	return false
}
