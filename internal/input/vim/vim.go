package vim

import (
	"github.com/dshills/vimlet/internal/engine/textarea"
	"github.com/dshills/vimlet/internal/input/key"
	"github.com/dshills/vimlet/internal/input/mode"
)

// Interpreter is the modal command state machine. It starts in normal
// mode with an empty pending slot and is driven one key event at a
// time. It is not safe for concurrent use; the host loop owns it.
type Interpreter struct {
	mode    mode.Mode
	pending pendingKey
}

// New creates an interpreter in normal mode.
func New() *Interpreter {
	return &Interpreter{mode: mode.Normal}
}

// Mode returns the current mode.
func (in *Interpreter) Mode() mode.Mode {
	return in.mode
}

// Handle processes one key event against the buffer and returns the
// resulting transition. Mode changes and the pending slot are applied
// internally before Handle returns.
func (in *Interpreter) Handle(ev key.Event, buf TextBuffer) Transition {
	if ev.IsZero() {
		return Nop()
	}

	if in.mode.IsInsert() {
		return in.insertTransition(ev, buf)
	}

	// The pending key never survives the event: it is either matched
	// by this key or discarded, and only an unmatched key re-arms it.
	pending := in.pending
	in.pending.clear()

	tr, handled := in.dispatch(ev, pending, buf)
	if !handled {
		// A motion completed while an operator was pending.
		tr = in.completeOperator(buf)
	}

	switch tr.Kind {
	case KindMode:
		in.mode = tr.Mode
	case KindPending:
		in.pending.set(tr.Pending)
	}
	return tr
}

// insertTransition applies insert-mode handling: Escape (or its
// control-code equivalent) returns to normal mode, everything else
// goes to the buffer's default input handling.
func (in *Interpreter) insertTransition(ev key.Event, buf TextBuffer) Transition {
	if ev.IsEscape() || ev.IsCtrlRune('c') {
		in.mode = mode.Normal
		NormalizeCursor(buf)
		return ToMode(mode.Normal)
	}
	buf.Input(ev)
	return ToMode(mode.Insert)
}

// dispatch matches one key against the command table shared by normal,
// visual, and operator-pending modes. handled is false when the key
// was a motion (or scroll) that must fall through to operator
// completion.
func (in *Interpreter) dispatch(ev key.Event, pending pendingKey, buf TextBuffer) (tr Transition, handled bool) {
	if ev.IsEscape() {
		if in.mode.IsVisual() || in.mode.IsOperatorPending() {
			buf.CancelSelection()
			return ToMode(mode.Normal), true
		}
		return Nop(), true
	}
	if !ev.IsRune() {
		return Defer(ev), true
	}

	r := ev.Rune
	ctrl := ev.Modifiers.HasCtrl()

	// Doubled operator selects the whole line; no motion follows.
	if !ctrl && in.mode.IsOperatorPending() && r == in.mode.Operator() {
		return in.applyLineOperator(buf), true
	}

	// Motions and scrolls fall through to operator completion.
	switch {
	case r == 'h' && !ctrl:
		buf.MoveCursor(textarea.MoveBack)
	case r == 'j' && !ctrl:
		buf.MoveCursor(textarea.MoveDown)
	case r == 'k' && !ctrl:
		buf.MoveCursor(textarea.MoveUp)
	case r == 'l' && !ctrl:
		buf.MoveCursor(textarea.MoveForward)
	case r == 'w' && !ctrl:
		buf.MoveCursor(textarea.MoveWordForward)
	case r == 'e' && !ctrl:
		buf.MoveCursor(textarea.MoveWordEnd)
		if in.mode.IsOperatorPending() {
			// Include the character under the cursor in the span.
			buf.MoveCursor(textarea.MoveForward)
		}
	case r == 'b' && !ctrl:
		buf.MoveCursor(textarea.MoveWordBack)
	case r == '^':
		buf.MoveCursor(textarea.MoveLineHead)
	case r == '$':
		buf.MoveCursor(textarea.MoveLineEnd)
	case r == 'g' && !ctrl && pending.is('g'):
		buf.MoveCursor(textarea.MoveTop)
	case r == 'G' && !ctrl:
		buf.MoveCursor(textarea.MoveBottom)
	case r == 'e' && ctrl:
		buf.Scroll(textarea.ScrollLineDown)
	case r == 'y' && ctrl:
		buf.Scroll(textarea.ScrollLineUp)
	case r == 'd' && ctrl:
		buf.Scroll(textarea.ScrollHalfPageDown)
	case r == 'u' && ctrl:
		buf.Scroll(textarea.ScrollHalfPageUp)
	case r == 'f' && ctrl:
		buf.Scroll(textarea.ScrollPageDown)
	case r == 'b' && ctrl:
		buf.Scroll(textarea.ScrollPageUp)
	default:
		return in.dispatchAction(ev, buf)
	}

	NormalizeCursor(buf)
	return Transition{}, false
}

// dispatchAction matches the non-motion commands. Every branch
// completes a command; the fallback parks the key as pending.
func (in *Interpreter) dispatchAction(ev key.Event, buf TextBuffer) (Transition, bool) {
	r := ev.Rune
	ctrl := ev.Modifiers.HasCtrl()

	switch {
	case r == 'D':
		buf.DeleteToLineEnd()
		NormalizeCursor(buf)
		return ToMode(mode.Normal), true

	case r == 'C':
		buf.DeleteToLineEnd()
		buf.CancelSelection()
		return ToMode(mode.Insert), true

	case r == 'p' && !ctrl:
		pasteBelow(buf)
		NormalizeCursor(buf)
		return ToMode(mode.Normal), true

	case r == 'P' && !ctrl:
		pasteAbove(buf)
		NormalizeCursor(buf)
		return ToMode(mode.Normal), true

	case r == 'u' && !ctrl:
		buf.Undo()
		NormalizeCursor(buf)
		return ToMode(mode.Normal), true

	case r == 'r' && ctrl:
		buf.Redo()
		NormalizeCursor(buf)
		return ToMode(mode.Normal), true

	case r == 'x' && !ctrl:
		buf.DeleteChar()
		NormalizeCursor(buf)
		return ToMode(mode.Normal), true

	case r == 'i' && !ctrl:
		buf.CancelSelection()
		return ToMode(mode.Insert), true

	case r == 'a' && !ctrl:
		buf.CancelSelection()
		buf.MoveCursor(textarea.MoveForward)
		return ToMode(mode.Insert), true

	case r == 'A' && !ctrl:
		buf.CancelSelection()
		buf.MoveCursor(textarea.MoveLineEnd)
		return ToMode(mode.Insert), true

	case r == 'I' && !ctrl:
		buf.CancelSelection()
		buf.MoveCursor(textarea.MoveLineHead)
		return ToMode(mode.Insert), true

	case r == 'o' && !ctrl:
		buf.MoveCursor(textarea.MoveLineEnd)
		buf.InsertNewline()
		return ToMode(mode.Insert), true

	case r == 'O' && !ctrl:
		buf.MoveCursor(textarea.MoveLineHead)
		buf.InsertNewline()
		buf.MoveCursor(textarea.MoveUp)
		return ToMode(mode.Insert), true

	case r == 'q' && !ctrl && in.mode.IsNormal():
		return Quit(), true

	case r == 'v' && !ctrl && in.mode.IsNormal():
		buf.StartSelection()
		return ToMode(mode.Visual), true

	case r == 'V' && !ctrl && in.mode.IsNormal():
		buf.MoveCursor(textarea.MoveLineHead)
		buf.StartSelection()
		buf.MoveCursor(textarea.MoveLineEnd)
		return ToMode(mode.Visual), true

	case r == 'v' && !ctrl && in.mode.IsVisual():
		buf.CancelSelection()
		return ToMode(mode.Normal), true

	case isOperator(r) && !ctrl && in.mode.IsNormal():
		buf.StartSelection()
		return ToMode(mode.OperatorPending(r)), true

	case r == 'y' && !ctrl && in.mode.IsVisual():
		buf.Copy()
		return ToMode(mode.Normal), true

	case r == 'd' && !ctrl && in.mode.IsVisual():
		buf.Cut()
		return ToMode(mode.Normal), true

	case r == 'c' && !ctrl && in.mode.IsVisual():
		buf.Cut()
		return ToMode(mode.Insert), true

	default:
		return Defer(ev), true
	}
}
