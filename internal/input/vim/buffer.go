package vim

import (
	"github.com/dshills/vimlet/internal/engine/textarea"
	"github.com/dshills/vimlet/internal/input/key"
)

// TextBuffer is the capability the interpreter requires from a text
// buffer. It is satisfied by *textarea.TextArea; tests use a scripted
// fake.
type TextBuffer interface {
	// Cursor state.
	Cursor() textarea.Position
	SetCursor(textarea.Position)
	MoveCursor(textarea.CursorMove)

	// Buffer shape.
	Lines() []string
	LineCount() int
	LineLen(row int) int

	// Selection.
	StartSelection()
	CancelSelection()

	// Register operations.
	Copy()
	Cut() bool
	Paste() bool
	Register() textarea.Register

	// Edits.
	InsertNewline()
	DeleteChar() bool
	DeleteCharBefore() bool
	DeleteToLineEnd() bool
	DeleteToLineStart() bool

	// History.
	Undo() bool
	Redo() bool

	// Viewport.
	Scroll(textarea.Scrolling)

	// Default insert-mode key handling.
	Input(ev key.Event) bool
}

var _ TextBuffer = (*textarea.TextArea)(nil)
