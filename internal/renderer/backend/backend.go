// Package backend abstracts the terminal so the renderer can be tested
// without one. Terminal is the production implementation on tcell;
// NullBackend records cells in memory for tests.
package backend

import (
	"github.com/dshills/vimlet/internal/input/key"
	"github.com/dshills/vimlet/internal/renderer/core"
)

// CursorStyle selects the terminal cursor shape.
type CursorStyle uint8

const (
	CursorStyleBlock CursorStyle = iota
	CursorStyleUnderline
	CursorStyleBar
	CursorStyleHidden
)

// String returns a human-readable cursor style name.
func (s CursorStyle) String() string {
	switch s {
	case CursorStyleBlock:
		return "block"
	case CursorStyleUnderline:
		return "underline"
	case CursorStyleBar:
		return "bar"
	case CursorStyleHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// EventType discriminates backend events.
type EventType uint8

const (
	// EventNone is the zero event.
	EventNone EventType = iota

	// EventKey is a key press.
	EventKey

	// EventResize is a terminal size change.
	EventResize

	// EventInterrupt is a wakeup posted to break out of PollEvent.
	EventInterrupt
)

// Event is a terminal event. Key events carry the decoded key event;
// resize events carry the new dimensions.
type Event struct {
	Type   EventType
	Key    key.Event
	Width  int
	Height int
}

// KeyEvent wraps a decoded key press.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// ResizeEvent reports a new terminal size.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Backend is the terminal abstraction the renderer draws through.
type Backend interface {
	// Init prepares the terminal for drawing.
	Init() error

	// Shutdown restores the terminal to its original state.
	Shutdown() error

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// SetCell places a cell at the given position.
	SetCell(x, y int, cell core.Cell)

	// Fill sets every cell in the rectangle to the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear erases the whole screen.
	Clear()

	// Show flushes pending changes to the terminal.
	Show()

	// ShowCursor places the cursor at the given position.
	ShowCursor(x, y int)

	// HideCursor removes the cursor from the screen.
	HideCursor()

	// SetCursorStyle changes the cursor shape.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event. After Shutdown it returns
	// an EventNone event.
	PollEvent() Event

	// PostEvent injects an event into the queue.
	PostEvent(ev Event)
}
