package backend

import (
	"sync"

	"github.com/dshills/vimlet/internal/renderer/core"
)

// NullBackend is an in-memory Backend for tests. It records cells and
// cursor state and delivers events posted through PostEvent.
type NullBackend struct {
	mu       sync.Mutex
	width    int
	height   int
	cells    [][]core.Cell
	cursorX  int
	cursorY  int
	cursorOn bool
	style    CursorStyle
	shows    int
	events   chan Event
	closed   bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	b.reset()
	return b
}

func (b *NullBackend) reset() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

// Init implements Backend.
func (b *NullBackend) Init() error { return nil }

// Shutdown implements Backend. It closes the event queue so PollEvent
// unblocks.
func (b *NullBackend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
	return nil
}

// Size implements Backend.
func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// SetCell implements Backend. Out-of-bounds writes are dropped.
func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return
	}
	b.cells[y][x] = cell
}

// Fill implements Backend.
func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y := max(rect.Top, 0); y < min(rect.Bottom, b.height); y++ {
		for x := max(rect.Left, 0); x < min(rect.Right, b.width); x++ {
			b.cells[y][x] = cell
		}
	}
}

// Clear implements Backend.
func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

// Show implements Backend.
func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

// ShowCursor implements Backend.
func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY = x, y
	b.cursorOn = true
}

// HideCursor implements Backend.
func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorOn = false
}

// SetCursorStyle implements Backend.
func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.style = style
}

// PollEvent implements Backend.
func (b *NullBackend) PollEvent() Event {
	ev, ok := <-b.events
	if !ok {
		return Event{}
	}
	return ev
}

// PostEvent implements Backend. Posting after Shutdown is a no-op.
func (b *NullBackend) PostEvent(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.events <- ev
}

// Resize changes the recorded size and clears the cell grid. Tests use
// it together with PostEvent(ResizeEvent(...)).
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
	b.reset()
}

// CellAt returns the recorded cell at the given position.
func (b *NullBackend) CellAt(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return core.Cell{}
	}
	return b.cells[y][x]
}

// Row returns the text of screen row y, with trailing spaces trimmed.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.IsContinuation() {
			continue
		}
		runes = append(runes, c.Rune)
	}
	for len(runes) > 0 && runes[len(runes)-1] == ' ' {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// CursorPosition returns the cursor position and visibility.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorOn
}

// CursorStyleValue returns the last style set through SetCursorStyle.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.style
}

// ShowCount returns how many times Show has been called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

var _ Backend = (*NullBackend)(nil)
