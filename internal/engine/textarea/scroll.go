package textarea

// Scrolling names a viewport movement.
type Scrolling uint8

const (
	// ScrollLineUp moves the viewport up one line.
	ScrollLineUp Scrolling = iota

	// ScrollLineDown moves the viewport down one line.
	ScrollLineDown

	// ScrollHalfPageUp moves the viewport up half a page.
	ScrollHalfPageUp

	// ScrollHalfPageDown moves the viewport down half a page.
	ScrollHalfPageDown

	// ScrollPageUp moves the viewport up a full page.
	ScrollPageUp

	// ScrollPageDown moves the viewport down a full page.
	ScrollPageDown
)

// String returns the scrolling name.
func (s Scrolling) String() string {
	switch s {
	case ScrollLineUp:
		return "line-up"
	case ScrollLineDown:
		return "line-down"
	case ScrollHalfPageUp:
		return "half-page-up"
	case ScrollHalfPageDown:
		return "half-page-down"
	case ScrollPageUp:
		return "page-up"
	case ScrollPageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// SetViewportHeight tells the buffer how many rows are visible.
// The renderer calls this whenever the screen size changes.
func (t *TextArea) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	t.viewHeight = h
	t.clampViewport()
}

// SetScrollMargin asks the viewport to keep n rows visible above and
// below the cursor when it follows it.
func (t *TextArea) SetScrollMargin(n int) {
	if n < 0 {
		n = 0
	}
	t.scrollMargin = n
}

// ViewportTop returns the first visible row.
func (t *TextArea) ViewportTop() int {
	return t.topRow
}

// Scroll moves the viewport and drags the cursor back into view.
func (t *TextArea) Scroll(s Scrolling) {
	delta := 0
	switch s {
	case ScrollLineUp:
		delta = -1
	case ScrollLineDown:
		delta = 1
	case ScrollHalfPageUp:
		delta = -(t.viewHeight / 2)
	case ScrollHalfPageDown:
		delta = t.viewHeight / 2
	case ScrollPageUp:
		delta = -t.viewHeight
	case ScrollPageDown:
		delta = t.viewHeight
	}
	t.topRow = clamp(t.topRow+delta, 0, len(t.lines)-1)

	// Drag the cursor into the visible window.
	row := clamp(t.cursor.Row, t.topRow, t.topRow+t.viewHeight-1)
	row = clamp(row, 0, len(t.lines)-1)
	if row != t.cursor.Row {
		t.cursor.Row = row
		t.cursor.Col = clamp(t.cursor.Col, 0, len(t.lines[row]))
	}
}

// ScrollCursorIntoView adjusts the viewport so the cursor row is
// visible, honoring the scroll margin where the window allows it.
// The renderer calls this before drawing.
func (t *TextArea) ScrollCursorIntoView() {
	margin := min(t.scrollMargin, (t.viewHeight-1)/2)
	if t.cursor.Row-margin < t.topRow {
		t.topRow = max(0, t.cursor.Row-margin)
	}
	if t.cursor.Row+margin >= t.topRow+t.viewHeight {
		t.topRow = t.cursor.Row + margin - t.viewHeight + 1
	}
	t.clampViewport()
}

func (t *TextArea) clampViewport() {
	t.topRow = clamp(t.topRow, 0, len(t.lines)-1)
}
