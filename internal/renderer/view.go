package renderer

import (
	"github.com/dshills/vimlet/internal/engine/textarea"
	"github.com/dshills/vimlet/internal/input/mode"
	"github.com/dshills/vimlet/internal/renderer/backend"
	"github.com/dshills/vimlet/internal/renderer/core"
)

// Border runes for the frame.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// View renders a text buffer into a backend. The frame border carries
// the mode title; the inner region shows the buffer from its viewport
// top with the selection in reverse video.
type View struct {
	b           backend.Backend
	tabStop     int
	borderStyle core.Style
	textStyle   core.Style
	selectStyle core.Style
}

// NewView creates a view drawing into the given backend.
func NewView(b backend.Backend) *View {
	return &View{
		b:           b,
		tabStop:     4,
		borderStyle: core.DefaultStyle().Dim(),
		textStyle:   core.DefaultStyle(),
		selectStyle: core.DefaultStyle().Reverse(),
	}
}

// SetTabStop sets the column interval tabs expand to.
func (v *View) SetTabStop(n int) {
	if n < 1 {
		n = 1
	}
	v.tabStop = n
}

// Draw renders one frame: it sizes the buffer viewport to the inner
// region, scrolls the cursor into view, and paints frame, text,
// selection, and cursor.
func (v *View) Draw(buf *textarea.TextArea, m mode.Mode) {
	width, height := v.b.Size()
	v.b.Clear()
	if width < 3 || height < 3 {
		v.b.Show()
		return
	}

	inner := core.RectFromSize(0, 0, height, width).Inset(1)
	buf.SetViewportHeight(inner.Height())
	buf.ScrollCursorIntoView()

	v.drawFrame(width, height, m)
	v.drawText(buf, inner)
	v.drawCursor(buf, inner, m)
	v.b.Show()
}

// Title returns the frame title for the given mode.
func Title(m mode.Mode) string {
	return m.DisplayName() + " MODE (" + m.HelpText() + ")"
}

func (v *View) drawFrame(width, height int, m mode.Mode) {
	for x := 1; x < width-1; x++ {
		v.b.SetCell(x, 0, core.NewStyledCell(borderHorizontal, v.borderStyle))
		v.b.SetCell(x, height-1, core.NewStyledCell(borderHorizontal, v.borderStyle))
	}
	for y := 1; y < height-1; y++ {
		v.b.SetCell(0, y, core.NewStyledCell(borderVertical, v.borderStyle))
		v.b.SetCell(width-1, y, core.NewStyledCell(borderVertical, v.borderStyle))
	}
	v.b.SetCell(0, 0, core.NewStyledCell(borderTopLeft, v.borderStyle))
	v.b.SetCell(width-1, 0, core.NewStyledCell(borderTopRight, v.borderStyle))
	v.b.SetCell(0, height-1, core.NewStyledCell(borderBottomLeft, v.borderStyle))
	v.b.SetCell(width-1, height-1, core.NewStyledCell(borderBottomRight, v.borderStyle))

	title := " " + Title(m) + " "
	x := 1
	for _, cell := range core.CellsFromString(title, v.textStyle.Bold()) {
		if x >= width-1 {
			break
		}
		v.b.SetCell(x, 0, cell)
		x++
	}
}

func (v *View) drawText(buf *textarea.TextArea, inner core.ScreenRect) {
	top := buf.ViewportTop()
	selStart, selEnd, hasSel := buf.SelectionRange()

	for screenRow := 0; screenRow < inner.Height(); screenRow++ {
		row := top + screenRow
		if row >= buf.LineCount() {
			break
		}
		y := inner.Top + screenRow
		x := inner.Left
		for col, r := range []rune(buf.Line(row)) {
			style := v.textStyle
			if hasSel && inSelection(textarea.Position{Row: row, Col: col}, selStart, selEnd) {
				style = v.selectStyle
			}
			if r == '\t' {
				stop := x + v.tabWidthAt(x-inner.Left)
				for ; x < stop && x < inner.Right; x++ {
					v.b.SetCell(x, y, core.Cell{Rune: ' ', Width: 1, Style: style})
				}
				continue
			}
			w := core.RuneWidth(r)
			if x+w > inner.Right {
				break
			}
			v.b.SetCell(x, y, core.Cell{Rune: r, Width: w, Style: style})
			if w == 2 {
				v.b.SetCell(x+1, y, core.ContinuationCell())
			}
			x += w
		}
	}
}

func (v *View) drawCursor(buf *textarea.TextArea, inner core.ScreenRect, m mode.Mode) {
	cur := buf.Cursor()
	screenRow := cur.Row - buf.ViewportTop()
	if screenRow < 0 || screenRow >= inner.Height() {
		v.b.HideCursor()
		return
	}

	x := inner.Left
	line := []rune(buf.Line(cur.Row))
	for col := 0; col < cur.Col && col < len(line); col++ {
		if line[col] == '\t' {
			x += v.tabWidthAt(x - inner.Left)
			continue
		}
		x += core.RuneWidth(line[col])
	}
	if x >= inner.Right {
		x = inner.Right - 1
	}

	v.b.SetCursorStyle(convertCursorStyle(m.CursorStyle()))
	v.b.ShowCursor(x, inner.Top+screenRow)
}

// tabWidthAt returns the cell count from inner column c to the next
// tab stop.
func (v *View) tabWidthAt(c int) int {
	return v.tabStop - c%v.tabStop
}

// inSelection reports whether p falls in [start, end).
func inSelection(p, start, end textarea.Position) bool {
	return !p.Less(start) && p.Less(end)
}

func convertCursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorStyleBar
	case mode.CursorUnderline:
		return backend.CursorStyleUnderline
	case mode.CursorHidden:
		return backend.CursorStyleHidden
	default:
		return backend.CursorStyleBlock
	}
}
