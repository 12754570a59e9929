package mode

// Mode identifies how key events are interpreted.
// Modes are plain comparable values; an operator-pending mode carries
// the operator key that is waiting for its motion.
type Mode struct {
	kind     kind
	operator rune
}

type kind uint8

const (
	kindNormal kind = iota
	kindInsert
	kindVisual
	kindOperatorPending
)

// The three stateless modes.
var (
	Normal = Mode{kind: kindNormal}
	Insert = Mode{kind: kindInsert}
	Visual = Mode{kind: kindVisual}
)

// OperatorPending returns the mode that waits for a motion to complete
// the given operator ('y', 'd', or 'c').
func OperatorPending(op rune) Mode {
	return Mode{kind: kindOperatorPending, operator: op}
}

// IsNormal returns true for normal mode.
func (m Mode) IsNormal() bool { return m.kind == kindNormal }

// IsInsert returns true for insert mode.
func (m Mode) IsInsert() bool { return m.kind == kindInsert }

// IsVisual returns true for visual mode.
func (m Mode) IsVisual() bool { return m.kind == kindVisual }

// IsOperatorPending returns true when a pending operator is waiting
// for its motion.
func (m Mode) IsOperatorPending() bool { return m.kind == kindOperatorPending }

// Operator returns the pending operator key, or 0 for other modes.
func (m Mode) Operator() rune {
	if m.kind != kindOperatorPending {
		return 0
	}
	return m.operator
}

// Name returns the unique mode identifier (e.g., "normal", "insert").
func (m Mode) Name() string {
	switch m.kind {
	case kindNormal:
		return "normal"
	case kindInsert:
		return "insert"
	case kindVisual:
		return "visual"
	case kindOperatorPending:
		return "operator-pending"
	default:
		return "unknown"
	}
}

// DisplayName returns the status-line name for the mode.
func (m Mode) DisplayName() string {
	switch m.kind {
	case kindNormal:
		return "NORMAL"
	case kindInsert:
		return "INSERT"
	case kindVisual:
		return "VISUAL"
	case kindOperatorPending:
		return "OPERATOR(" + string(m.operator) + ")"
	default:
		return "UNKNOWN"
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return m.DisplayName()
}

// HelpText returns the one-line hint shown next to the mode name.
func (m Mode) HelpText() string {
	switch m.kind {
	case kindNormal:
		return "type q to quit, type i to enter insert mode"
	case kindInsert:
		return "type Esc to back to normal mode"
	case kindVisual:
		return "type y to yank, type d to delete, type Esc to back to normal mode"
	case kindOperatorPending:
		return "move cursor to apply operator"
	default:
		return ""
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m.kind {
	case kindInsert:
		return CursorBar
	case kindOperatorPending:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal and visual modes).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor (operator-pending mode).
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}
