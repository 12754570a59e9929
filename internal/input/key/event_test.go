package key

import (
	"testing"
)

func TestNewRuneEvent(t *testing.T) {
	e := NewRuneEvent('a', ModNone)
	if e.Key != KeyRune {
		t.Errorf("NewRuneEvent key = %v, want KeyRune", e.Key)
	}
	if e.Rune != 'a' {
		t.Errorf("NewRuneEvent rune = %q, want 'a'", e.Rune)
	}
	if e.Modifiers != ModNone {
		t.Errorf("NewRuneEvent modifiers = %v, want ModNone", e.Modifiers)
	}
}

func TestNewSpecialEvent(t *testing.T) {
	e := NewSpecialEvent(KeyEscape, ModNone)
	if e.Key != KeyEscape {
		t.Errorf("NewSpecialEvent key = %v, want KeyEscape", e.Key)
	}
	if e.Rune != 0 {
		t.Errorf("NewSpecialEvent rune = %q, want 0", e.Rune)
	}
}

func TestEventIsRune(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{NewRuneEvent('A', ModShift), true},
		{NewSpecialEvent(KeyEscape, ModNone), false},
		{NewSpecialEvent(KeyEnter, ModNone), false},
		{Event{Key: KeyRune, Rune: 0}, false}, // Zero rune
	}

	for _, tt := range tests {
		if got := tt.event.IsRune(); got != tt.want {
			t.Errorf("Event.IsRune() = %v, want %v for %+v", got, tt.want, tt.event)
		}
	}
}

func TestEventIsChar(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{NewRuneEvent(' ', ModNone), true},
		{NewRuneEvent('\n', ModNone), false}, // Not printable
		{NewSpecialEvent(KeyEscape, ModNone), false},
	}

	for _, tt := range tests {
		if got := tt.event.IsChar(); got != tt.want {
			t.Errorf("Event.IsChar() = %v, want %v for %+v", got, tt.want, tt.event)
		}
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), false},
		{NewRuneEvent('A', ModShift), false}, // Shift alone doesn't count for runes
		{NewRuneEvent('a', ModCtrl), true},
		{NewRuneEvent('a', ModAlt), true},
		{NewSpecialEvent(KeyEscape, ModNone), false},
		{NewSpecialEvent(KeyEscape, ModShift), true}, // Shift counts for special keys
		{NewSpecialEvent(KeyEnter, ModCtrl), true},
	}

	for _, tt := range tests {
		if got := tt.event.IsModified(); got != tt.want {
			t.Errorf("Event.IsModified() = %v, want %v for %+v", got, tt.want, tt.event)
		}
	}
}

func TestEventEquals(t *testing.T) {
	tests := []struct {
		a, b Event
		want bool
	}{
		{NewRuneEvent('a', ModNone), NewRuneEvent('a', ModNone), true},
		{NewRuneEvent('a', ModNone), NewRuneEvent('b', ModNone), false},
		{NewRuneEvent('a', ModNone), NewRuneEvent('a', ModCtrl), false},
		{NewSpecialEvent(KeyEscape, ModNone), NewSpecialEvent(KeyEscape, ModNone), true},
		{NewSpecialEvent(KeyEscape, ModNone), NewSpecialEvent(KeyEnter, ModNone), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%+v.Equals(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	if !NewRuneEvent('x', ModNone).IsPlainRune('x') {
		t.Error("IsPlainRune('x') should match plain x")
	}
	if NewRuneEvent('x', ModCtrl).IsPlainRune('x') {
		t.Error("IsPlainRune('x') should reject C-x")
	}
	if !NewRuneEvent('d', ModCtrl).IsCtrlRune('d') {
		t.Error("IsCtrlRune('d') should match C-d")
	}
	if NewRuneEvent('d', ModNone).IsCtrlRune('d') {
		t.Error("IsCtrlRune('d') should reject plain d")
	}
	if !NewSpecialEvent(KeyEscape, ModNone).IsEscape() {
		t.Error("IsEscape() should match Esc")
	}
	if NewSpecialEvent(KeyEscape, ModCtrl).IsEscape() {
		t.Error("IsEscape() should reject C-Esc")
	}
	if !(Event{}).IsZero() {
		t.Error("zero Event should report IsZero")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"}, // Shift implicit for uppercase
		{NewRuneEvent('s', ModCtrl), "C-s"},
		{NewRuneEvent('f', ModCtrl|ModAlt), "C-A-f"},
		{NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{NewSpecialEvent(KeyEnter, ModCtrl), "C-Enter"},
		{NewSpecialEvent(KeyTab, ModShift), "S-Tab"},
		{NewRuneEvent(' ', ModNone), "Space"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q for %#v", got, tt.want, tt.event)
		}
	}
}
