package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyUp, "Up"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyIsSpecial(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyNone, false},
		{KeyRune, false},
		{KeyEscape, true},
		{KeyEnter, true},
		{KeyPageDown, true},
	}

	for _, tt := range tests {
		if got := tt.key.IsSpecial(); got != tt.want {
			t.Errorf("Key(%v).IsSpecial() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyIsNavigationKey(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyUp, true},
		{KeyDown, true},
		{KeyLeft, true},
		{KeyRight, true},
		{KeyHome, true},
		{KeyEnd, true},
		{KeyPageUp, true},
		{KeyPageDown, true},
		{KeyEscape, false},
		{KeyRune, false},
	}

	for _, tt := range tests {
		if got := tt.key.IsNavigationKey(); got != tt.want {
			t.Errorf("Key(%v).IsNavigationKey() = %v, want %v", tt.key, got, tt.want)
		}
	}
}
