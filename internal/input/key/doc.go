// Package key defines key identities, modifier masks, and key events.
//
// A key event pairs a key identity (a character or a named special key)
// with the modifier keys held during the press. Events are plain values;
// two events are equal when identity and modifiers match, regardless of
// when they occurred.
package key
