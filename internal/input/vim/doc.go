// Package vim implements the modal command interpreter: a state
// machine that consumes key events and drives an editable text buffer
// through normal, insert, visual, and operator-pending modes.
//
// The interpreter owns the current mode and the one-slot pending key.
// Each Handle call fully processes one key event against the buffer
// and reports the outcome as a Transition for the host loop to apply.
package vim
