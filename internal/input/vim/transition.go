package vim

import (
	"github.com/dshills/vimlet/internal/input/key"
	"github.com/dshills/vimlet/internal/input/mode"
)

// TransitionKind tags the outcome of handling one key event.
type TransitionKind uint8

const (
	// KindNop means the key was consumed with no mode-visible effect.
	KindNop TransitionKind = iota

	// KindMode means the interpreter is now in Transition.Mode.
	KindMode

	// KindPending means the key was stored as the first of a two-key
	// sequence.
	KindPending

	// KindQuit means the host should stop the event loop.
	KindQuit
)

// Transition is the result of processing one key event. Exactly one
// is produced per event.
type Transition struct {
	Kind    TransitionKind
	Mode    mode.Mode // valid when Kind == KindMode
	Pending key.Event // valid when Kind == KindPending
}

// Nop returns a no-effect transition.
func Nop() Transition {
	return Transition{Kind: KindNop}
}

// ToMode returns a transition into the given mode.
func ToMode(m mode.Mode) Transition {
	return Transition{Kind: KindMode, Mode: m}
}

// Defer returns a transition that parks ev as a pending key.
func Defer(ev key.Event) Transition {
	return Transition{Kind: KindPending, Pending: ev}
}

// Quit returns the quit transition.
func Quit() Transition {
	return Transition{Kind: KindQuit}
}

// IsQuit reports whether the transition ends the event loop.
func (t Transition) IsQuit() bool {
	return t.Kind == KindQuit
}

// String returns the transition name for logging.
func (t Transition) String() string {
	switch t.Kind {
	case KindNop:
		return "nop"
	case KindMode:
		return "mode:" + t.Mode.Name()
	case KindPending:
		return "pending:" + t.Pending.String()
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}
