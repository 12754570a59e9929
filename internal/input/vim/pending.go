package vim

import "github.com/dshills/vimlet/internal/input/key"

// pendingKey is a one-slot buffer holding the first key of a two-key
// sequence. A second distinct prefix overwrites rather than stacks,
// and the slot never survives a completed command or a mode change.
type pendingKey struct {
	ev key.Event
}

func (p *pendingKey) set(ev key.Event) {
	p.ev = ev
}

func (p *pendingKey) clear() {
	p.ev = key.Event{}
}

// is reports whether the pending key is the given unmodified character.
func (p pendingKey) is(r rune) bool {
	return p.ev.IsPlainRune(r)
}
