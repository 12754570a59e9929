package textarea

import "strings"

// Register holds the most recently captured span of text.
// Copy and cut operations overwrite it; paste never mutates it.
type Register struct {
	content string
}

// Set replaces the register content.
func (r *Register) Set(text string) {
	r.content = text
}

// Text returns the register content.
func (r Register) Text() string {
	return r.content
}

// IsEmpty returns true if nothing has been captured.
func (r Register) IsEmpty() bool {
	return r.content == ""
}

// Linewise reports whether the content contains a line separator.
// The classification is structural, derived from the content itself.
func (r Register) Linewise() bool {
	return strings.Contains(r.content, "\n")
}
