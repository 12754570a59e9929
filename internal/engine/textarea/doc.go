// Package textarea implements the editable text buffer: line storage,
// cursor movement, selection, the yank register, undo/redo history, and
// viewport scrolling.
//
// Columns are rune indices. The cursor may rest one position past the
// end of a line (the insert convention); callers that need the stricter
// on-a-character convention clamp the cursor themselves after moving it.
// Selections span an exclusive-end range between the anchor and the
// cursor in document order.
package textarea
