// Package renderer draws the editor screen: a bordered frame whose
// title shows the active mode, the visible slice of the buffer, the
// selection highlight, and the cursor in the shape the mode calls for.
package renderer
