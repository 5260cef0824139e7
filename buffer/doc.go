// Package buffer implements the cursor/selection model and the edit engine.
//
// Indices are layout.Index values and are only meaningful against the
// layout.Lines they were computed with. Absolute offsets count characters
// (runes) from the start of the text.
//
// Every function here is pure: text, lines and cursors go in, new values
// come out.
package buffer
