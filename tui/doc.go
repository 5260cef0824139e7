// Package tui hosts an editor.Editor inside a Bubble Tea program.
//
// The terminal is treated as a grid of cells: layout.CellMetrics measures
// runes, each line is one row tall and pointer events arrive in cell
// coordinates. Vertical overflow scrolls through a bubbles viewport.
package tui
