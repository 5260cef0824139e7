// Package layout turns text into visual lines and maps between character
// indices and 2D positions.
//
// Breaking is a pure function of (text, metrics, max width, wrap policy).
// Positions use a y-down coordinate space: a Rect's Y is its top edge.
package layout
