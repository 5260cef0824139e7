// Package editor folds classified input events into editing state.
//
// An Editor is framework agnostic: the host owns the text and the State,
// hands both to Update together with the events of one cycle, and gets back
// the next State, the (possibly edited) text and the geometry needed to draw
// a caret and selection highlights.
//
// Coordinates are in the host's space with Y growing downward. Pointer
// points use the same space as Config.Bounds.
package editor
