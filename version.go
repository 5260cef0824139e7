// Package glyphedit is an in-memory text editing engine: line breaking,
// index and coordinate mapping, cursors, edits and an event reducer, with a
// Bubble Tea host in package tui.
package glyphedit

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner returns the one-line identification printed by the demo.
func Banner() string {
	v := Version()
	if !semverRE.MatchString(v) {
		v = "dev"
	}
	return "glyphedit " + v
}
