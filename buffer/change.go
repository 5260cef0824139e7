package buffer

import "github.com/iw2rmb/glyphedit/internal/chars"

// Change records one splice: characters [StartChar, EndChar) of the text
// before the edit, which were Deleted, were replaced by Inserted.
type Change struct {
	StartChar int
	EndChar   int
	Inserted  string
	Deleted   string
}

// Apply replays the change on text, which must be the text the change was
// computed against.
func (c Change) Apply(text string) string {
	return chars.Splice(text, c.StartChar, c.EndChar, c.Inserted)
}

// Delta returns the change in character count.
func (c Change) Delta() int {
	return chars.Count(c.Inserted) - (c.EndChar - c.StartChar)
}
