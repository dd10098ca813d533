package editor

import "github.com/iw2rmb/mentionbox/surface"

// screenToCursor maps content-relative cell coordinates to a caret
// position. (0,0) is the top-left visible content cell; the viewport's
// scroll offset is applied here.
func (m Model) screenToCursor(x, y int) (surface.Cursor, bool) {
	if x < 0 {
		x = 0
	}
	s, ok := m.lay.nearest(x, m.viewport.YOffset+y)
	if !ok {
		return surface.Cursor{}, false
	}
	return s.cur, true
}
