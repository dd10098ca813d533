package editor

import (
	"github.com/iw2rmb/mentionbox/internal/grapheme"
	"github.com/iw2rmb/mentionbox/surface"
)

// cell is one drawn grapheme.
type cell struct {
	text  string
	x     int
	width int
	step  int // cursor step of the content unit it belongs to
	token bool
}

// stop is a caret position and where it is drawn.
type stop struct {
	cur  surface.Cursor
	step int
	x, y int
}

// layout is the wrapped, cell-addressed form of a surface.
type layout struct {
	width int
	rows  [][]cell
	stops []stop
}

type layoutBuilder struct {
	layout
	tabWidth   int
	x, y, step int
}

// buildLayout wraps nodes into rows of at most width cells (width <= 0
// disables wrapping). A lone trailing line break is collapsed the way a
// contenteditable renderer collapses it.
func buildLayout(nodes []surface.Node, width, tabWidth int) layout {
	b := &layoutBuilder{
		layout:   layout{width: width, rows: make([][]cell, 1)},
		tabWidth: tabWidth,
	}
	ci, ck := trailingBreak(nodes)

	for i, n := range nodes {
		b.mark(surface.Cursor{Node: surface.RootID, Offset: i})
		switch n.Kind {
		case surface.NodeText:
			gs := grapheme.Split(n.Text)
			for k, g := range gs {
				if g == "\n" {
					b.mark(surface.Cursor{Node: n.ID, Offset: k})
					if i != ci || k != ck {
						b.newline()
					}
					b.step++
					continue
				}
				w := graphemeCellWidth(g, b.x, b.tabWidth)
				b.fit(w)
				b.mark(surface.Cursor{Node: n.ID, Offset: k})
				b.put(renderGrapheme(g, w), w, false)
				b.step++
			}
			b.mark(surface.Cursor{Node: n.ID, Offset: len(gs)})

		case surface.NodeMention:
			gs := grapheme.Split(n.Content())
			total := 0
			for _, g := range gs {
				total += graphemeCellWidth(g, 0, b.tabWidth)
			}
			b.fit(total)
			for _, g := range gs {
				w := graphemeCellWidth(g, b.x, b.tabWidth)
				b.fit(w)
				b.put(g, w, true)
			}
			b.step++

		case surface.NodePlaceholder:
			b.mark(surface.Cursor{Node: n.ID, Offset: 0})
		}
	}
	b.mark(surface.Cursor{Node: surface.RootID, Offset: len(nodes)})
	return b.layout
}

func (b *layoutBuilder) mark(c surface.Cursor) {
	b.stops = append(b.stops, stop{cur: c, step: b.step, x: b.x, y: b.y})
}

func (b *layoutBuilder) newline() {
	b.y++
	b.x = 0
	b.rows = append(b.rows, nil)
}

// fit wraps when w more cells would overflow a non-empty row.
func (b *layoutBuilder) fit(w int) {
	if b.width > 0 && b.x > 0 && b.x+w > b.width {
		b.newline()
	}
}

func (b *layoutBuilder) put(text string, w int, token bool) {
	b.rows[b.y] = append(b.rows[b.y], cell{text: text, x: b.x, width: w, step: b.step, token: token})
	b.x += w
	if b.width > 0 && b.x >= b.width {
		b.newline()
	}
}

// trailingBreak locates the last grapheme of the content when it is a line
// break; (-1, -1) otherwise.
func trailingBreak(nodes []surface.Node) (node, offset int) {
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		switch n.Kind {
		case surface.NodeMention:
			return -1, -1
		case surface.NodeText:
			if n.Text == "" {
				continue
			}
			gs := grapheme.Split(n.Text)
			if gs[len(gs)-1] == "\n" {
				return i, len(gs) - 1
			}
			return -1, -1
		}
	}
	return -1, -1
}

func (l layout) find(c surface.Cursor) (stop, bool) {
	for _, s := range l.stops {
		if s.cur == c {
			return s, true
		}
	}
	return stop{}, false
}

// nearest returns the caret stop for cell (x, y): the right-most stop at or
// before x on row y, preferring stops inside nodes over root stops.
func (l layout) nearest(x, y int) (stop, bool) {
	if len(l.stops) == 0 {
		return stop{}, false
	}
	y = clampInt(y, 0, len(l.rows)-1)

	var best stop
	found := false
	for _, s := range l.stops {
		if s.y != y || s.x > x {
			continue
		}
		if !found || s.x > best.x || (s.x == best.x && best.cur.AtRoot() && !s.cur.AtRoot()) {
			best, found = s, true
		}
	}
	if found {
		return best, true
	}
	for _, s := range l.stops {
		if s.y == y && (!found || s.x < best.x) {
			best, found = s, true
		}
	}
	if found {
		return best, true
	}
	// Rows fully covered by a wrapped token hold no stop.
	best = l.stops[0]
	for _, s := range l.stops {
		if s.y <= y {
			best = s
		}
	}
	return best, true
}

// vertical returns the stop dy rows away from c, keeping its column.
func (l layout) vertical(c surface.Cursor, dy int) (stop, bool) {
	cur, ok := l.find(c)
	if !ok {
		return stop{}, false
	}
	ty := cur.y + dy
	if ty < 0 || ty >= len(l.rows) {
		return stop{}, false
	}
	return l.nearest(cur.x, ty)
}

func (l layout) maxWidth() int {
	w := 0
	for _, row := range l.rows {
		if len(row) == 0 {
			continue
		}
		last := row[len(row)-1]
		if e := last.x + last.width; e > w {
			w = e
		}
	}
	return w
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
