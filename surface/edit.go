package surface

import (
	"github.com/iw2rmb/mentionbox/internal/grapheme"
)

// DeleteRange removes the content covered by r. Text runs are trimmed,
// mention tokens inside the range are removed as whole units, and the node
// holding the earlier end is kept so the returned caret stays valid.
func (s *Surface) DeleteRange(r Range) (Cursor, error) {
	if err := s.validate(r.Start); err != nil {
		return Cursor{}, err
	}
	if err := s.validate(r.End); err != nil {
		return Cursor{}, err
	}

	first, last := r.Start, r.End
	a, b := s.linear(first), s.linear(last)
	if b < a {
		first, last, a, b = last, first, b, a
	}
	if a == b {
		s.commitCaret(first)
		return first, nil
	}

	// Empty nodes are removed only when they sit strictly between the two
	// boundary points in tree order.
	lo, hi := first.Offset, last.Offset
	if !first.AtRoot() {
		lo = s.indexOf(first.Node) + 1
	}
	if !last.AtRoot() {
		hi = s.indexOf(last.Node)
	}

	out := make([]Node, 0, len(s.nodes))
	q := 0
	for x, n := range s.nodes {
		l := n.Len()
		start := q
		q += l
		keep := n.ID == first.Node

		if l == 0 {
			if lo <= x && x < hi && !keep {
				continue
			}
			out = append(out, n)
			continue
		}

		switch n.Kind {
		case NodeText:
			if start >= b || start+l <= a {
				out = append(out, n)
				continue
			}
			head := grapheme.Slice(n.Text, 0, a-start)
			tail := ""
			if b-start < l {
				tail = grapheme.Slice(n.Text, b-start, l)
			}
			if head == "" && tail == "" && !keep {
				continue
			}
			n.Text = head + tail
			out = append(out, n)
		case NodeMention:
			if a <= start && start+1 <= b {
				continue
			}
			out = append(out, n)
		default:
			out = append(out, n)
		}
	}
	s.nodes = out

	s.commitCaret(first)
	return first, nil
}

// InsertText types text at the caret, replacing the selection if any.
func (s *Surface) InsertText(text string) (Cursor, error) {
	r, ok := s.ActiveRange()
	if !ok {
		return Cursor{}, ErrNoCursor
	}
	c, err := s.DeleteRange(r)
	if err != nil {
		return Cursor{}, err
	}
	if text == "" {
		return c, nil
	}

	i, err := s.locate(c)
	if err != nil {
		return Cursor{}, err
	}
	if i < 0 {
		n := s.attach(TextNode(text))
		s.insertAt(c.Offset, n)
		next := Cursor{Node: n.ID, Offset: n.Len()}
		s.commitCaret(next)
		return next, nil
	}

	n := &s.nodes[i]
	before, after := grapheme.Cut(n.Content(), c.Offset)
	n.Kind = NodeText
	n.Text = before + text + after
	next := Cursor{Node: n.ID, Offset: grapheme.Count(before + text)}
	s.commitCaret(next)
	return next, nil
}

// DeleteBackward applies backspace semantics. A mention token right before
// the caret is removed as a whole.
func (s *Surface) DeleteBackward() (Cursor, error) {
	if r, ok := s.Selection(); ok {
		return s.DeleteRange(r)
	}
	if !s.hasCursor {
		return Cursor{}, ErrNoCursor
	}
	c := s.cursor
	i, err := s.locate(c)
	if err != nil {
		return Cursor{}, err
	}

	if i >= 0 && c.Offset > 0 {
		n := &s.nodes[i]
		n.Text = grapheme.Slice(n.Text, 0, c.Offset-1) + grapheme.Slice(n.Text, c.Offset, n.Len())
		next := Cursor{Node: n.ID, Offset: c.Offset - 1}
		s.commitCaret(next)
		return next, nil
	}

	j := c.Offset - 1
	if i >= 0 {
		j = i - 1
	}
	for j >= 0 && s.nodes[j].Len() == 0 {
		j--
	}
	if j < 0 {
		return c, nil
	}

	switch s.nodes[j].Kind {
	case NodeMention:
		s.removeAt(j)
		if c.AtRoot() {
			c.Offset--
		}
		s.commitCaret(c)
		return c, nil
	default:
		n := &s.nodes[j]
		l := n.Len()
		n.Text = grapheme.Slice(n.Text, 0, l-1)
		next := Cursor{Node: n.ID, Offset: l - 1}
		s.commitCaret(next)
		return next, nil
	}
}

// DeleteForward applies delete-key semantics. A mention token right after
// the caret is removed as a whole.
func (s *Surface) DeleteForward() (Cursor, error) {
	if r, ok := s.Selection(); ok {
		return s.DeleteRange(r)
	}
	if !s.hasCursor {
		return Cursor{}, ErrNoCursor
	}
	c := s.cursor
	i, err := s.locate(c)
	if err != nil {
		return Cursor{}, err
	}

	if i >= 0 && c.Offset < s.nodes[i].Len() {
		n := &s.nodes[i]
		n.Text = grapheme.Slice(n.Text, 0, c.Offset) + grapheme.Slice(n.Text, c.Offset+1, n.Len())
		s.commitCaret(c)
		return c, nil
	}

	j := c.Offset
	if i >= 0 {
		j = i + 1
	}
	for j < len(s.nodes) && s.nodes[j].Len() == 0 {
		j++
	}
	if j >= len(s.nodes) {
		return c, nil
	}

	switch s.nodes[j].Kind {
	case NodeMention:
		s.removeAt(j)
	default:
		n := &s.nodes[j]
		n.Text = grapheme.Slice(n.Text, 1, n.Len())
	}
	s.commitCaret(c)
	return c, nil
}
