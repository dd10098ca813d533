package surface

import (
	"fmt"

	"github.com/iw2rmb/mentionbox/internal/grapheme"
)

// Splice inserts a detached node at c. The node holding c is replaced by
// [before, inserted, after]; the returned caret sits at offset 0 of after,
// immediately behind the inserted node.
//
// When before is empty and inserted is atomic, an empty placeholder takes
// its place so the token always has a cursor-holding neighbor on both sides.
func (s *Surface) Splice(c Cursor, inserted Node) (Cursor, error) {
	return s.ReplaceBefore(c, 0, inserted)
}

// ReplaceBefore is Splice that also drops the n graphemes right before c,
// e.g. the "@key" fragment that a mention token replaces.
func (s *Surface) ReplaceBefore(c Cursor, n int, inserted Node) (Cursor, error) {
	i, err := s.locate(c)
	if err != nil {
		return Cursor{}, err
	}
	if i < 0 {
		return Cursor{}, fmt.Errorf("splice at root offset %d: %w", c.Offset, ErrNotText)
	}

	before, after := grapheme.Cut(s.nodes[i].Content(), c.Offset)
	if n > 0 {
		before = grapheme.Slice(before, 0, grapheme.Count(before)-n)
	}

	seq := make([]Node, 0, 3)
	switch {
	case before != "":
		seq = append(seq, s.attach(TextNode(before)))
	case inserted.Atomic():
		seq = append(seq, s.attach(PlaceholderNode()))
	}
	seq = append(seq, s.attach(inserted))
	tail := s.attach(TextNode(after))
	seq = append(seq, tail)
	s.replaceAt(i, seq...)

	next := Cursor{Node: tail.ID, Offset: 0}
	s.commitCaret(next)
	return next, nil
}

// AppendText appends a text run to the root and puts the caret at its end.
// It covers the case where the caret collapsed onto the root itself.
func (s *Surface) AppendText(text string) Cursor {
	n := s.attach(TextNode(text))
	s.nodes = append(s.nodes, n)
	next := Cursor{Node: n.ID, Offset: n.Len()}
	s.commitCaret(next)
	return next
}

// InsertLineBreak deletes r and inserts a "\n" run at the resulting caret,
// which lands right after the break.
//
// When the caret is at the absolute end of the content a second "\n" run is
// added after the first. Contenteditable-style renderers collapse a single
// trailing break, so without it the break has no visible effect. This is a
// renderer workaround; Options.KeepSingleTrailingBreak turns it off.
func (s *Surface) InsertLineBreak(r Range) (Cursor, error) {
	c, err := s.DeleteRange(r)
	if err != nil {
		return Cursor{}, err
	}
	i, err := s.locate(c)
	if err != nil {
		return Cursor{}, err
	}

	brk := s.attach(TextNode("\n"))
	seq := []Node{brk}
	if s.atContentEnd(c, i) && !s.opt.KeepSingleTrailingBreak {
		seq = append(seq, s.attach(TextNode("\n")))
	}

	if i < 0 {
		s.insertAt(c.Offset, seq...)
	} else {
		before, after := grapheme.Cut(s.nodes[i].Content(), c.Offset)
		if s.nodes[i].Kind == NodeText {
			s.nodes[i].Text = before
		}
		if after != "" {
			seq = append(seq, s.attach(TextNode(after)))
		}
		s.insertAt(i+1, seq...)
	}

	next := Cursor{Node: brk.ID, Offset: 1}
	s.commitCaret(next)
	return next, nil
}

func (s *Surface) atContentEnd(c Cursor, i int) bool {
	if i < 0 {
		return !s.hasContentFrom(c.Offset)
	}
	return c.Offset == s.nodes[i].Len() && !s.hasContentFrom(i+1)
}

// hasContentFrom reports whether any node from index i on is an element
// (mention or placeholder) or a non-empty text run.
func (s *Surface) hasContentFrom(i int) bool {
	for ; i < len(s.nodes); i++ {
		switch s.nodes[i].Kind {
		case NodeMention, NodePlaceholder:
			return true
		case NodeText:
			if s.nodes[i].Text != "" {
				return true
			}
		}
	}
	return false
}

func (s *Surface) commitCaret(c Cursor) {
	s.cursor = c
	s.hasCursor = true
	s.sel = selectionState{}
	s.version++
}
