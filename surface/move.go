package surface

// MoveDir is a caret movement direction.
type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirStart // content start
	DirEnd   // content end
)

// Move describes one caret movement.
type Move struct {
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

// Move moves the caret by one step (a grapheme, or a whole mention token).
// Without Extend an active selection collapses to the side it is moved
// towards.
func (s *Surface) Move(m Move) (Cursor, error) {
	if !s.hasCursor {
		return Cursor{}, ErrNoCursor
	}
	if err := s.validate(s.cursor); err != nil {
		return Cursor{}, err
	}

	sel, hasSel := s.Selection()
	if hasSel && !m.Extend && (m.Dir == DirLeft || m.Dir == DirRight) {
		lo, hi := sel.Start, sel.End
		if s.linear(hi) < s.linear(lo) {
			lo, hi = hi, lo
		}
		next := lo
		if m.Dir == DirRight {
			next = hi
		}
		s.commitCaret(next)
		return next, nil
	}

	p := s.linear(s.cursor)
	switch m.Dir {
	case DirLeft:
		p--
	case DirRight:
		p++
	case DirStart:
		p = 0
	case DirEnd:
		p = s.totalLen()
	}
	if p < 0 || p > s.totalLen() {
		return s.cursor, nil
	}

	next := s.cursorAt(p)
	if m.Dir == DirEnd {
		next = s.endCursor()
	}
	if !m.Extend {
		s.setCaret(next)
		return next, nil
	}

	anchor := s.cursor
	if hasSel {
		anchor = s.sel.anchor
	}
	if err := s.SetSelection(Range{Start: anchor, End: next}); err != nil {
		return Cursor{}, err
	}
	return next, nil
}
