package surface

import (
	"fmt"
	"strings"
)

// Options configures surface editing policy.
type Options struct {
	// KeepSingleTrailingBreak disables the second line break that
	// InsertLineBreak adds when the caret is at the very end of the content.
	// Renderers that do not collapse a lone trailing break can set it.
	KeepSingleTrailingBreak bool
}

type selectionState struct {
	active bool
	anchor Cursor
	end    Cursor
}

// Surface is the owned text tree: an ordered list of root children plus a
// caret and an optional selection.
type Surface struct {
	nodes   []Node
	nextID  NodeID
	version uint64

	cursor    Cursor
	hasCursor bool
	sel       selectionState

	opt Options
}

// New builds a surface from detached nodes. The caret is placed at the end.
func New(opt Options, nodes ...Node) *Surface {
	s := &Surface{opt: opt}
	s.nodes = make([]Node, 0, len(nodes))
	for _, n := range nodes {
		s.nodes = append(s.nodes, s.attach(n))
	}
	s.cursor = s.endCursor()
	s.hasCursor = true
	return s
}

func (s *Surface) attach(n Node) Node {
	s.nextID++
	n.ID = s.nextID
	return n
}

func (s *Surface) Version() uint64 { return s.version }

func (s *Surface) Options() Options { return s.opt }

// Nodes returns a copy of the root children.
func (s *Surface) Nodes() []Node {
	return append([]Node(nil), s.nodes...)
}

// Node returns the attached node with the given id.
func (s *Surface) Node(id NodeID) (Node, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Node{}, false
	}
	return s.nodes[i], true
}

// PlainText returns the visible text with mention tokens rendered as their
// labels.
func (s *Surface) PlainText() string {
	var sb strings.Builder
	for _, n := range s.nodes {
		sb.WriteString(n.Content())
	}
	return sb.String()
}

// Empty reports whether the surface shows no text at all.
func (s *Surface) Empty() bool {
	for _, n := range s.nodes {
		if n.Content() != "" {
			return false
		}
	}
	return true
}

// Cursor returns the caret (the focus end of a selection).
func (s *Surface) Cursor() (Cursor, bool) {
	if !s.hasCursor {
		return Cursor{}, false
	}
	return s.cursor, true
}

// SetCursor moves the caret and clears the selection.
func (s *Surface) SetCursor(c Cursor) error {
	if err := s.validate(c); err != nil {
		return err
	}
	s.setCaret(c)
	return nil
}

// ClearCursor drops the caret and selection, as when focus leaves the
// surface.
func (s *Surface) ClearCursor() {
	if !s.hasCursor && !s.sel.active {
		return
	}
	s.hasCursor = false
	s.sel = selectionState{}
	s.version++
}

// Selection returns the active non-empty selection.
func (s *Surface) Selection() (Range, bool) {
	if !s.sel.active || s.sel.anchor == s.sel.end {
		return Range{}, false
	}
	return Range{Start: s.sel.anchor, End: s.sel.end}, true
}

// SetSelection selects r. The caret follows r.End. A collapsed range is the
// same as SetCursor(r.End).
func (s *Surface) SetSelection(r Range) error {
	if err := s.validate(r.Start); err != nil {
		return err
	}
	if err := s.validate(r.End); err != nil {
		return err
	}
	if r.Collapsed() {
		s.setCaret(r.End)
		return nil
	}
	s.sel = selectionState{active: true, anchor: r.Start, end: r.End}
	s.cursor = r.End
	s.hasCursor = true
	s.version++
	return nil
}

// SelectAll selects the whole content. Both ends sit on the root, the way a
// select-all collapses onto the surface element itself.
func (s *Surface) SelectAll() {
	_ = s.SetSelection(Range{
		Start: Cursor{Node: RootID, Offset: 0},
		End:   Cursor{Node: RootID, Offset: len(s.nodes)},
	})
}

// ActiveRange returns the selection, or the collapsed caret when nothing is
// selected.
func (s *Surface) ActiveRange() (Range, bool) {
	if r, ok := s.Selection(); ok {
		return r, true
	}
	if !s.hasCursor {
		return Range{}, false
	}
	return Caret(s.cursor), true
}

// Resolve reports whether c is still valid for the current tree.
func (s *Surface) Resolve(c Cursor) error {
	return s.validate(c)
}

func (s *Surface) setCaret(c Cursor) {
	if s.hasCursor && s.cursor == c && !s.sel.active {
		return
	}
	s.cursor = c
	s.hasCursor = true
	s.sel = selectionState{}
	s.version++
}

func (s *Surface) indexOf(id NodeID) int {
	if id == RootID {
		return -1
	}
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// locate returns the index of the node c references (-1 for root).
func (s *Surface) locate(c Cursor) (int, error) {
	if c.AtRoot() {
		if c.Offset < 0 || c.Offset > len(s.nodes) {
			return -1, fmt.Errorf("root offset %d of %d: %w", c.Offset, len(s.nodes), ErrOffset)
		}
		return -1, nil
	}
	i := s.indexOf(c.Node)
	if i < 0 {
		return -1, fmt.Errorf("node %d: %w", c.Node, ErrDetached)
	}
	n := s.nodes[i]
	if !n.HoldsCursor() {
		return -1, fmt.Errorf("node %d is a %s: %w", c.Node, n.Kind, ErrNotText)
	}
	if c.Offset < 0 || c.Offset > n.Len() {
		return -1, fmt.Errorf("offset %d of %d in node %d: %w", c.Offset, n.Len(), c.Node, ErrOffset)
	}
	return i, nil
}

func (s *Surface) validate(c Cursor) error {
	_, err := s.locate(c)
	return err
}

// linear maps a valid cursor to its position in cursor steps from the start
// of the content.
func (s *Surface) linear(c Cursor) int {
	end := len(s.nodes)
	extra := 0
	if c.AtRoot() {
		end = c.Offset
	} else if i := s.indexOf(c.Node); i >= 0 {
		end = i
		extra = c.Offset
	}
	p := 0
	for i := 0; i < end && i < len(s.nodes); i++ {
		p += s.nodes[i].Len()
	}
	return p + extra
}

func (s *Surface) totalLen() int {
	p := 0
	for _, n := range s.nodes {
		p += n.Len()
	}
	return p
}

// cursorAt returns the first cursor-holding position for linear step p,
// falling back to a root position between nodes.
func (s *Surface) cursorAt(p int) Cursor {
	if p < 0 {
		p = 0
	}
	q := 0
	for _, n := range s.nodes {
		l := n.Len()
		if n.HoldsCursor() && q <= p && p <= q+l {
			return Cursor{Node: n.ID, Offset: p - q}
		}
		q += l
	}
	q = 0
	for i, n := range s.nodes {
		if q >= p {
			return Cursor{Node: RootID, Offset: i}
		}
		q += n.Len()
	}
	return Cursor{Node: RootID, Offset: len(s.nodes)}
}

func (s *Surface) endCursor() Cursor {
	if len(s.nodes) == 0 {
		return Cursor{Node: RootID, Offset: 0}
	}
	last := s.nodes[len(s.nodes)-1]
	if last.HoldsCursor() {
		return Cursor{Node: last.ID, Offset: last.Len()}
	}
	return Cursor{Node: RootID, Offset: len(s.nodes)}
}

func (s *Surface) replaceAt(i int, with ...Node) {
	out := make([]Node, 0, len(s.nodes)-1+len(with))
	out = append(out, s.nodes[:i]...)
	out = append(out, with...)
	out = append(out, s.nodes[i+1:]...)
	s.nodes = out
}

func (s *Surface) insertAt(i int, with ...Node) {
	out := make([]Node, 0, len(s.nodes)+len(with))
	out = append(out, s.nodes[:i]...)
	out = append(out, with...)
	out = append(out, s.nodes[i:]...)
	s.nodes = out
}

func (s *Surface) removeAt(i int) {
	s.nodes = append(s.nodes[:i:i], s.nodes[i+1:]...)
}
