package surface

import (
	"errors"
	"strings"
	"testing"

	"github.com/iw2rmb/mentionbox/internal/grapheme"
)

func textOf(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.Content())
	}
	return sb.String()
}

func kinds(nodes []Node) []NodeKind {
	out := make([]NodeKind, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Kind)
	}
	return out
}

func equalKinds(a, b []NodeKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplice_PreservesContentAtEveryOffset(t *testing.T) {
	const content = "héllo wörld"
	n := grapheme.Count(content)
	for off := 0; off <= n; off++ {
		s := New(Options{}, TextNode(content))
		id := s.Nodes()[0].ID

		inserted := TextNode("XYZ")
		next, err := s.Splice(Cursor{Node: id, Offset: off}, inserted)
		if err != nil {
			t.Fatalf("offset %d: splice: %v", off, err)
		}

		nodes := s.Nodes()
		var outside strings.Builder
		insertedLen := 0
		for _, node := range nodes {
			if node.Content() == "XYZ" {
				insertedLen = node.Len()
				continue
			}
			outside.WriteString(node.Content())
		}
		if got := outside.String(); got != content {
			t.Fatalf("offset %d: before+after=%q, want %q", off, got, content)
		}
		if got, want := grapheme.Count(textOf(nodes)), n+insertedLen; got != want {
			t.Fatalf("offset %d: total len=%d, want %d", off, got, want)
		}

		after, ok := s.Node(next.Node)
		if !ok || next.Offset != 0 {
			t.Fatalf("offset %d: caret=%+v not at start of an attached node", off, next)
		}
		if got, want := after.Text, grapheme.Slice(content, off, n); got != want {
			t.Fatalf("offset %d: after=%q, want %q", off, got, want)
		}
	}
}

func TestSplice_MentionAtStartUsesPlaceholder(t *testing.T) {
	s := New(Options{}, TextNode("tail"))
	id := s.Nodes()[0].ID

	if _, err := s.Splice(Cursor{Node: id, Offset: 0}, MentionNode("alice01", "Alice")); err != nil {
		t.Fatalf("splice: %v", err)
	}

	got := kinds(s.Nodes())
	want := []NodeKind{NodePlaceholder, NodeMention, NodeText}
	if !equalKinds(got, want) {
		t.Fatalf("kinds=%v, want %v", got, want)
	}
}

func TestSplice_TextAtStartOmitsEmptyBefore(t *testing.T) {
	s := New(Options{}, TextNode("tail"))
	id := s.Nodes()[0].ID

	if _, err := s.Splice(Cursor{Node: id, Offset: 0}, TextNode("x")); err != nil {
		t.Fatalf("splice: %v", err)
	}
	got := kinds(s.Nodes())
	want := []NodeKind{NodeText, NodeText}
	if !equalKinds(got, want) {
		t.Fatalf("kinds=%v, want %v", got, want)
	}
	if got, want := s.PlainText(), "xtail"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestSplice_KeepsSiblingOrder(t *testing.T) {
	s := New(Options{}, TextNode("a"), MentionNode("u1", "One"), TextNode("bc"), MentionNode("u2", "Two"))
	mid := s.Nodes()[2].ID

	if _, err := s.Splice(Cursor{Node: mid, Offset: 1}, MentionNode("u3", "Three")); err != nil {
		t.Fatalf("splice: %v", err)
	}
	if got, want := s.PlainText(), "a@Oneb@Threec@Two"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestSplice_IdempotentStructure(t *testing.T) {
	build := func() *Surface {
		s := New(Options{}, TextNode("hello world"))
		id := s.Nodes()[0].ID
		if _, err := s.Splice(Cursor{Node: id, Offset: 6}, MentionNode("u", "U")); err != nil {
			t.Fatalf("splice: %v", err)
		}
		return s
	}
	a, b := build(), build()
	if !Equivalent(a, b) {
		t.Fatalf("equivalent splices produced different trees:\n%v\n%v", a.Normalized(), b.Normalized())
	}
}

func TestReplaceBefore_ConsumesTriggerFragment(t *testing.T) {
	s := New(Options{}, TextNode("hello @al"))
	id := s.Nodes()[0].ID

	next, err := s.ReplaceBefore(Cursor{Node: id, Offset: 9}, 3, MentionNode("alice01", "Alice"))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := s.PlainText(), "hello @Alice"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	nodes := s.Nodes()
	if got := nodes[1]; got.Kind != NodeMention || got.Mention.UserID != "alice01" {
		t.Fatalf("nodes[1]=%+v, want mention alice01", got)
	}
	if next.Node != nodes[2].ID || next.Offset != 0 {
		t.Fatalf("caret=%+v, want start of node %d", next, nodes[2].ID)
	}
}

func TestSplice_RejectsStaleCursor(t *testing.T) {
	s := New(Options{}, TextNode("abc"))
	stale := Cursor{Node: s.Nodes()[0].ID, Offset: 1}
	if _, err := s.Splice(stale, TextNode("x")); err != nil {
		t.Fatalf("first splice: %v", err)
	}

	v := s.Version()
	_, err := s.Splice(stale, TextNode("y"))
	if !errors.Is(err, ErrDetached) {
		t.Fatalf("err=%v, want ErrDetached", err)
	}
	if s.Version() != v {
		t.Fatalf("version changed on failed splice")
	}

	_, err = s.Splice(Cursor{Node: RootID, Offset: 0}, TextNode("y"))
	if !errors.Is(err, ErrNotText) {
		t.Fatalf("root splice err=%v, want ErrNotText", err)
	}
}

func TestInsertLineBreak_DuplicatesAtContentEnd(t *testing.T) {
	s := New(Options{}, TextNode("abc"))
	r, _ := s.ActiveRange()

	next, err := s.InsertLineBreak(r)
	if err != nil {
		t.Fatalf("line break: %v", err)
	}
	if got, want := s.Serialize(), "abc\n\n"; got != want {
		t.Fatalf("serialized=%q, want %q", got, want)
	}

	brk, ok := s.Node(next.Node)
	if !ok || brk.Text != "\n" || next.Offset != 1 {
		t.Fatalf("caret=%+v (%+v), want end of the first break", next, brk)
	}

	// The caret now has a trailing break after it, so the next break is single.
	r, _ = s.ActiveRange()
	if _, err := s.InsertLineBreak(r); err != nil {
		t.Fatalf("second line break: %v", err)
	}
	if got, want := s.PlainText(), "abc\n\n\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsertLineBreak_SingleInsideContent(t *testing.T) {
	s := New(Options{}, TextNode("abcd"))
	id := s.Nodes()[0].ID

	if _, err := s.InsertLineBreak(Caret(Cursor{Node: id, Offset: 2})); err != nil {
		t.Fatalf("line break: %v", err)
	}
	if got, want := s.PlainText(), "ab\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsertLineBreak_MentionAfterCaretIsContent(t *testing.T) {
	s := New(Options{}, TextNode("ab"), MentionNode("u", "U"))
	id := s.Nodes()[0].ID

	if _, err := s.InsertLineBreak(Caret(Cursor{Node: id, Offset: 2})); err != nil {
		t.Fatalf("line break: %v", err)
	}
	if got, want := s.PlainText(), "ab\n@U"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsertLineBreak_KeepSingleTrailingBreak(t *testing.T) {
	s := New(Options{KeepSingleTrailingBreak: true}, TextNode("abc"))
	r, _ := s.ActiveRange()
	if _, err := s.InsertLineBreak(r); err != nil {
		t.Fatalf("line break: %v", err)
	}
	if got, want := s.PlainText(), "abc\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsertLineBreak_ReplacesSelection(t *testing.T) {
	s := New(Options{}, TextNode("abcd"))
	id := s.Nodes()[0].ID

	r := Range{Start: Cursor{Node: id, Offset: 1}, End: Cursor{Node: id, Offset: 3}}
	if _, err := s.InsertLineBreak(r); err != nil {
		t.Fatalf("line break: %v", err)
	}
	if got, want := s.PlainText(), "a\nd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestAppendText_MovesCaretToEnd(t *testing.T) {
	s := New(Options{})
	next := s.AppendText("hi")
	if got, want := s.PlainText(), "hi"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if c, _ := s.Cursor(); c != next || next.Offset != 2 {
		t.Fatalf("caret=%+v, want offset 2 in appended node", c)
	}
}
