package surface

import "testing"

func TestSerialize_Format(t *testing.T) {
	s := New(Options{}, PlaceholderNode(), MentionNode("alice01", "Alice"), TextNode(" a<b & \"c\"\n"))
	want := `<span></span><span data-at-user-name="alice01" contenteditable="false">@Alice</span> a&lt;b &amp; &#34;c&#34;` + "\n"
	if got := s.Serialize(); got != want {
		t.Fatalf("serialized:\n got: %q\nwant: %q", got, want)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	cases := []*Surface{
		New(Options{}),
		New(Options{}, TextNode("plain")),
		New(Options{}, TextNode("hello "), MentionNode("alice01", "Alice"), TextNode("")),
		New(Options{}, PlaceholderNode(), MentionNode("bob", "Bob & Co"), TextNode(" hi\n\n")),
		New(Options{}, TextNode("a"), TextNode("\n"), TextNode("\n")),
	}
	for i, s := range cases {
		back, err := Parse(s.Serialize(), Options{})
		if err != nil {
			t.Fatalf("case %d: parse: %v", i, err)
		}
		if !Equivalent(s, back) {
			t.Fatalf("case %d: round trip mismatch:\n got: %+v\nwant: %+v", i, back.Normalized(), s.Normalized())
		}
		if got, want := back.Serialize(), s.Serialize(); got != want {
			t.Fatalf("case %d: re-serialized=%q, want %q", i, got, want)
		}
	}
}

func TestParse_LenientMarkup(t *testing.T) {
	s, err := Parse(`<div>one</div><div>two<br><b>three</b></div>`, Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := s.PlainText(), "one\ntwo\nthree"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestParse_CaretAtEnd(t *testing.T) {
	s, err := Parse(`hi <span data-at-user-name="u" contenteditable="false">@U</span>`, Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c, ok := s.Cursor()
	if !ok || !c.AtRoot() || c.Offset != 2 {
		t.Fatalf("caret=%+v ok=%v, want root offset 2", c, ok)
	}
}
