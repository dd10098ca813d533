package mention

import (
	"regexp"

	"github.com/iw2rmb/mentionbox/internal/grapheme"
	"github.com/iw2rmb/mentionbox/surface"
)

var triggerRE = regexp.MustCompile(`@([^@\s\p{Z}\x{FEFF}]*)$`)

// Trigger is the result of scanning the text before the caret.
type Trigger struct {
	Active    bool
	SearchKey string
}

// Len is the number of graphemes the "@key" fragment spans.
func (t Trigger) Len() int {
	if !t.Active {
		return 0
	}
	return 1 + grapheme.Count(t.SearchKey)
}

// Detect matches an "@" followed by non-space, non-"@" characters (Unicode
// separators such as NBSP and the ideographic space count as space) that ends
// exactly at offset in text.
func Detect(text string, offset int) Trigger {
	m := triggerRE.FindStringSubmatch(grapheme.Slice(text, 0, offset))
	if m == nil {
		return Trigger{}
	}
	return Trigger{Active: true, SearchKey: m[1]}
}

// DetectAt runs Detect on the text run holding the caret. The "@" and the
// key must live in that one run; a token or node boundary in between is an
// ambiguous partial mention and does not match.
func DetectAt(s *surface.Surface) Trigger {
	c, ok := s.Cursor()
	if !ok || c.AtRoot() {
		return Trigger{}
	}
	n, ok := s.Node(c.Node)
	if !ok || n.Kind != surface.NodeText {
		return Trigger{}
	}
	return Detect(n.Text, c.Offset)
}
