package surface

import (
	"fmt"
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MentionAttr is the attribute that carries a mention token's user id in the
// serialized fragment.
const MentionAttr = "data-at-user-name"

// Serialize renders the surface as an HTML fragment: escaped text runs with
// literal "\n" breaks, one non-editable span per mention token and an empty
// span per placeholder. Parse accepts the result back.
func (s *Surface) Serialize() string {
	var sb strings.Builder
	for _, n := range s.nodes {
		switch n.Kind {
		case NodeText:
			sb.WriteString(html.EscapeString(n.Text))
		case NodeMention:
			fmt.Fprintf(&sb, `<span %s="%s" contenteditable="false">%s</span>`,
				MentionAttr, html.EscapeString(n.Mention.UserID), html.EscapeString(n.Mention.Label))
		case NodePlaceholder:
			sb.WriteString("<span></span>")
		}
	}
	return sb.String()
}

// Parse builds a surface from a serialized fragment. It is lenient about
// markup it did not produce: <br> becomes a line break, block elements start
// a new line, and any other element contributes its text.
func Parse(fragment string, opt Options) (*Surface, error) {
	if fragment == "" {
		return New(opt), nil
	}
	ctx := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	roots, err := nethtml.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse surface fragment: %w", err)
	}

	var nodes []Node
	for _, r := range roots {
		nodes = appendParsed(nodes, r)
	}
	return New(opt, nodes...), nil
}

func appendParsed(nodes []Node, h *nethtml.Node) []Node {
	switch h.Type {
	case nethtml.TextNode:
		return append(nodes, TextNode(h.Data))
	case nethtml.ElementNode:
	default:
		return nodes
	}

	switch h.DataAtom {
	case atom.Br:
		return append(nodes, TextNode("\n"))
	case atom.Span:
		if id, ok := attr(h, MentionAttr); ok {
			label := strings.TrimSpace(textContent(h))
			return append(nodes, Node{Kind: NodeMention, Mention: Mention{UserID: id, Label: label}})
		}
		if h.FirstChild == nil {
			return append(nodes, PlaceholderNode())
		}
	case atom.Div, atom.P:
		if len(nodes) > 0 {
			nodes = append(nodes, TextNode("\n"))
		}
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		nodes = appendParsed(nodes, c)
	}
	return nodes
}

func attr(h *nethtml.Node, key string) (string, bool) {
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(h *nethtml.Node) string {
	if h.Type == nethtml.TextNode {
		return h.Data
	}
	var sb strings.Builder
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// Normalized returns the root children with ids cleared, adjacent text runs
// merged and empty text runs dropped. Two surfaces that render the same
// normalize to equal slices.
func (s *Surface) Normalized() []Node {
	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		n.ID = 0
		if n.Kind == NodeText {
			if n.Text == "" {
				continue
			}
			if k := len(out) - 1; k >= 0 && out[k].Kind == NodeText {
				out[k].Text += n.Text
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// Equivalent reports whether a and b normalize to the same content.
func Equivalent(a, b *Surface) bool {
	na, nb := a.Normalized(), b.Normalized()
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}
