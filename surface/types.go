package surface

import (
	"errors"

	"github.com/iw2rmb/mentionbox/internal/grapheme"
)

var (
	// ErrNoCursor reports that the surface has no active caret or selection.
	ErrNoCursor = errors.New("surface: no cursor")
	// ErrDetached reports a cursor whose node is no longer attached.
	ErrDetached = errors.New("surface: cursor node detached")
	// ErrNotText reports a cursor that does not sit in a text-bearing node.
	ErrNotText = errors.New("surface: cursor not in a text node")
	// ErrOffset reports a cursor offset outside its node's content.
	ErrOffset = errors.New("surface: cursor offset out of range")
)

// NodeID identifies a node for as long as it stays attached.
type NodeID uint64

// RootID is the pseudo node of the surface itself.
const RootID NodeID = 0

// NodeKind tags the node variant.
type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeMention
	NodePlaceholder
)

func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeMention:
		return "mention"
	case NodePlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Mention is the payload of an atomic mention token.
type Mention struct {
	UserID string
	Label  string
}

// Node is one child of the surface root.
type Node struct {
	ID      NodeID
	Kind    NodeKind
	Text    string
	Mention Mention
}

// TextNode returns a detached text run.
func TextNode(s string) Node { return Node{Kind: NodeText, Text: s} }

// MentionNode returns a detached mention token labeled "@"+displayName.
func MentionNode(userID, displayName string) Node {
	return Node{Kind: NodeMention, Mention: Mention{UserID: userID, Label: "@" + displayName}}
}

// PlaceholderNode returns a detached empty placeholder.
func PlaceholderNode() Node { return Node{Kind: NodePlaceholder} }

// Content is the visible text of the node.
func (n Node) Content() string {
	switch n.Kind {
	case NodeText:
		return n.Text
	case NodeMention:
		return n.Mention.Label
	default:
		return ""
	}
}

// Len is the number of cursor steps the node spans. Mention tokens count as
// one step regardless of their label.
func (n Node) Len() int {
	switch n.Kind {
	case NodeText:
		return grapheme.Count(n.Text)
	case NodeMention:
		return 1
	default:
		return 0
	}
}

// Atomic reports whether the node can only be removed as a whole.
func (n Node) Atomic() bool { return n.Kind == NodeMention }

// HoldsCursor reports whether a Cursor may reference the node.
func (n Node) HoldsCursor() bool { return n.Kind == NodeText || n.Kind == NodePlaceholder }

// Cursor is a caret position: a node reference and an offset in it.
type Cursor struct {
	Node   NodeID
	Offset int
}

// AtRoot reports whether the cursor sits between root children.
func (c Cursor) AtRoot() bool { return c.Node == RootID }

// Range is a selection between two cursors. Start and End may be in any
// document order; operations normalize them.
type Range struct {
	Start Cursor
	End   Cursor
}

// Collapsed reports whether the range is a bare caret.
func (r Range) Collapsed() bool { return r.Start == r.End }

// Caret returns the collapsed range at c.
func Caret(c Cursor) Range { return Range{Start: c, End: c} }
