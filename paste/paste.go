// Package paste turns clipboard payloads into plain text and inserts it
// into a surface. Rich formatting on the clipboard is never carried over.
package paste

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/mentionbox/surface"
)

const (
	MIMEPlain     = "text/plain"
	MIMEPlainUTF8 = "text/plain;charset=utf-8"
)

// Payload maps MIME types to clipboard data.
type Payload map[string]string

// PlainText returns the sanitized plain text flavor of p, or "" when there
// is none.
func PlainText(p Payload) string {
	s, ok := p[MIMEPlain]
	if !ok {
		s = p[MIMEPlainUTF8]
	}
	return Sanitize(s)
}

// Sanitize strips terminal escape sequences, normalizes line endings to
// "\n" and drops control characters other than tab and newline.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, s)
}

// Apply deletes the selection and inserts text as a new text run at the
// caret. The returned caret sits right after the inserted text.
func Apply(s *surface.Surface, text string) (surface.Cursor, error) {
	r, ok := s.ActiveRange()
	if !ok {
		return surface.Cursor{}, surface.ErrNoCursor
	}
	c, err := s.DeleteRange(r)
	if err != nil {
		return surface.Cursor{}, fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return c, nil
	}
	if c.AtRoot() {
		// A root caret between two tokens inserts in place; only a caret past
		// the last node appends.
		if c.Offset < len(s.Nodes()) {
			next, err := s.InsertText(text)
			if err != nil {
				return surface.Cursor{}, fmt.Errorf("paste: %w", err)
			}
			return next, nil
		}
		return s.AppendText(text), nil
	}
	next, err := s.Splice(c, surface.TextNode(text))
	if err != nil {
		return surface.Cursor{}, fmt.Errorf("paste: %w", err)
	}
	return next, nil
}
