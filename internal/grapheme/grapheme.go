package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	if start >= idx {
		return ""
	}
	return sb.String()
}

// Cut splits text at grapheme offset at. Offsets past the end keep the whole
// text in before.
func Cut(text string, at int) (before, after string) {
	if at <= 0 {
		return "", text
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == at {
			start, _ := g.Positions()
			return text[:start], text[start:]
		}
		idx++
	}
	return text, ""
}
