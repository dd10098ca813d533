package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCellWidth returns the terminal-cell width of one grapheme placed
// at visualCol. Tabs advance to the next tab stop.
func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	if w == 0 {
		w = 1
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return tabWidth - visualCol%tabWidth
}

// renderGrapheme returns what a grapheme occupying w cells is drawn as.
func renderGrapheme(text string, w int) string {
	if text == "\t" {
		return strings.Repeat(" ", w)
	}
	return text
}
