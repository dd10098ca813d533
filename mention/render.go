package mention

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Style struct {
	Box      lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
	Spinner  lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

const (
	noResultsText = "No matching members"
	loadingText   = "Searching"
)

// View renders the popup box at its configured size. It renders regardless
// of Visible; the host decides whether to draw it.
func (p Popup) View() string {
	w := int(p.cfg.Size.Width) - p.style.Box.GetHorizontalFrameSize()
	h := int(p.cfg.Size.Height) - p.style.Box.GetVerticalFrameSize()
	if w < 1 || h < 1 {
		return ""
	}

	var lines []string
	switch {
	case len(p.state.Candidates) > 0:
		start, end := scrollWindow(len(p.state.Candidates), p.state.Highlighted, h)
		for i := start; i < end; i++ {
			st := p.style.Item
			if i == p.state.Highlighted {
				st = p.style.Selected
			}
			lines = append(lines, st.Width(w).Render(ansi.Truncate(candidateText(p.state.Candidates[i]), w, "…")))
		}
	case p.state.Loading:
		lines = append(lines, ansi.Truncate(p.spin.View()+" "+loadingText, w, "…"))
	default:
		lines = append(lines, p.style.Empty.Render(ansi.Truncate(noResultsText, w, "…")))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return p.style.Box.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func candidateText(c Candidate) string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Name
}

// scrollWindow returns the visible [start, end) rows keeping sel in view.
func scrollWindow(n, sel, rows int) (start, end int) {
	if n <= rows {
		return 0, n
	}
	start = sel - rows + 1
	if start < 0 {
		start = 0
	}
	return start, start + rows
}

// IndexAt maps a row of the rendered box, counted from its top edge, to the
// candidate drawn there.
func (p Popup) IndexAt(row int) (int, bool) {
	n := len(p.state.Candidates)
	h := int(p.cfg.Size.Height) - p.style.Box.GetVerticalFrameSize()
	r := row - p.style.Box.GetMarginTop() - p.style.Box.GetBorderTopSize() - p.style.Box.GetPaddingTop()
	if n == 0 || r < 0 || r >= h {
		return 0, false
	}
	start, end := scrollWindow(n, p.state.Highlighted, h)
	if i := start + r; i < end {
		return i, true
	}
	return 0, false
}
