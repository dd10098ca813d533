package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/mentionbox/internal/grapheme"
)

// rebuild lays the surface out for the current size and refreshes the
// viewport content.
func (m *Model) rebuild() {
	inner := m.innerWidth()
	m.lay = buildLayout(m.surf.Nodes(), inner, m.cfg.TabWidth)

	var rows []string
	if m.surf.PlainText() == "" {
		rows = m.renderPlaceholder(inner)
	} else {
		rows = m.renderRows()
	}

	w := inner
	if w <= 0 {
		w = m.naturalWidth()
	}
	m.footer = m.layoutFooter(w)
	m.viewport.Width = w
	m.viewport.Height = m.contentHeight(len(rows))
	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.lastVersion = m.surf.Version()
}

func (m Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-m.cfg.Style.Frame.GetHorizontalFrameSize(), 1)
}

// naturalWidth is the content width used when no width was set.
func (m Model) naturalWidth() int {
	w := m.lay.maxWidth() + 1
	if m.surf.PlainText() == "" {
		w = max(w, runewidth.StringWidth(m.cfg.Placeholder)+1)
	}
	return max(w, m.footerMinWidth())
}

func (m Model) contentHeight(rows int) int {
	if m.height <= 0 {
		return max(rows, 1)
	}
	return max(m.height-m.cfg.Style.Frame.GetVerticalFrameSize()-m.footerHeight(), 1)
}

func (m Model) renderRows() []string {
	st := m.cfg.Style

	caret, hasCaret := stop{}, false
	if m.focused {
		if c, ok := m.surf.Cursor(); ok {
			caret, hasCaret = m.lay.find(c)
		}
	}
	selA, selB := 0, 0
	if r, ok := m.surf.Selection(); ok {
		a, okA := m.lay.find(r.Start)
		b, okB := m.lay.find(r.End)
		if okA && okB {
			selA, selB = min(a.step, b.step), max(a.step, b.step)
		}
	}

	out := make([]string, 0, len(m.lay.rows))
	for y, row := range m.lay.rows {
		var sb strings.Builder
		used := 0
		for _, c := range row {
			cs := st.Text
			if c.token {
				cs = st.Mention
			}
			if c.step >= selA && c.step < selB {
				cs = st.Selection.Inherit(cs)
			}
			if hasCaret && caret.y == y && caret.x == c.x {
				cs = st.Cursor.Inherit(cs)
			}
			sb.WriteString(cs.Render(c.text))
			used = c.x + c.width
		}
		if hasCaret && caret.y == y && caret.x >= used {
			sb.WriteString(st.Cursor.Render(" "))
		}
		out = append(out, sb.String())
	}
	return out
}

// renderPlaceholder draws the placeholder with the caret on its first cell.
func (m Model) renderPlaceholder(width int) []string {
	st := m.cfg.Style
	text := m.cfg.Placeholder
	var s string
	if m.focused {
		gs := grapheme.Split(text)
		head, rest := " ", ""
		if len(gs) > 0 {
			head, rest = gs[0], strings.Join(gs[1:], "")
		}
		s = st.Cursor.Inherit(st.Placeholder).Render(head) + st.Placeholder.Render(rest)
	} else {
		s = st.Placeholder.Render(text)
	}
	if width > 0 {
		s = lipgloss.NewStyle().Width(width).Render(s)
	}
	return strings.Split(s, "\n")
}

func (m Model) View() string {
	view := m.frameView()
	if m.cfg.DetachedPopup {
		return view
	}
	if p, ok := m.popupRender(); ok {
		view = compositePopup(p.View, view, p.DX, p.DY)
	}
	return view
}

func (m Model) frameView() string {
	body := m.viewport.View()
	if f := m.renderFooter(); f != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, f)
	}
	return m.cfg.Style.Frame.Render(body)
}

// frameOffset is the distance from the component's top-left corner to its
// first content cell.
func (m Model) frameOffset() (x, y int) {
	fs := m.cfg.Style.Frame
	x = fs.GetMarginLeft() + fs.GetBorderLeftSize() + fs.GetPaddingLeft()
	y = fs.GetMarginTop() + fs.GetBorderTopSize() + fs.GetPaddingTop()
	return x, y
}

// outerSize is the rendered size of the component without the popup.
func (m Model) outerSize() (w, h int) {
	fs := m.cfg.Style.Frame
	w, h = m.width, m.height
	if w <= 0 {
		w = m.viewport.Width + fs.GetHorizontalFrameSize()
	}
	if h <= 0 {
		h = m.viewport.Height + m.footerHeight() + fs.GetVerticalFrameSize()
	}
	return w, h
}
