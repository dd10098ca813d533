package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mentionbox/surface"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	x, y := m.toContent(msg.X, msg.Y)
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if row, ok := m.popupRow(msg.X, msg.Y); ok {
			if i, ok := m.popup.IndexAt(row); ok {
				m.popup.Highlight(i)
				return m.selectMention()
			}
			return m, nil
		}
		if !m.inComponent(msg.X, msg.Y) {
			// A click elsewhere takes focus away, like a blur.
			return m.Blur()
		}
		if y == m.viewport.Height && m.footerHeight() > 0 {
			return m.clickFooter(x)
		}
		if !m.contentInBounds(x, y) {
			return m, nil
		}
		m = m.Focus()
		p, ok := m.screenToCursor(x, y)
		if !ok {
			return m, nil
		}
		if msg.Shift {
			anchor := p
			if r, ok := m.surf.Selection(); ok {
				anchor = r.Start
			} else if c, ok := m.surf.Cursor(); ok {
				anchor = c
			}
			m.mouseAnchor = anchor
			m.check("select", m.surf.SetSelection(surface.Range{Start: anchor, End: p}))
		} else {
			m.mouseAnchor = p
			m.check("click", m.surf.SetCursor(p))
		}
		m.mouseDragging = true
		return m, m.afterKey()

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y = m.clampToContent(x, y)
		p, ok := m.screenToCursor(x, y)
		if !ok {
			return m, nil
		}
		if err := m.surf.Resolve(m.mouseAnchor); err != nil {
			m.mouseDragging = false
			return m, nil
		}
		m.check("select", m.surf.SetSelection(surface.Range{Start: m.mouseAnchor, End: p}))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

// popupRow reports whether a screen cell lies on the popup and which row
// of it.
func (m Model) popupRow(x, y int) (int, bool) {
	p, ok := m.popupRender()
	if !ok {
		return 0, false
	}
	px, py := m.x+p.DX, m.y+p.DY
	size := m.popup.Size()
	if x < px || x >= px+int(size.Width) || y < py || y >= py+int(size.Height) {
		return 0, false
	}
	return y - py, true
}

func (m Model) clickFooter(x int) (Model, tea.Cmd) {
	switch {
	case m.footer.extra.has(x):
		m.toggleExtra()
	case m.footer.cancel.has(x):
		return m, m.cancel()
	case m.footer.submit.has(x):
		if m.submitDisabled || m.submitLoading {
			return m, nil
		}
		return m.submit()
	}
	return m, nil
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

// toContent maps screen cells to cells relative to the first content cell.
func (m Model) toContent(x, y int) (int, int) {
	fx, fy := m.frameOffset()
	return x - m.x - fx, y - m.y - fy
}

func (m Model) inComponent(x, y int) bool {
	w, h := m.outerSize()
	return x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
}

func (m Model) contentInBounds(x, y int) bool {
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampToContent(x, y int) (int, int) {
	return clampInt(x, 0, m.viewport.Width-1), clampInt(y, 0, m.viewport.Height-1)
}
