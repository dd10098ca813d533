package editor

import (
	"math"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/mentionbox/placement"
)

type popupRender struct {
	View string
	// DX, DY locate the popup relative to the component's top-left corner.
	DX, DY int
}

// placementInput is the caret geometry in screen cells.
func (m Model) placementInput() placement.Input {
	fx, fy := m.frameOffset()
	cx, cy := 0, 0
	if c, ok := m.surf.Cursor(); ok {
		if s, ok := m.lay.find(c); ok {
			cx, cy = s.x, s.y-m.viewport.YOffset
		}
	}
	w, h := m.outerSize()
	surf := m.surfaceRect(w, h)
	vp := surf
	if m.termW > 0 && m.termH > 0 {
		vp = placement.Rect{Width: float64(m.termW), Height: float64(m.termH)}
	}
	return placement.Input{
		Cursor:   placement.Rect{X: float64(m.x + fx + cx), Y: float64(m.y + fy + cy), Width: 1, Height: 1},
		Surface:  surf,
		Viewport: vp,
	}
}

func (m Model) surfaceRect(w, h int) placement.Rect {
	return placement.Rect{X: float64(m.x), Y: float64(m.y), Width: float64(w), Height: float64(h)}
}

// popupRender returns the popup box and where it goes. The offset was
// computed against the component's rectangle, so it follows the component
// when the host moves it.
func (m Model) popupRender() (popupRender, bool) {
	if m.cfg.MentionDisabled || !m.focused || !m.popup.Visible() {
		return popupRender{}, false
	}
	st := m.popup.State()
	w, h := m.outerSize()
	p := st.Offset.Apply(m.surfaceRect(w, h), m.popup.Size())
	return popupRender{
		View: m.popup.View(),
		DX:   int(math.Round(p.X)) - m.x,
		DY:   int(math.Round(p.Y)) - m.y,
	}, true
}

// Overlay draws the popup over a full-screen view rendered by the host,
// where the component was drawn at its SetPosition coordinates. It pairs
// with Config.DetachedPopup, for popups that extend past the component.
func (m Model) Overlay(screen string) string {
	p, ok := m.popupRender()
	if !ok {
		return screen
	}
	return compositePopup(p.View, screen, m.x+p.DX, m.y+p.DY)
}

// PopupVisible reports whether the popup is drawn.
func (m Model) PopupVisible() bool {
	_, ok := m.popupRender()
	return ok
}

func compositePopup(fg, bg string, x, y int) string {
	return overlay.Composite(fg, bg, overlay.Left, overlay.Top, max(x, 0), max(y, 0))
}
