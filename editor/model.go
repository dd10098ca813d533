package editor

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mentionbox/mention"
	"github.com/iw2rmb/mentionbox/surface"
)

const autoFocusDelay = 10 * time.Millisecond

var lastModelID int64

// Model is a Bubble Tea component wrapping a mention-aware input surface.
type Model struct {
	id    int64
	cfg   Config
	log   *slog.Logger
	surf  *surface.Surface
	popup mention.Popup

	focused        bool
	extraChecked   bool
	submitDisabled bool
	submitLoading  bool
	notice         string

	// Outer size and screen position of the component; zero size means
	// "fit the content".
	width, height int
	x, y          int
	termW, termH  int

	viewport viewport.Model
	lay      layout
	footer   footerLayout

	lastVersion uint64

	mouseAnchor   surface.Cursor
	mouseDragging bool
}

type autoFocusMsg struct{ id int64 }

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		id:             atomic.AddInt64(&lastModelID, 1),
		cfg:            cfg,
		log:            cfg.Logger.With("component", "editor"),
		submitDisabled: cfg.SubmitDisabled,
		viewport:       viewport.New(0, 0),
	}
	m.surf = m.parseValue(cfg.Value)
	m.popup = m.newPopup()
	m.rebuild()
	return m
}

func (m Model) parseValue(v string) *surface.Surface {
	s, err := surface.Parse(v, m.cfg.Surface)
	if err != nil {
		m.log.Warn("initial value not parsed; starting empty", "err", err)
		return surface.New(m.cfg.Surface)
	}
	return s
}

func (m Model) newPopup() mention.Popup {
	return mention.NewPopup(mention.PopupConfig{
		Provider:  m.cfg.Provider,
		Timing:    m.cfg.Timing,
		Placement: m.cfg.Placement,
		Size:      m.cfg.PopupSize,
		Style:     m.cfg.PopupStyle,
		Logger:    m.cfg.Logger,
	})
}

func (m Model) Init() tea.Cmd {
	if !m.cfg.AutoFocus {
		return nil
	}
	id := m.id
	return tea.Tick(autoFocusDelay, func(time.Time) tea.Msg { return autoFocusMsg{id: id} })
}

// Surface returns the live surface. Hosts that mutate it directly should
// send any message through Update before the next View.
func (m Model) Surface() *surface.Surface { return m.surf }

// Value returns the serialized content, as passed to OnSubmit.
func (m Model) Value() string { return m.surf.Serialize() }

// PlainText returns the content with mentions as their labels.
func (m Model) PlainText() string { return m.surf.PlainText() }

// SetValue replaces the content. Any open popup is dropped.
func (m Model) SetValue(v string) Model {
	m.surf = m.parseValue(v)
	m.popup = m.newPopup()
	m.notice = ""
	m.rebuild()
	m.followCursor()
	return m
}

func (m Model) PopupState() mention.State { return m.popup.State() }

func (m Model) ExtraChecked() bool { return m.extraChecked }

func (m Model) SetSubmitDisabled(v bool) Model {
	m.submitDisabled = v
	m.rebuild()
	return m
}

func (m Model) SetSubmitLoading(v bool) Model {
	m.submitLoading = v
	m.rebuild()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.rebuild()
	m.followCursor()
	return m
}

// SetPosition records where the host draws the component on screen. It is
// used for popup placement and mouse hit-testing.
func (m Model) SetPosition(x, y int) Model {
	m.x = x
	m.y = y
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuild()
		m.followCursor()
	}
	return m
}

// Blur removes focus and closes the mention popup.
func (m Model) Blur() (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.focused = false
	m.mouseDragging = false
	cmd := m.popup.Close()
	m.rebuild()
	return m, cmd
}

func (m Model) Focused() bool { return m.focused }

// sync rebuilds the view when the surface changed since the last build.
func (m *Model) sync() {
	if m.surf.Version() == m.lastVersion {
		return
	}
	m.rebuild()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.surf))
	}
}

func (m *Model) followCursor() {
	c, ok := m.surf.Cursor()
	if !ok {
		return
	}
	s, ok := m.lay.find(c)
	if !ok {
		return
	}
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if s.y < y {
		m.viewport.SetYOffset(s.y)
		return
	}
	if s.y >= y+h {
		m.viewport.SetYOffset(s.y - h + 1)
	}
}
