package editor

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mentionbox/keys"
	"github.com/iw2rmb/mentionbox/mention"
	"github.com/iw2rmb/mentionbox/surface"
)

// SubmitMsg is emitted after OnSubmit with the submitted value.
type SubmitMsg struct {
	Value string
}

// CancelMsg is emitted after OnCancel.
type CancelMsg struct{}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case autoFocusMsg:
		if msg.id == m.id {
			m = m.Focus()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		return m, nil
	case tea.BlurMsg:
		return m.Blur()
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case mention.NoticeMsg:
		m.notice = msg.Notice.Message
		if m.cfg.OnNotice != nil {
			m.cfg.OnNotice(msg.Notice)
		}
		m.rebuild()
		return m, nil
	default:
		m.popup, cmd = m.popup.Update(msg)
	}
	m.sync()
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.notice = ""

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.pasteText(string(msg.Runes))
		return m, m.afterKey()
	}

	ev := eventFromKey(msg)
	popupOpen := !m.cfg.MentionDisabled && m.popup.Active()
	action := keys.Classify(ev, m.cfg.Shortcut, popupOpen)

	switch action {
	case keys.MentionNavUp:
		m.popup.Prev()
		return m, nil
	case keys.MentionNavDown:
		m.popup.Next()
		return m, nil
	case keys.MentionNavSelect:
		return m.selectMention()
	case keys.MentionNavCancel:
		return m, m.popup.Close()

	case keys.Submit:
		return m.submit()

	case keys.BreakLine:
		if r, ok := m.surf.ActiveRange(); ok {
			m.check("line break", firstErr(m.surf.InsertLineBreak(r)))
		}

	case keys.OpenMentionTracking:
		if !m.cfg.MentionDisabled {
			m.popup.Arm()
		}
		m.check("insert", firstErr(m.surf.InsertText(ev.Key)))

	default:
		if cmd, handled := m.plainKey(msg, ev); handled {
			return m, cmd
		}
	}
	return m, m.afterKey()
}

// plainKey applies the default behavior of keys the classifier leaves
// alone. handled reports that the key ended the event (no mention tracking
// follows).
func (m *Model) plainKey(msg tea.KeyMsg, ev keys.Event) (cmd tea.Cmd, handled bool) {
	km := m.cfg.KeyMap

	if ev.Key == m.cfg.Shortcut.MainKey {
		// Shift+MainKey is the surface's own line break: a plain "\n" with
		// no trailing duplicate. Without modifiers it is an input-method
		// confirmation and does nothing.
		if ev.Mods.Has(keys.ModShift) {
			m.check("insert", firstErr(m.surf.InsertText("\n")))
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, km.Cancel):
		return m.cancel(), true
	case key.Matches(msg, km.ToggleExtra):
		m.toggleExtra()
		return nil, true

	case key.Matches(msg, km.Left):
		m.move(surface.Move{Dir: surface.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(surface.Move{Dir: surface.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		m.move(surface.Move{Dir: surface.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.move(surface.Move{Dir: surface.DirRight, Extend: true})
	case key.Matches(msg, km.Home):
		m.move(surface.Move{Dir: surface.DirStart})
	case key.Matches(msg, km.End):
		m.move(surface.Move{Dir: surface.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.move(surface.Move{Dir: surface.DirStart, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.move(surface.Move{Dir: surface.DirEnd, Extend: true})
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
	case key.Matches(msg, km.SelectAll):
		m.surf.SelectAll()

	case key.Matches(msg, km.Backspace):
		m.check("delete", firstErr(m.surf.DeleteBackward()))
	case key.Matches(msg, km.Delete):
		m.check("delete", firstErr(m.surf.DeleteForward()))
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	case msg.Type == tea.KeyTab:
		m.check("insert", firstErr(m.surf.InsertText("\t")))
	case msg.Type == tea.KeySpace:
		m.check("insert", firstErr(m.surf.InsertText(" ")))
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		// Fast typing can deliver several runes in one message.
		if !m.cfg.MentionDisabled && strings.ContainsRune(string(msg.Runes), '@') {
			m.popup.Arm()
		}
		m.check("insert", firstErr(m.surf.InsertText(string(msg.Runes))))
	}
	return nil, false
}

// afterKey is the key-up phase: it runs after the edit has been applied and
// decides whether the mention popup tracks the text before the caret.
func (m *Model) afterKey() tea.Cmd {
	m.sync()
	if m.cfg.MentionDisabled {
		return nil
	}
	if m.popup.Armed() {
		if tr := mention.DetectAt(m.surf); tr.Active {
			return m.popup.Track(tr.SearchKey, m.placementInput())
		}
	}
	return m.popup.Close()
}

func (m Model) selectMention() (Model, tea.Cmd) {
	cand, ok := m.popup.Selected()
	if !ok {
		return m, nil
	}
	c, ok := m.surf.Cursor()
	if !ok {
		return m, m.popup.Close()
	}
	tr := mention.DetectAt(m.surf)
	tok := surface.MentionNode(cand.Name, cand.DisplayName)
	if _, err := m.surf.ReplaceBefore(c, tr.Len(), tok); err != nil {
		m.log.Warn("mention not inserted", "user", cand.Name, "err", err)
		return m, m.popup.Close()
	}
	m.log.Debug("mention inserted", "user", cand.Name, "key", tr.SearchKey)
	cmd := m.popup.Dismiss()
	m.sync()
	return m, cmd
}

// submit hands the serialized content to the host and blurs. The surface
// is left as is; clearing it is up to the host.
func (m Model) submit() (Model, tea.Cmd) {
	value := m.surf.Serialize()
	m.log.Debug("submit", "bytes", len(value))
	m, blurCmd := m.Blur()
	if m.cfg.OnSubmit != nil {
		m.cfg.OnSubmit(value)
	}
	return m, tea.Batch(blurCmd, func() tea.Msg { return SubmitMsg{Value: value} })
}

func (m *Model) cancel() tea.Cmd {
	m.log.Debug("cancel")
	if m.cfg.OnCancel != nil {
		m.cfg.OnCancel()
	}
	return func() tea.Msg { return CancelMsg{} }
}

func (m *Model) toggleExtra() {
	if m.cfg.ExtraCheckContent == "" {
		return
	}
	m.extraChecked = !m.extraChecked
	if m.cfg.OnExtraCheckChange != nil {
		m.cfg.OnExtraCheckChange(m.extraChecked)
	}
	m.rebuild()
}

func (m *Model) move(mv surface.Move) {
	m.check("move", firstErr(m.surf.Move(mv)))
}

func (m *Model) moveVertical(dy int) {
	c, ok := m.surf.Cursor()
	if !ok {
		return
	}
	s, ok := m.lay.vertical(c, dy)
	if !ok {
		dir := surface.DirStart
		if dy > 0 {
			dir = surface.DirEnd
		}
		m.move(surface.Move{Dir: dir})
		return
	}
	m.check("move", m.surf.SetCursor(s.cur))
}

// check logs recoverable surface errors. A missing caret is routine (the
// host may have cleared it) and is not logged.
func (m *Model) check(op string, err error) {
	if err == nil || errors.Is(err, surface.ErrNoCursor) {
		return
	}
	m.log.Warn("edit failed", "op", op, "err", err)
}

func firstErr(_ surface.Cursor, err error) error { return err }
