package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings that are not part of the
// submit/line-break shortcut. Those are classified by the keys package.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down   key.Binding
	ShiftLeft, ShiftRight   key.Binding
	Home, End               key.Binding
	ShiftHome, ShiftEnd     key.Binding
	SelectAll               key.Binding
	Backspace, Delete       key.Binding
	Paste                   key.Binding
	Cancel                  key.Binding
	ToggleExtra             key.Binding
	Submit, BreakLine, Tab  key.Binding // help text only
	MentionUp, MentionDown  key.Binding // help text only
	MentionPick, MentionEsc key.Binding // help text only
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+home"), key.WithHelp("home", "start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+end", "ctrl+e"), key.WithHelp("end", "end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),

		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ToggleExtra: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle option")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		BreakLine: key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "new line")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		MentionUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous member")),
		MentionDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next member")),
		MentionPick: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mention")),
		MentionEsc:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Submit, km.BreakLine, km.Paste, km.Cancel}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Submit, km.BreakLine, km.Tab, km.Cancel},
		{km.Left, km.Right, km.Up, km.Down, km.Home, km.End},
		{km.ShiftLeft, km.ShiftRight, km.ShiftHome, km.ShiftEnd, km.SelectAll},
		{km.Backspace, km.Delete, km.Paste, km.ToggleExtra},
		{km.MentionUp, km.MentionDown, km.MentionPick, km.MentionEsc},
	}
}

// Help returns the bindings that apply in the current state: popup
// navigation while the mention popup is open, editing keys otherwise.
func (m Model) Help() KeyMap {
	km := m.cfg.KeyMap
	if !m.popup.Active() {
		km.MentionUp.SetEnabled(false)
		km.MentionDown.SetEnabled(false)
		km.MentionPick.SetEnabled(false)
		km.MentionEsc.SetEnabled(false)
		return km
	}
	km.Submit.SetEnabled(false)
	km.Cancel.SetEnabled(false)
	km.Up.SetEnabled(false)
	km.Down.SetEnabled(false)
	return km
}
