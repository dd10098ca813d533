package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mentionbox/keys"
)

// lineFeedCode is the code a terminal reports for ctrl+j. It is an Enter
// that never submits.
const lineFeedCode = 10

// eventFromKey translates a terminal key press into a keys.Event.
//
// Terminals report Enter as CR (13) and ctrl+j as LF (10). Shift+Enter is
// indistinguishable from Enter on most terminals; alt+enter and ctrl+j carry
// the line-break modifiers instead.
func eventFromKey(msg tea.KeyMsg) keys.Event {
	var mods keys.Modifiers
	if msg.Alt {
		mods = mods.With(keys.ModAlt)
	}

	switch msg.Type {
	case tea.KeyEnter:
		return keys.Event{Key: keys.KeyEnter, Mods: mods, Code: keys.EnterKeyCode}
	case tea.KeyCtrlJ:
		return keys.Event{Key: keys.KeyEnter, Mods: mods.With(keys.ModCtrl), Code: lineFeedCode}
	case tea.KeyEsc:
		return keys.Event{Key: keys.KeyEscape, Mods: mods}
	case tea.KeyUp:
		return keys.Event{Key: keys.KeyArrowUp, Mods: mods}
	case tea.KeyDown:
		return keys.Event{Key: keys.KeyArrowDown, Mods: mods}
	case tea.KeyShiftUp:
		return keys.Event{Key: keys.KeyArrowUp, Mods: mods.With(keys.ModShift)}
	case tea.KeyShiftDown:
		return keys.Event{Key: keys.KeyArrowDown, Mods: mods.With(keys.ModShift)}
	case tea.KeyRunes:
		return keys.Event{Key: string(msg.Runes), Mods: mods}
	case tea.KeySpace:
		return keys.Event{Key: " ", Mods: mods}
	}
	return keys.Event{Key: msg.String(), Mods: mods}
}
