package keys

// Action is the semantic meaning of a key event.
type Action uint8

const (
	Plain Action = iota
	Submit
	BreakLine
	OpenMentionTracking
	MentionNavUp
	MentionNavDown
	MentionNavSelect
	MentionNavCancel
)

func (a Action) String() string {
	switch a {
	case Plain:
		return "plain"
	case Submit:
		return "submit"
	case BreakLine:
		return "break-line"
	case OpenMentionTracking:
		return "open-mention-tracking"
	case MentionNavUp:
		return "mention-nav-up"
	case MentionNavDown:
		return "mention-nav-down"
	case MentionNavSelect:
		return "mention-nav-select"
	case MentionNavCancel:
		return "mention-nav-cancel"
	default:
		return "unknown"
	}
}

// MentionNav reports whether a is one of the popup navigation actions.
func (a Action) MentionNav() bool {
	return a >= MentionNavUp && a <= MentionNavCancel
}

// Classify maps a key-down event to an Action.
//
// While the popup is open, ArrowUp/ArrowDown/Enter/Escape belong to the
// popup. Otherwise MainKey with a line-break modifier breaks the line,
// except with Shift held, which is left to the surface's native line break.
// A line-break modifier outside ExceptShift is also left to the surface.
// MainKey alone submits only when it carries the hardware key code, so an
// input method accepting a composition never submits.
func Classify(ev Event, cfg Config, popupOpen bool) Action {
	if popupOpen {
		switch ev.Key {
		case KeyArrowUp:
			return MentionNavUp
		case KeyArrowDown:
			return MentionNavDown
		case KeyEnter:
			return MentionNavSelect
		case KeyEscape:
			return MentionNavCancel
		}
	}

	if ev.Key == cfg.MainKey {
		if ev.Mods.any(cfg.BreakLine) {
			if ev.Mods.Has(ModShift) || !breaksLine(ev.Mods, cfg) {
				return Plain
			}
			return BreakLine
		}
		if ev.Code == cfg.SubmitCode {
			return Submit
		}
		return Plain
	}

	if ev.Key == KeyAt {
		return OpenMentionTracking
	}
	return Plain
}

// breaksLine reports whether a held modifier is in both BreakLine and
// ExceptShift.
func breaksLine(m Modifiers, cfg Config) bool {
	for _, mod := range cfg.ExceptShift {
		if !m.Has(mod) {
			continue
		}
		for _, b := range cfg.BreakLine {
			if b == mod {
				return true
			}
		}
	}
	return false
}
