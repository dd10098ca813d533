package editor

import "github.com/iw2rmb/mentionbox/surface"

// ChangeEvent describes the surface after an edit or caret move.
type ChangeEvent struct {
	Version   uint64
	Cursor    surface.Cursor
	HasCursor bool
	Selection struct {
		Range  surface.Range
		Active bool
	}

	// Value is the serialized content; Text is its plain-text form.
	Value string
	Text  string
}

func buildChangeEvent(s *surface.Surface) ChangeEvent {
	ev := ChangeEvent{
		Version: s.Version(),
		Value:   s.Serialize(),
		Text:    s.PlainText(),
	}
	ev.Cursor, ev.HasCursor = s.Cursor()
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
