package editor

import "github.com/iw2rmb/mentionbox/paste"

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		// Clipboard failures never crash the UI.
		m.log.Warn("clipboard read failed", "err", err)
		return
	}
	m.pasteText(s)
}

// pasteText inserts the plain-text form of raw at the caret, replacing the
// selection.
func (m *Model) pasteText(raw string) {
	text := paste.PlainText(paste.Payload{paste.MIMEPlain: raw})
	m.check("paste", firstErr(paste.Apply(m.surf, text)))
}
