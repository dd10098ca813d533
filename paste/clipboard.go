package paste

import "github.com/atotto/clipboard"

// Clipboard provides clipboard reads for paste shortcuts.
//
// Read failures are reported to the caller and never crash the UI.
type Clipboard interface {
	ReadText() (string, error)
}

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

// Static is a fixed clipboard, useful for tests and headless hosts.
type Static string

func (s Static) ReadText() (string, error) { return string(s), nil }
