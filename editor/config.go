package editor

import (
	"log/slog"

	"github.com/iw2rmb/mentionbox/keys"
	"github.com/iw2rmb/mentionbox/mention"
	"github.com/iw2rmb/mentionbox/paste"
	"github.com/iw2rmb/mentionbox/placement"
	"github.com/iw2rmb/mentionbox/surface"
)

const (
	DefaultPlaceholder = "Type a message, shift + enter for a new line"
	DefaultSubmitText  = "Send"
	defaultCancelText  = "Cancel"
	defaultTabWidth    = 4
)

// Config configures the editor Model.
type Config struct {
	// Value is the initial content as a serialized fragment. It may contain
	// mention spans; unknown markup is reduced to its text.
	Value       string
	Placeholder string

	Shortcut        keys.Config
	MentionDisabled bool
	Provider        mention.Provider
	Timing          mention.Timing
	PopupSize       placement.Size
	Placement       placement.Policy
	PopupStyle      *mention.Style
	// DetachedPopup leaves the popup out of View; the host draws it over
	// the whole screen with Model.Overlay.
	DetachedPopup bool

	Surface surface.Options

	AutoFocus bool

	SubmitText        string
	ShowSubmit        bool
	ShowCancel        bool
	SubmitDisabled    bool
	ExtraCheckContent string

	// Callbacks run synchronously inside Update.
	OnSubmit           func(value string)
	OnCancel           func()
	OnExtraCheckChange func(checked bool)
	OnNotice           func(mention.Notice)
	OnChange           func(ChangeEvent)

	Clipboard paste.Clipboard
	KeyMap    KeyMap
	Style     Style
	TabWidth  int

	Logger *slog.Logger
}

// DefaultConfig returns a Config with submit shown and the stock shortcut,
// key map and style.
func DefaultConfig() Config {
	return Config{
		Placeholder: DefaultPlaceholder,
		Shortcut:    keys.DefaultConfig(),
		Timing:      mention.DefaultTiming(),
		PopupSize:   placement.Size{Width: 28, Height: 8},
		Placement:   placement.CellPolicy(),
		SubmitText:  DefaultSubmitText,
		ShowSubmit:  true,
		KeyMap:      DefaultKeyMap(),
		Style:       DefaultStyle(),
		TabWidth:    defaultTabWidth,
	}
}

// normalizeConfig fills the fields a zero Config leaves empty. Style and
// KeyMap are taken as given; start from DefaultConfig to get them.
func normalizeConfig(cfg Config) Config {
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	cfg.Shortcut = cfg.Shortcut.Normalize()
	cfg.Timing = cfg.Timing.Normalize()
	if cfg.PopupSize.Width <= 0 || cfg.PopupSize.Height <= 0 {
		cfg.PopupSize = placement.Size{Width: 28, Height: 8}
	}
	if cfg.Placement == (placement.Policy{}) {
		cfg.Placement = placement.CellPolicy()
	}
	if cfg.SubmitText == "" {
		cfg.SubmitText = DefaultSubmitText
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
