package keys

import "strings"

// Key names understood by Classify.
const (
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyAt        = "@"
)

// EnterKeyCode is the key code of a hardware Enter press. Input methods
// confirm compositions with Enter events that carry a different code.
const EnterKeyCode = 13

// Modifier is a modifier key.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModMeta
	ModCtrl
	ModAlt
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

func (m Modifiers) Has(mod Modifier) bool { return uint8(m)&uint8(mod) != 0 }

// With returns m with mod added.
func (m Modifiers) With(mod Modifier) Modifiers { return Modifiers(uint8(m) | uint8(mod)) }

func (m Modifiers) any(set []Modifier) bool {
	for _, mod := range set {
		if m.Has(mod) {
			return true
		}
	}
	return false
}

func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "shift"
	case ModMeta:
		return "meta"
	case ModCtrl:
		return "ctrl"
	case ModAlt:
		return "alt"
	default:
		return "unknown"
	}
}

// ParseModifier maps a modifier name ("shift", "meta", "ctrl", "alt") to its
// Modifier. Names are case-insensitive; "shiftKey"-style names are accepted.
func ParseModifier(name string) (Modifier, bool) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "key")
	switch name {
	case "shift":
		return ModShift, true
	case "meta", "cmd", "super":
		return ModMeta, true
	case "ctrl", "control":
		return ModCtrl, true
	case "alt", "option":
		return ModAlt, true
	default:
		return 0, false
	}
}

// Event is a key-down event.
type Event struct {
	Key  string
	Mods Modifiers
	Code int
}

// Config is the shortcut configuration. It is treated as immutable.
type Config struct {
	// MainKey submits when pressed alone and breaks the line with a modifier.
	MainKey string
	// BreakLine lists the modifiers that turn MainKey into a line break.
	BreakLine []Modifier
	// ExceptShift is the subset of BreakLine handled by the input itself.
	// Other BreakLine modifiers, Shift included, are left to the surface.
	// Empty means BreakLine without Shift.
	ExceptShift []Modifier
	// SubmitCode is the key code a submitting MainKey press must carry.
	SubmitCode int
}

// DefaultConfig returns Enter with shift/meta/ctrl/alt as line-break
// modifiers.
func DefaultConfig() Config {
	return Config{
		MainKey:     KeyEnter,
		BreakLine:   []Modifier{ModShift, ModMeta, ModCtrl, ModAlt},
		ExceptShift: []Modifier{ModMeta, ModCtrl, ModAlt},
		SubmitCode:  EnterKeyCode,
	}
}

// Normalize fills zero fields from DefaultConfig.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.MainKey == "" {
		c.MainKey = def.MainKey
	}
	if len(c.BreakLine) == 0 {
		c.BreakLine = def.BreakLine
	}
	if len(c.ExceptShift) == 0 {
		c.ExceptShift = exceptShift(c.BreakLine)
	}
	if c.SubmitCode == 0 {
		c.SubmitCode = def.SubmitCode
	}
	c.BreakLine = append([]Modifier(nil), c.BreakLine...)
	c.ExceptShift = append([]Modifier(nil), c.ExceptShift...)
	return c
}

func exceptShift(mods []Modifier) []Modifier {
	out := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m != ModShift {
			out = append(out, m)
		}
	}
	return out
}
