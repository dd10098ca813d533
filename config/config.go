// Package config loads mentionbox settings from a YAML or JSONC file and
// applies them to an editor.Config.
//
// The file only carries plain settings: shortcuts, popup timing and size,
// footer labels and logging. Callbacks, the member provider and styles stay
// in code.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/mentionbox/editor"
	"github.com/iw2rmb/mentionbox/keys"
	"github.com/iw2rmb/mentionbox/placement"
)

// ErrUnknownFormat is returned for files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is the encoding of a config file.
type Format string

const (
	YAML  Format = "yaml"
	JSONC Format = "jsonc"
)

// File is the on-disk configuration. Zero fields keep the editor defaults.
type File struct {
	Placeholder     string `yaml:"placeholder" json:"placeholder"`
	SubmitText      string `yaml:"submit_text" json:"submit_text"`
	ShowSubmit      *bool  `yaml:"show_submit" json:"show_submit"`
	ShowCancel      bool   `yaml:"show_cancel" json:"show_cancel"`
	ExtraCheck      string `yaml:"extra_check" json:"extra_check"`
	AutoFocus       bool   `yaml:"auto_focus" json:"auto_focus"`
	MentionDisabled bool   `yaml:"mention_disabled" json:"mention_disabled"`
	TabWidth        int    `yaml:"tab_width" json:"tab_width"`

	// KeepSingleTrailingBreak turns off the doubled break at the end of the
	// content.
	KeepSingleTrailingBreak bool `yaml:"keep_single_trailing_break" json:"keep_single_trailing_break"`

	Shortcut ShortcutFile `yaml:"shortcut" json:"shortcut"`
	Popup    PopupFile    `yaml:"popup" json:"popup"`
	Log      LogFile      `yaml:"log" json:"log"`
}

// ShortcutFile mirrors keys.Config with modifiers by name.
type ShortcutFile struct {
	MainKey     string   `yaml:"main_key" json:"main_key"`
	BreakLine   []string `yaml:"break_line" json:"break_line"`
	ExceptShift []string `yaml:"except_shift" json:"except_shift"`
	SubmitCode  int      `yaml:"submit_code" json:"submit_code"`
}

// PopupFile holds the mention popup size and timing. Durations use
// time.ParseDuration syntax ("300ms"); "0s" disables a delay.
type PopupFile struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	FetchDebounce    string `yaml:"fetch_debounce" json:"fetch_debounce"`
	PlaceDebounce    string `yaml:"place_debounce" json:"place_debounce"`
	CloseGrace       string `yaml:"close_grace" json:"close_grace"`
	SelectCloseDelay string `yaml:"select_close_delay" json:"select_close_delay"`
}

type LogFile struct {
	Level string `yaml:"level" json:"level"`
	Path  string `yaml:"path" json:"path"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsonc":
		return JSONC, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads and parses the config file at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data in the given format. JSONC accepts comments and
// trailing commas.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case JSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &f, nil
}

// Apply overlays the file's settings on cfg.
func (f *File) Apply(cfg editor.Config) (editor.Config, error) {
	if f.Placeholder != "" {
		cfg.Placeholder = f.Placeholder
	}
	if f.SubmitText != "" {
		cfg.SubmitText = f.SubmitText
	}
	if f.ShowSubmit != nil {
		cfg.ShowSubmit = *f.ShowSubmit
	}
	cfg.ShowCancel = cfg.ShowCancel || f.ShowCancel
	if f.ExtraCheck != "" {
		cfg.ExtraCheckContent = f.ExtraCheck
	}
	cfg.AutoFocus = cfg.AutoFocus || f.AutoFocus
	cfg.MentionDisabled = cfg.MentionDisabled || f.MentionDisabled
	if f.TabWidth > 0 {
		cfg.TabWidth = f.TabWidth
	}
	if f.KeepSingleTrailingBreak {
		cfg.Surface.KeepSingleTrailingBreak = true
	}

	sc, err := f.Shortcut.keys(cfg.Shortcut)
	if err != nil {
		return cfg, fmt.Errorf("shortcut: %w", err)
	}
	cfg.Shortcut = sc

	if f.Popup.Width > 0 && f.Popup.Height > 0 {
		cfg.PopupSize = placement.Size{Width: float64(f.Popup.Width), Height: float64(f.Popup.Height)}
	}
	timing := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"popup.fetch_debounce", f.Popup.FetchDebounce, &cfg.Timing.FetchDebounce},
		{"popup.place_debounce", f.Popup.PlaceDebounce, &cfg.Timing.PlaceDebounce},
		{"popup.close_grace", f.Popup.CloseGrace, &cfg.Timing.CloseGrace},
		{"popup.select_close_delay", f.Popup.SelectCloseDelay, &cfg.Timing.SelectCloseDelay},
	}
	for _, tm := range timing {
		d, ok, err := duration(tm.raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", tm.name, err)
		}
		if ok {
			*tm.dst = d
		}
	}
	return cfg, nil
}

// duration parses a configured delay. An explicit zero becomes -1 so that
// mention.Timing keeps it at zero instead of restoring the default.
func duration(raw string) (time.Duration, bool, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, err
	}
	if d < 0 {
		return 0, false, fmt.Errorf("negative duration %q", raw)
	}
	if d == 0 {
		d = -1
	}
	return d, true, nil
}

func (s ShortcutFile) keys(base keys.Config) (keys.Config, error) {
	if s.MainKey != "" {
		base.MainKey = s.MainKey
	}
	if s.SubmitCode != 0 {
		base.SubmitCode = s.SubmitCode
	}
	if len(s.BreakLine) > 0 {
		mods, err := modifiers(s.BreakLine)
		if err != nil {
			return base, fmt.Errorf("break_line: %w", err)
		}
		base.BreakLine = mods
		base.ExceptShift = nil
	}
	if len(s.ExceptShift) > 0 {
		mods, err := modifiers(s.ExceptShift)
		if err != nil {
			return base, fmt.Errorf("except_shift: %w", err)
		}
		base.ExceptShift = mods
	}
	return base.Normalize(), nil
}

func modifiers(names []string) ([]keys.Modifier, error) {
	out := make([]keys.Modifier, 0, len(names))
	for _, n := range names {
		m, ok := keys.ParseModifier(n)
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", n)
		}
		out = append(out, m)
	}
	return out, nil
}

// LogLevel returns the configured level, Info when unset.
func (f *File) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if f.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(f.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
