package keys

import "testing"

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()
	none := Modifiers(0)

	cases := []struct {
		name      string
		ev        Event
		popupOpen bool
		want      Action
	}{
		{name: "enter submits", ev: Event{Key: KeyEnter, Code: EnterKeyCode}, want: Submit},
		{name: "composition enter is plain", ev: Event{Key: KeyEnter, Code: 229}, want: Plain},
		{name: "shift enter left to surface", ev: Event{Key: KeyEnter, Mods: none.With(ModShift), Code: EnterKeyCode}, want: Plain},
		{name: "shift ctrl enter left to surface", ev: Event{Key: KeyEnter, Mods: none.With(ModShift).With(ModCtrl), Code: EnterKeyCode}, want: Plain},
		{name: "ctrl enter breaks", ev: Event{Key: KeyEnter, Mods: none.With(ModCtrl), Code: EnterKeyCode}, want: BreakLine},
		{name: "alt enter breaks", ev: Event{Key: KeyEnter, Mods: none.With(ModAlt), Code: EnterKeyCode}, want: BreakLine},
		{name: "meta enter breaks", ev: Event{Key: KeyEnter, Mods: none.With(ModMeta), Code: EnterKeyCode}, want: BreakLine},
		{name: "ctrl line feed breaks", ev: Event{Key: KeyEnter, Mods: none.With(ModCtrl), Code: 10}, want: BreakLine},
		{name: "at opens tracking", ev: Event{Key: KeyAt}, want: OpenMentionTracking},
		{name: "letter is plain", ev: Event{Key: "a"}, want: Plain},
		{name: "arrow without popup is plain", ev: Event{Key: KeyArrowDown}, want: Plain},
		{name: "escape without popup is plain", ev: Event{Key: KeyEscape}, want: Plain},
		{name: "popup up", ev: Event{Key: KeyArrowUp}, popupOpen: true, want: MentionNavUp},
		{name: "popup down", ev: Event{Key: KeyArrowDown}, popupOpen: true, want: MentionNavDown},
		{name: "popup enter selects", ev: Event{Key: KeyEnter, Code: EnterKeyCode}, popupOpen: true, want: MentionNavSelect},
		{name: "popup escape cancels", ev: Event{Key: KeyEscape}, popupOpen: true, want: MentionNavCancel},
		{name: "popup at keeps tracking", ev: Event{Key: KeyAt}, popupOpen: true, want: OpenMentionTracking},
	}

	for _, tc := range cases {
		if got := Classify(tc.ev, cfg, tc.popupOpen); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClassify_CustomMainKey(t *testing.T) {
	cfg := Config{MainKey: "Tab", BreakLine: []Modifier{ModCtrl}, SubmitCode: 9}.Normalize()

	if got := Classify(Event{Key: "Tab", Code: 9}, cfg, false); got != Submit {
		t.Fatalf("tab: got %v, want %v", got, Submit)
	}
	if got := Classify(Event{Key: "Tab", Mods: Modifiers(0).With(ModCtrl), Code: 9}, cfg, false); got != BreakLine {
		t.Fatalf("ctrl+tab: got %v, want %v", got, BreakLine)
	}
	if got := Classify(Event{Key: "Tab", Mods: Modifiers(0).With(ModAlt), Code: 9}, cfg, false); got != Submit {
		t.Fatalf("alt+tab (alt not configured): got %v, want %v", got, Submit)
	}
	if got := Classify(Event{Key: KeyEnter, Code: EnterKeyCode}, cfg, false); got != Plain {
		t.Fatalf("enter with tab main key: got %v, want %v", got, Plain)
	}
}

func TestClassify_ExceptShiftLimitsBreakLine(t *testing.T) {
	cfg := Config{BreakLine: []Modifier{ModCtrl, ModAlt}, ExceptShift: []Modifier{ModCtrl}}.Normalize()
	none := Modifiers(0)

	if got := Classify(Event{Key: KeyEnter, Mods: none.With(ModCtrl), Code: EnterKeyCode}, cfg, false); got != BreakLine {
		t.Fatalf("ctrl+enter: got %v, want %v", got, BreakLine)
	}
	// Alt is a line-break modifier the input leaves to the surface.
	if got := Classify(Event{Key: KeyEnter, Mods: none.With(ModAlt), Code: EnterKeyCode}, cfg, false); got != Plain {
		t.Fatalf("alt+enter: got %v, want %v", got, Plain)
	}
	if got := Classify(Event{Key: KeyEnter, Mods: none.With(ModAlt).With(ModCtrl), Code: EnterKeyCode}, cfg, false); got != BreakLine {
		t.Fatalf("ctrl+alt+enter: got %v, want %v", got, BreakLine)
	}
}

func TestClassify_Pure(t *testing.T) {
	cfg := DefaultConfig()
	ev := Event{Key: KeyEnter, Mods: Modifiers(0).With(ModAlt), Code: EnterKeyCode}
	first := Classify(ev, cfg, false)
	for i := 0; i < 3; i++ {
		if got := Classify(ev, cfg, false); got != first {
			t.Fatalf("call %d: got %v, want %v", i, got, first)
		}
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := Config{}.Normalize()
	def := DefaultConfig()
	if cfg.MainKey != def.MainKey || cfg.SubmitCode != def.SubmitCode {
		t.Fatalf("normalized=%+v, want defaults %+v", cfg, def)
	}
	if len(cfg.BreakLine) != 4 || len(cfg.ExceptShift) != 3 {
		t.Fatalf("modifier sets=%v/%v, want 4/3", cfg.BreakLine, cfg.ExceptShift)
	}

	cfg = Config{BreakLine: []Modifier{ModShift, ModAlt}}.Normalize()
	if len(cfg.ExceptShift) != 1 || cfg.ExceptShift[0] != ModAlt {
		t.Fatalf("except shift=%v, want [alt]", cfg.ExceptShift)
	}
}

func TestParseModifier(t *testing.T) {
	cases := map[string]Modifier{
		"shift":    ModShift,
		"shiftKey": ModShift,
		"Meta":     ModMeta,
		"ctrlKey":  ModCtrl,
		"control":  ModCtrl,
		"ALT":      ModAlt,
	}
	for name, want := range cases {
		got, ok := ParseModifier(name)
		if !ok || got != want {
			t.Fatalf("ParseModifier(%q)=(%v,%v), want (%v,true)", name, got, ok, want)
		}
	}
	if _, ok := ParseModifier("hyper"); ok {
		t.Fatalf("ParseModifier(hyper) should fail")
	}
}
