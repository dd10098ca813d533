package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_RendersMentionsAndBreaks(t *testing.T) {
	cfg := testConfig()
	cfg.ShowSubmit = false
	cfg.Value = "hi " + aliceSpan + "\nok"
	m := New(cfg)

	got := viewLines(m)
	want := []string{"hi @Alice", "ok"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("view lines: got %q, want %q", got, want)
	}
}

func TestView_CollapsesLoneTrailingBreak(t *testing.T) {
	cfg := testConfig()
	cfg.ShowSubmit = false

	cfg.Value = "ab\n"
	if got := viewLines(New(cfg)); len(got) != 1 {
		t.Fatalf("lines for a single trailing break: got %q, want 1 line", got)
	}
	cfg.Value = "ab\n\n"
	if got := viewLines(New(cfg)); len(got) != 2 {
		t.Fatalf("lines for a doubled trailing break: got %q, want 2 lines", got)
	}
}

func TestView_WrapsToWidth(t *testing.T) {
	cfg := testConfig()
	cfg.ShowSubmit = false
	cfg.Value = "abcdefg"
	m := New(cfg).SetSize(5, 0)

	got := viewLines(m)
	want := []string{"abcde", "fg"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("view lines: got %q, want %q", got, want)
	}
}

func TestView_ScrollsToCaret(t *testing.T) {
	cfg := testConfig()
	cfg.ShowSubmit = false
	cfg.Value = "1\n2\n3\n4\n5"
	m := New(cfg).SetSize(10, 2).Focus()

	got := viewLines(m)
	if len(got) != 2 || got[1] != "5" {
		t.Fatalf("view lines with caret at end: got %q, want last row visible", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	got = viewLines(m)
	if got[0] != "1" {
		t.Fatalf("view lines with caret at start: got %q, want first row visible", got)
	}
}

func TestView_Placeholder(t *testing.T) {
	cfg := testConfig()
	cfg.ShowSubmit = false
	m := New(cfg)
	if got := m.View(); !strings.Contains(got, DefaultPlaceholder) {
		t.Fatalf("placeholder missing from view: %q", got)
	}

	m = typeText(t, m.Focus(), "x")
	if got := m.View(); strings.Contains(got, DefaultPlaceholder) {
		t.Fatalf("placeholder shown over content: %q", got)
	}
}

func TestView_Footer(t *testing.T) {
	cfg := testConfig()
	cfg.ShowCancel = true
	cfg.ExtraCheckContent = "Urgent"
	m := New(cfg).SetSize(30, 0)

	lines := viewLines(m)
	footer := lines[len(lines)-1]
	if !strings.HasPrefix(footer, "[ ] Urgent") || !strings.HasSuffix(footer, "Cancel Send") {
		t.Fatalf("footer: got %q", footer)
	}

	m = press(t, m.Focus(), tea.KeyMsg{Type: tea.KeyCtrlT})
	m = m.SetSubmitLoading(true)
	lines = viewLines(m)
	footer = lines[len(lines)-1]
	if !strings.HasPrefix(footer, "[x] Urgent") || !strings.HasSuffix(footer, "Send…") {
		t.Fatalf("footer after toggle and loading: got %q", footer)
	}
}

func TestOverlay_DrawsPopupOverScreen(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = prefixProvider(testMembers)
	cfg.DetachedPopup = true
	m := newFocused(cfg).SetSize(40, 3).SetPosition(0, 2)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = typeText(t, m, "@al")

	if strings.Contains(m.View(), "Albert") {
		t.Fatalf("detached popup drawn inside the component view")
	}
	row := strings.Repeat(" ", 80)
	screen := strings.TrimSuffix(strings.Repeat(row+"\n", 24), "\n")
	out := m.Overlay(screen)
	for _, name := range []string{"Alice", "Alan", "Albert"} {
		if !strings.Contains(out, name) {
			t.Fatalf("overlay missing %q:\n%s", name, out)
		}
	}

	m, cmd := m.Blur()
	m = drain(t, m, cmd)
	if got := m.Overlay(screen); got != screen {
		t.Fatalf("overlay changed the screen after blur")
	}
}
