package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// footerLayout records the clickable spans of the footer row, in content
// cells.
type footerLayout struct {
	extra, cancel, submit span
}

type span struct{ from, to int }

func (s span) has(x int) bool { return s.to > s.from && x >= s.from && x < s.to }

func (m Model) footerHeight() int {
	if m.cfg.ShowSubmit || m.cfg.ShowCancel || m.cfg.ExtraCheckContent != "" || m.notice != "" {
		return 1
	}
	return 0
}

func (m Model) footerParts() (left, cancel, submit string) {
	st := m.cfg.Style
	switch {
	case m.notice != "":
		left = st.Notice.Render(m.notice)
	case m.cfg.ExtraCheckContent != "":
		box := "[ ] "
		if m.extraChecked {
			box = "[x] "
		}
		left = st.Check.Render(box + m.cfg.ExtraCheckContent)
	}
	if m.cfg.ShowCancel {
		cancel = st.Button.Render(defaultCancelText)
	}
	if m.cfg.ShowSubmit {
		label := m.cfg.SubmitText
		bs := st.SubmitButton
		if m.submitLoading {
			label += "…"
			bs = st.DisabledButton
		} else if m.submitDisabled {
			bs = st.DisabledButton
		}
		submit = bs.Render(label)
	}
	return left, cancel, submit
}

func (m Model) footerMinWidth() int {
	left, cancel, submit := m.footerParts()
	w := lipgloss.Width(left) + lipgloss.Width(cancel) + lipgloss.Width(submit)
	if cancel != "" && submit != "" {
		w++
	}
	if left != "" {
		w++
	}
	return w
}

func (m Model) layoutFooter(width int) footerLayout {
	if m.footerHeight() == 0 {
		return footerLayout{}
	}
	left, cancel, submit := m.footerParts()
	var fl footerLayout
	if m.notice == "" && m.cfg.ExtraCheckContent != "" {
		fl.extra = span{0, min(lipgloss.Width(left), width)}
	}
	x := width - lipgloss.Width(submit)
	fl.submit = span{x, width}
	if cancel != "" {
		if submit != "" {
			x--
		}
		fl.cancel = span{x - lipgloss.Width(cancel), x}
	}
	if submit == "" {
		fl.submit = span{}
	}
	return fl
}

func (m Model) renderFooter() string {
	if m.footerHeight() == 0 {
		return ""
	}
	width := m.viewport.Width
	left, cancel, submit := m.footerParts()
	right := cancel
	if submit != "" {
		if right != "" {
			right += " "
		}
		right += submit
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = ansi.Truncate(left, max(width-lipgloss.Width(right)-1, 0), "…")
		gap = max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	}
	return m.cfg.Style.Footer.Render(left + strings.Repeat(" ", gap) + right)
}
