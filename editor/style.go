package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Frame       lipgloss.Style
	Text        lipgloss.Style
	Mention     lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style

	Footer         lipgloss.Style
	Button         lipgloss.Style
	SubmitButton   lipgloss.Style
	DisabledButton lipgloss.Style
	Check          lipgloss.Style
	Notice         lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return Style{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Text:        lipgloss.NewStyle(),
		Mention:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Placeholder: dim,
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),

		Footer:         lipgloss.NewStyle(),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SubmitButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Padding(0, 1),
		DisabledButton: dim.Padding(0, 1),
		Check:          lipgloss.NewStyle(),
		Notice:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
