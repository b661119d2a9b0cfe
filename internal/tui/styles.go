package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles for one theme.
type Styles struct {
	Header lipgloss.Style
	Prompt lipgloss.Style
	Hand   lipgloss.Style
	Win    lipgloss.Style
	Lose   lipgloss.Style
	Draw   lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

func newStyles(header, fg, muted lipgloss.Color) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(header).
			Padding(0, 1).
			Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Hand:   lipgloss.NewStyle().Foreground(fg).Bold(true),
		Win:    lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Lose:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Draw:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Help:   lipgloss.NewStyle().Foreground(muted),
	}
}

// ThemeStyles returns the styles for a configured theme name. Unknown names
// get the default theme.
func ThemeStyles(theme string) Styles {
	switch theme {
	case "dark":
		return newStyles(lipgloss.Color("#3C3C6E"), lipgloss.Color("#FAFAFA"), lipgloss.Color("#626262"))
	case "light":
		return newStyles(lipgloss.Color("#5A8DEE"), lipgloss.Color("#1A1A1A"), lipgloss.Color("#8A8A8A"))
	default:
		return newStyles(lipgloss.Color("#7D56F4"), lipgloss.Color("#FAFAFA"), lipgloss.Color("#626262"))
	}
}
