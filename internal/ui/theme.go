package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the watch view.
type Theme struct {
	Primary   lipgloss.Color // title
	Secondary lipgloss.Color // selected row
	Success   lipgloss.Color // tracked count
	Error     lipgloss.Color // read errors
	Text      lipgloss.Color
	TextMuted lipgloss.Color // paths, hints, fallback commands
	Border    lipgloss.Color
	Selected  lipgloss.Color // selected row background
}

// DarkTheme is the default.
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#fab283"),
		Secondary: lipgloss.Color("#5c9cf5"),
		Success:   lipgloss.Color("#7fd88f"),
		Error:     lipgloss.Color("#e06c75"),
		Text:      lipgloss.Color("#eeeeee"),
		TextMuted: lipgloss.Color("#808080"),
		Border:    lipgloss.Color("#484848"),
		Selected:  lipgloss.Color("#1e1e1e"),
	}
}

// LightTheme is for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#b35c00"),
		Secondary: lipgloss.Color("#0550ae"),
		Success:   lipgloss.Color("#116329"),
		Error:     lipgloss.Color("#cf222e"),
		Text:      lipgloss.Color("#1f2328"),
		TextMuted: lipgloss.Color("#656d76"),
		Border:    lipgloss.Color("#d0d7de"),
		Selected:  lipgloss.Color("#f6f8fa"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

type styles struct {
	title    lipgloss.Style
	rule     lipgloss.Style
	count    lipgloss.Style
	err      lipgloss.Style
	dim      lipgloss.Style
	hintKey  lipgloss.Style
	hintDesc lipgloss.Style
	header   lipgloss.Style
	selected lipgloss.Style
	cell     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		rule:     lipgloss.NewStyle().Foreground(t.Border),
		count:    lipgloss.NewStyle().Foreground(t.Success),
		err:      lipgloss.NewStyle().Foreground(t.Error),
		dim:      lipgloss.NewStyle().Foreground(t.TextMuted),
		hintKey:  lipgloss.NewStyle().Foreground(t.Text),
		hintDesc: lipgloss.NewStyle().Foreground(t.TextMuted),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.TextMuted).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(t.Border).Padding(0, 1),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Background(t.Selected),
		cell:     lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1),
	}
}
