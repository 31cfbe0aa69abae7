package tui

import "github.com/charmbracelet/lipgloss"

type AppTheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Subtle     string
	Error      string
	Warning    string
	Success    string
	Background string
	Surface    string
}

func BlueTheme() AppTheme {
	return AppTheme{
		Primary:    "#5eb0ef",
		Secondary:  "#1d3b53",
		Accent:     "#a5d8ff",
		Text:       "#e6e1e9",
		Subtle:     "#8b98a5",
		Error:      "#ffb4ab",
		Warning:    "#eeb8ca",
		Success:    "#9ae6b4",
		Background: "#0f1720",
		Surface:    "#071018",
	}
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginLeft(1).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Bold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		SpinnerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)),

		SelectedOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.Secondary)).
			Padding(0, 1),

		FocusedPanel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.Primary)).
			Padding(0, 1),
	}
}

type Styles struct {
	Title          lipgloss.Style
	Normal         lipgloss.Style
	Bold           lipgloss.Style
	Subtle         lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	Key            lipgloss.Style
	SpinnerStyle   lipgloss.Style
	SelectedOption lipgloss.Style
	Panel          lipgloss.Style
	FocusedPanel   lipgloss.Style
}
