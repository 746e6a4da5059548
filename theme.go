package main

import (
	"github.com/aaronlimck/moolah/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Background    lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#36d399"),
		Error:         parseColor(colors.Error, "#f87272"),
		Success:       parseColor(colors.Success, "#36d399"),
		Warning:       parseColor(colors.Warning, "#fbbd23"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Income:        parseColor(colors.Income, "#36d399"),
		Expense:       parseColor(colors.Expense, "#f87272"),
		Border:        parseColor(colors.Border, "#3d4451"),
		Background:    parseColor(colors.Background, "#1d232a"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
	}
}

// parseColor returns a lipgloss.Color for a hex or ANSI color string,
// falling back to defaultColor when the input is empty. lipgloss accepts
// both formats directly so no further parsing is needed.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	return lipgloss.Color(colorStr)
}
