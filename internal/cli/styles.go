// Package cli provides styled terminal output and currency formatting.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (marigold).
	PrimaryColor = lipgloss.Color("#F4A259")
	// SuccessColor indicates healthy numbers (savings, under budget).
	SuccessColor = lipgloss.Color("#8AC926")
	// WarningColor indicates overspend warnings.
	WarningColor = lipgloss.Color("#FFCA3A")
	// ErrorColor indicates errors or blown budgets.
	ErrorColor = lipgloss.Color("#FF595E")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats healthy amounts.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats overspend warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors and exceeded caps.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2)

	// BarStyle colors the filled portion of text bar charts.
	BarStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)
