package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#0969DA") // GitHub blue
	secondaryColor = lipgloss.Color("#8250DF") // Purple
	accentColor    = lipgloss.Color("#2DA44E") // Green
	errorColor     = lipgloss.Color("#CF222E") // Red
	textColor      = lipgloss.Color("#FFFFFF")
	dimColor       = lipgloss.Color("#6E7681")
	linkColor      = lipgloss.Color("#58A6FF")
	sourceColor    = lipgloss.Color("#FFA657") // Light orange
	selectedBg     = lipgloss.Color("#2D333B")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	TextStyle = lipgloss.NewStyle().
			Foreground(textColor)

	SelectedTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Background(selectedBg).
				Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	LinkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(sourceColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	SelectedMarker   = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).SetString("▶")
	UnselectedMarker = lipgloss.NewStyle().Foreground(dimColor).SetString(" ")
)
