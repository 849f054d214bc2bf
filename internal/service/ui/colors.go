package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colors only, so both the help output and the installer follow the
// terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Installer wizard.
var (
	WizardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	ItemStyle        = lipgloss.NewStyle().PaddingLeft(2)
	SelectedStyle    = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)
