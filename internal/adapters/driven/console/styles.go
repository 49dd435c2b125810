package console

import "github.com/charmbracelet/lipgloss"

// Styles contains the pre-configured lipgloss styles for terminal output.
type Styles struct {
	// Banner style for the welcome header.
	Banner lipgloss.Style

	// Prompt style for interactive questions.
	Prompt lipgloss.Style

	// Info style for neutral progress messages.
	Info lipgloss.Style

	// Success indicates positive outcomes.
	Success lipgloss.Style

	// Warning indicates caution.
	Warning lipgloss.Style

	// Error indicates problems.
	Error lipgloss.Style

	// Note style for low-emphasis closing remarks.
	Note lipgloss.Style
}

// DefaultStyles returns the default terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // Yellow
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),            // Magenta
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),            // Cyan
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),            // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),            // Yellow
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),             // Red
		Note:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),             // Grey
	}
}
