package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for console output.
var Styles = struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // Cyan
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),            // Gray
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
}
