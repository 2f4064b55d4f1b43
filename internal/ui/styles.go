// Package ui provides the terminal styling for the CLI's output.
//
// Styling is a thin veneer: every helper degrades to its plain input when
// disabled, so scripted runs and tests see byte-stable output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors
var (
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue
	Destructive = lipgloss.Color("#e53935") // Red
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(Success).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(Warning)
	errorStyle   = lipgloss.NewStyle().Foreground(Destructive).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

var enabled = true

// SetEnabled toggles styled output globally. Disabled helpers return their
// input unchanged.
func SetEnabled(on bool) { enabled = on }

// Enabled reports whether styled output is active.
func Enabled() bool { return enabled }

// Title renders s as a bold heading.
func Title(s string) string { return render(titleStyle, s) }

// Ok renders s in the success color.
func Ok(s string) string { return render(successStyle, s) }

// Warn renders s in the warning color.
func Warn(s string) string { return render(warnStyle, s) }

// Error renders s in the destructive color.
func Error(s string) string { return render(errorStyle, s) }

// Dim renders s faint.
func Dim(s string) string { return render(dimStyle, s) }

func render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}
