// Package strutil provides string helpers for terminal output.
package strutil

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Limit truncates every line of s to width cells, accounting for ANSI codes.
// A width of zero or less leaves s untouched.
func Limit(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
