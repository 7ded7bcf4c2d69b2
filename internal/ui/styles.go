package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

func spacer(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

func lineWidth(s string) int {
	return lipgloss.Width(s)
}
