package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic styles shared by all command output. Adaptive colors keep
// the output readable on light and dark terminals.
var (
	// TitleStyle renders section headings.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// MutedStyle renders secondary information such as package ids.
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "241"})

	// ExperimentalStyle flags version choices outside the
	// recommendation.
	ExperimentalStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "214"})

	// VersionStyle highlights the resolved app version.
	VersionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
)
