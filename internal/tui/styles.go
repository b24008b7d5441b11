package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Constants for browser behavior.
const (
	// statusClearAfter is how long a status bar notification stays up.
	statusClearAfter = 4 * time.Second
	// minListWidth keeps the customer list readable when the detail
	// panel is open next to it.
	minListWidth = 40
)

// Icons shown in the customer list and detail panel.
const (
	iconMember    = "★"
	iconNonMember = "·"
	iconInactive  = "✗"
)

// Styles for the browser, defined with lipgloss. Adaptive colors keep
// contrast acceptable on both light and dark terminals.
var (
	appStyle = lipgloss.NewStyle().Margin(0, 0)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	searchPromptStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	cursorRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#E0E0E0"})

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"})

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A07000", Dark: "#FFD066"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"})

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#006600", Dark: "#8AE234"})

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	activeDotStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})
	inactiveDotStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#505050"})

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#FFD066", Dark: "#A07000"}).
			Padding(0, 1)

	statusBarInfoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
				Padding(0, 1)

	statusBarSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.AdaptiveColor{Light: "#006600", Dark: "#1B5E20"}).
				Padding(0, 1)

	statusBarErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#7F1D1D"}).
				Padding(0, 1)
)
