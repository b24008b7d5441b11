package tui

import "github.com/mattn/go-runewidth"

// truncate clips s to the given display width, appending an ellipsis
// when anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
