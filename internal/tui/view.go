package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, headerStyle.Render("custctl — customers"))
	sections = append(sections, searchPromptStyle.Render("search> ")+m.searchInput.View())
	sections = append(sections, "")

	if m.modalOpen {
		sections = append(sections, m.renderModal())
	} else {
		body := m.renderList()
		if m.detailOpen {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.renderDetailPanel())
		}
		sections = append(sections, body)
	}

	if m.confirm != nil {
		sections = append(sections, "", confirmStyle.Render(m.confirm.prompt))
	}

	sections = append(sections, "", m.renderStatusBar())
	sections = append(sections, m.help.View(m.keys))

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m model) renderStatusBar() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	if m.statusMessage != "" {
		style := statusBarInfoStyle
		switch m.statusKind {
		case statusSuccess:
			style = statusBarSuccessStyle
		case statusError:
			style = statusBarErrorStyle
		}
		return style.Width(width).MaxWidth(width).Render(truncate(m.statusMessage, width-2))
	}

	left := m.paginator.View()
	right := pageSummary(m.pagination)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return statusBarInfoStyle.Width(width).MaxWidth(width).Render(truncate(right, width-2))
	}
	return statusBarInfoStyle.Width(width).MaxWidth(width).
		Render(left + strings.Repeat(" ", gap) + right)
}
