package tui

import (
	"fmt"
	"strings"

	"custctl/internal/api"
)

// renderList draws the customer list for the current page.
func (m model) renderList() string {
	width := m.listWidth()
	lines := []string{panelTitleStyle.Render("Customers")}

	switch {
	case m.listErr != "":
		// A list error blocks the stale rows underneath it.
		lines = append(lines, errorStyle.Render(truncate(m.listErr, width)))
		lines = append(lines, faintStyle.Render("Change the page or search to retry."))

	case m.isLoading:
		lines = append(lines, m.spinner.View()+" Loading customers...")

	case len(m.customers) == 0:
		if m.debouncedSearch != "" {
			lines = append(lines, faintStyle.Render(fmt.Sprintf("No customers match %q.", m.debouncedSearch)))
		} else {
			lines = append(lines, faintStyle.Render("No customers yet."))
		}

	default:
		for i, c := range m.customers {
			lines = append(lines, m.renderRow(i, c, width))
		}
	}

	return panelStyle.Width(width + 2).Render(strings.Join(lines, "\n"))
}

func (m model) renderRow(i int, c api.Customer, width int) string {
	marker := "  "
	style := rowStyle
	if i == m.cursor {
		marker = "> "
		style = cursorRowStyle
	}

	badge := iconNonMember
	if c.IsMembership {
		badge = memberStyle.Render(iconMember)
	}
	if !c.IsActive && c.ID != "" {
		badge = errorStyle.Render(iconInactive)
	}

	name := truncate(c.Name, width-8)
	line := fmt.Sprintf("%s%s %s", marker, badge, style.Render(name))
	if c.IsMembership && c.MembershipBarcode != "" {
		line += faintStyle.Render("  " + c.MembershipBarcode)
	}
	return truncate(line, width)
}

func (m model) listWidth() int {
	width := m.width - 4
	if m.detailOpen {
		width = m.width/2 - 4
	}
	if width < minListWidth {
		width = minListWidth
	}
	return width
}

func pageSummary(p api.Pagination) string {
	return fmt.Sprintf("page %d/%d · %d customers", p.CurrentPage, p.TotalPages, p.TotalCustomers)
}
