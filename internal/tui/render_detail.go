package tui

import (
	"fmt"
	"strings"
)

// renderDetailPanel draws the side panel for the customer in detailID.
// Until the detail fetch resolves, only the name from the list row is
// known and a spinner is shown.
func (m model) renderDetailPanel() string {
	width := m.listWidth()
	lines := []string{panelTitleStyle.Render("Customer details")}

	if m.selected == nil {
		lines = append(lines, m.spinner.View()+" Loading "+truncate(m.detailName, width-12)+"...")
		lines = append(lines, "", faintStyle.Render("esc close"))
		return panelStyle.Width(width + 2).Render(strings.Join(lines, "\n"))
	}

	c := m.selected
	lines = append(lines, detailField("Name", c.Name, width))
	lines = append(lines, detailField("Email", orDash(c.Email), width))
	lines = append(lines, detailField("Phone", orDash(c.Phone), width))

	status := successStyle.Render("active")
	if !c.IsActive {
		status = errorStyle.Render("inactive")
	}
	lines = append(lines, faintStyle.Render("Status ")+status)

	if c.IsMembership {
		lines = append(lines, faintStyle.Render("Member ")+memberStyle.Render(iconMember+" yes"))
		lines = append(lines, detailField("Barcode", orDash(c.MembershipBarcode), width))
	} else {
		lines = append(lines, faintStyle.Render("Member ")+"no")
	}

	switch {
	case m.isMembershipUpdating:
		lines = append(lines, "", m.spinner.View()+" Updating membership...")
	case m.barcodeActive:
		lines = append(lines, "", searchPromptStyle.Render("barcode> ")+m.barcodeInput.View())
		lines = append(lines, faintStyle.Render("enter grant · esc cancel"))
	default:
		hints := []string{"esc close"}
		if !c.IsMembership {
			hints = append(hints, "ctrl+g grant membership")
		}
		if c.MembershipBarcode != "" {
			hints = append(hints, "ctrl+y copy barcode")
		}
		lines = append(lines, "", faintStyle.Render(strings.Join(hints, " · ")))
	}

	return panelStyle.Width(width + 2).Render(strings.Join(lines, "\n"))
}

func detailField(label, value string, width int) string {
	return faintStyle.Render(fmt.Sprintf("%-7s", label)) + truncate(value, width-8)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
