package tui

import (
	"fmt"
	"strings"
)

// renderModal draws the add/edit customer form in place of the list.
func (m model) renderModal() string {
	width := m.listWidth()

	title := "Add Customer"
	if m.editing != nil {
		title = "Edit Customer"
	}

	f := m.form
	lines := []string{
		panelTitleStyle.Render(title),
		faintStyle.Render(fmt.Sprintf("Field %d/%d", f.index+1, len(f.fields))),
		"",
	}

	for i, field := range f.fields {
		label := field.label
		if field.required {
			label += " *"
		}
		switch {
		case i == f.index:
			lines = append(lines, cursorRowStyle.Render("> "+label))
			lines = append(lines, "  "+f.input.View())
		case field.value != "":
			lines = append(lines, "  "+label+": "+truncate(field.value, width-len(label)-4))
		default:
			lines = append(lines, faintStyle.Render("  "+label))
		}
	}

	if f.err != "" {
		lines = append(lines, "", errorStyle.Render(f.err))
	}
	if f.submitting {
		lines = append(lines, "", m.spinner.View()+" Saving...")
	} else {
		lines = append(lines, "", faintStyle.Render("enter next/save · shift+tab back · esc cancel"))
	}

	return panelStyle.Width(width + 2).Render(strings.Join(lines, "\n"))
}
