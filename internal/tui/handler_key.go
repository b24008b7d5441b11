package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// A pending confirmation or an open modal captures all input.
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.modalOpen {
		return m.handleModalKey(msg)
	}
	if m.barcodeActive {
		return m.handleBarcodeKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.customers)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.goToPage(m.page - 1)

	case key.Matches(msg, m.keys.NextPage):
		return m, m.goToPage(m.page + 1)

	case key.Matches(msg, m.keys.ViewDetails):
		if c, ok := m.cursorCustomer(); ok {
			return m, m.viewDetails(c)
		}
		return m, nil

	case key.Matches(msg, m.keys.NewCustomer):
		m.openCreateModal()
		return m, m.form.input.Focus()

	case key.Matches(msg, m.keys.EditCustomer):
		if c, ok := m.cursorCustomer(); ok {
			m.openEditModal(c)
			return m, m.form.input.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Deactivate):
		if c, ok := m.cursorCustomer(); ok {
			m.confirm = &confirmPrompt{
				prompt: fmt.Sprintf("Deactivate customer %s? (y/n)", c.Name),
				id:     c.ID,
				name:   c.Name,
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.GrantMembership):
		if m.detailOpen && m.selected != nil && !m.selected.IsMembership && !m.isMembershipUpdating {
			m.barcodeActive = true
			m.barcodeInput.SetValue("")
			return m, m.barcodeInput.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyBarcode):
		if m.detailOpen && m.selected != nil && m.selected.MembershipBarcode != "" {
			if err := clipboard.WriteAll(m.selected.MembershipBarcode); err != nil {
				return m, m.notify(statusError, "Failed to copy barcode to clipboard")
			}
			return m, m.notify(statusSuccess, fmt.Sprintf("Barcode %s copied to clipboard", m.selected.MembershipBarcode))
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.detailOpen {
			m.closePanel()
			return m, nil
		}
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			return m, m.scheduleDebounce()
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Everything else belongs to the search input. A keystroke that
	// changes its value restarts the debounce timer.
	before := m.searchInput.Value()
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		return m, tea.Batch(inputCmd, m.scheduleDebounce())
	}
	return m, inputCmd
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		pending := *m.confirm
		m.confirm = nil
		return m, deactivateCustomerCmd(m.svc, m.timeout, pending.id, pending.name)
	case "n", "N", "esc":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m model) handleBarcodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.barcodeActive = false
		m.barcodeInput.Blur()
		return m, nil

	case tea.KeyEnter:
		barcode := strings.TrimSpace(m.barcodeInput.Value())
		if barcode == "" {
			return m, m.notify(statusError, "Barcode cannot be empty")
		}
		m.barcodeActive = false
		m.barcodeInput.Blur()
		m.isMembershipUpdating = true
		return m, tea.Batch(m.spinner.Tick, grantMembershipCmd(m.svc, m.timeout, m.detailID, barcode))
	}

	var cmd tea.Cmd
	m.barcodeInput, cmd = m.barcodeInput.Update(msg)
	return m, cmd
}

func (m model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeModal()
		return m, nil

	case tea.KeyShiftTab:
		m.form.previousField()
		return m, nil

	case tea.KeyEnter:
		done := m.form.commitField()
		if !done {
			return m, nil
		}
		draft := m.form.draft()
		m.form.submitting = true
		return m, saveCustomerCmd(m.svc, m.timeout, m.editing, draft)
	}

	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	return m, cmd
}
