package tui

import (
	"fmt"

	"custctl/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// handleData applies network outcomes to the model.
func (m model) handleData(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		if msg.seq < m.listReqSeq {
			// A newer request is already in flight; this response
			// would clobber it.
			return m, nil
		}
		m.isLoading = false
		m.listErr = ""
		m.customers = msg.customers
		m.pagination = msg.pagination
		if m.pagination.CurrentPage >= 1 {
			m.page = m.pagination.CurrentPage
		}
		if m.pagination.TotalPages >= 1 {
			m.paginator.TotalPages = m.pagination.TotalPages
		}
		m.paginator.Page = m.page - 1
		if m.cursor >= len(m.customers) {
			m.cursor = len(m.customers) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case customersErrorMsg:
		if msg.seq < m.listReqSeq {
			return m, nil
		}
		m.isLoading = false
		m.listErr = api.UserMessage(msg.err, "Failed to fetch customers")
		return m, nil

	case customerDetailMsg:
		if !m.detailOpen || msg.id != m.detailID {
			// The panel has moved on since this fetch was issued.
			return m, nil
		}
		if msg.err != nil {
			return m, m.notify(statusError, api.UserMessage(msg.err, "Failed to fetch customer details"))
		}
		m.selected = msg.customer
		return m, nil

	case customerDeactivatedMsg:
		if msg.err != nil {
			// No local state changes on failure.
			return m, m.notify(statusError, api.UserMessage(msg.err, "Failed to deactivate customer"))
		}
		if m.detailOpen && m.detailID == msg.id {
			m.closePanel()
		}
		notifyCmd := m.notify(statusSuccess, fmt.Sprintf("Customer %s deactivated", msg.name))
		return m, tea.Batch(notifyCmd, m.startListFetch())

	case membershipGrantedMsg:
		m.isMembershipUpdating = false
		if msg.err != nil {
			return m, m.notify(statusError, api.UserMessage(msg.err, "Failed to update membership"))
		}
		if msg.customer == nil {
			return m, m.notify(statusError, "Failed to update membership")
		}
		// Server entity wins: replace the panel's customer, patch the
		// matching list row, and force the panel subtree to rebuild.
		if m.detailOpen && m.detailID == msg.id {
			m.selected = msg.customer
			m.panelKey++
		}
		for i := range m.customers {
			if m.customers[i].ID == msg.customer.ID {
				m.customers[i] = *msg.customer
			}
		}
		message := fmt.Sprintf("Membership granted to %s (barcode %s)", msg.customer.Name, msg.customer.MembershipBarcode)
		return m, m.notify(statusSuccess, message)

	case customerSavedMsg:
		m.form.submitting = false
		fallback := "Failed to update customer"
		if msg.created {
			fallback = "Failed to create customer"
		}
		if msg.err != nil {
			m.form.err = api.UserMessage(msg.err, fallback)
			return m, nil
		}
		if msg.customer == nil {
			m.form.err = fallback
			return m, nil
		}
		m.closeModal()
		verb := "updated"
		if msg.created {
			verb = "created"
		}
		notifyCmd := m.notify(statusSuccess, fmt.Sprintf("Customer %s %s", msg.customer.Name, verb))
		return m, tea.Batch(notifyCmd, m.startListFetch())
	}

	return m, nil
}
