package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.spinnerNeeded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDebouncedMsg:
		if msg.seq != m.debounceSeq {
			// A later keystroke restarted the timer.
			return m, nil
		}
		term := m.searchInput.Value()
		if term == m.debouncedSearch {
			return m, nil
		}
		m.debouncedSearch = term
		m.page = 1
		return m, m.startListFetch()

	case customersLoadedMsg, customersErrorMsg, customerDetailMsg,
		customerDeactivatedMsg, membershipGrantedMsg, customerSavedMsg:
		return m.handleData(msg)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil
	}

	return m, nil
}

// spinnerNeeded reports whether anything on screen is animating.
func (m model) spinnerNeeded() bool {
	return m.isLoading || m.isMembershipUpdating || (m.detailOpen && m.selected == nil)
}
