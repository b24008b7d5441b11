package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"custctl/pkg/logging"
)

// Run starts the customer browser and blocks until the user quits.
func Run(svc CustomerService, opts Options) error {
	logging.Info("TUI", "Starting customer browser")

	p := tea.NewProgram(InitialModel(svc, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("TUI", err, "Customer browser exited with error")
		return err
	}

	logging.Info("TUI", "Customer browser exited")
	return nil
}
