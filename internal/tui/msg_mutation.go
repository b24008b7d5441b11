package tui

import "custctl/internal/api"

// -------------------- Mutation messages --------------------

type customerDeactivatedMsg struct {
	id   string
	name string
	err  error
}

// membershipGrantedMsg is the outcome of a grant-membership call.
// customer is the server's updated entity on success.
type membershipGrantedMsg struct {
	id       string
	customer *api.Customer
	err      error
}

// customerSavedMsg is the outcome of the add/edit form submission.
type customerSavedMsg struct {
	customer *api.Customer
	created  bool
	err      error
}

// statusClearMsg clears the status bar message with the matching
// sequence number; a newer message keeps the bar.
type statusClearMsg struct {
	seq int
}
