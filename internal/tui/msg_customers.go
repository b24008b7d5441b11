package tui

import "custctl/internal/api"

// -------------------- Query / list messages --------------------

// searchDebouncedMsg fires when the search quiet period elapses. seq
// identifies the timer; a keystroke after the timer started supersedes
// it with a higher sequence number.
type searchDebouncedMsg struct {
	seq int
}

// customersLoadedMsg carries one page of the customer list. seq is the
// list-request sequence number; responses older than the latest issued
// request are discarded.
type customersLoadedMsg struct {
	seq        int
	customers  []api.Customer
	pagination api.Pagination
}

type customersErrorMsg struct {
	seq int
	err error
}

// -------------------- Detail panel messages --------------------

// customerDetailMsg is the outcome of a detail fetch. id is the
// customer the fetch was issued for; the panel ignores it when it has
// since moved on.
type customerDetailMsg struct {
	id       string
	customer *api.Customer
	err      error
}
