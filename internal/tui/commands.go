package tui

import (
	"context"
	"time"

	"custctl/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchCustomersCmd creates a command to fetch one page of the
// customer list. seq is the list-request sequence number the response
// will be matched against.
func fetchCustomersCmd(svc CustomerService, timeout time.Duration, seq, page, limit int, search string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		customers, pagination, err := svc.ListCustomers(ctx, page, limit, search)
		if err != nil {
			return customersErrorMsg{seq: seq, err: err}
		}
		return customersLoadedMsg{seq: seq, customers: customers, pagination: pagination}
	}
}

// fetchCustomerDetailCmd creates a command to fetch the full detail
// record for one customer.
func fetchCustomerDetailCmd(svc CustomerService, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		customer, err := svc.GetCustomer(ctx, id)
		return customerDetailMsg{id: id, customer: customer, err: err}
	}
}

// deactivateCustomerCmd creates a command to deactivate a customer.
// name rides along so the outcome notification can name them.
func deactivateCustomerCmd(svc CustomerService, timeout time.Duration, id, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := svc.DeactivateCustomer(ctx, id)
		return customerDeactivatedMsg{id: id, name: name, err: err}
	}
}

// grantMembershipCmd creates a command to grant membership with the
// given barcode.
func grantMembershipCmd(svc CustomerService, timeout time.Duration, id, barcode string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		customer, err := svc.GrantMembership(ctx, id, barcode)
		return membershipGrantedMsg{id: id, customer: customer, err: err}
	}
}

// saveCustomerCmd creates a command that submits the add/edit form:
// create when editing is nil, update otherwise.
func saveCustomerCmd(svc CustomerService, timeout time.Duration, editing *api.Customer, draft api.CustomerDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if editing == nil {
			customer, err := svc.CreateCustomer(ctx, draft)
			return customerSavedMsg{customer: customer, created: true, err: err}
		}
		customer, err := svc.UpdateCustomer(ctx, editing.ID, draft)
		return customerSavedMsg{customer: customer, err: err}
	}
}
