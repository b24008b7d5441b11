package tui

import (
	"context"

	"custctl/internal/api"
)

// CustomerService is the backend surface the browser needs. *api.Client
// implements it; tests substitute a fake.
type CustomerService interface {
	ListCustomers(ctx context.Context, page, limit int, search string) ([]api.Customer, api.Pagination, error)
	GetCustomer(ctx context.Context, id string) (*api.Customer, error)
	DeactivateCustomer(ctx context.Context, id string) error
	GrantMembership(ctx context.Context, id, barcode string) (*api.Customer, error)
	CreateCustomer(ctx context.Context, draft api.CustomerDraft) (*api.Customer, error)
	UpdateCustomer(ctx context.Context, id string, draft api.CustomerDraft) (*api.Customer, error)
}

var _ CustomerService = (*api.Client)(nil)
