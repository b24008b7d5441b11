package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCustomers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customer", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "ali", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode(listResponse{
			Success: true,
			Customers: []Customer{
				{ID: "a", Name: "Alice"},
			},
			Pagination: Pagination{CurrentPage: 2, TotalPages: 3, TotalCustomers: 21},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	customers, pagination, err := client.ListCustomers(context.Background(), 2, 10, "ali")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Alice", customers[0].Name)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 21, pagination.TotalCustomers)
}

func TestListCustomersOmitsEmptySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, has := r.URL.Query()["search"]
		assert.False(t, has, "empty search term should not be sent")
		json.NewEncoder(w).Encode(listResponse{Success: true, Pagination: Pagination{CurrentPage: 1, TotalPages: 1}})
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).ListCustomers(context.Background(), 1, 10, "")
	require.NoError(t, err)
}

func TestListCustomersErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "server message on success=false",
			status:      http.StatusOK,
			body:        `{"success":false,"message":"search index unavailable"}`,
			wantMessage: "search index unavailable",
		},
		{
			name:        "server message on error status",
			status:      http.StatusBadGateway,
			body:        `{"success":false,"message":"upstream down"}`,
			wantMessage: "upstream down",
		},
		{
			name:        "default message when body is not JSON",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantMessage: "Failed to fetch customers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer srv.Close()

			_, _, err := NewClient(srv.URL).ListCustomers(context.Background(), 1, 10, "")
			require.Error(t, err)
			assert.Equal(t, tt.wantMessage, UserMessage(err, "Failed to fetch customers"))
		})
	}
}

func TestGetCustomerDisablesCaching(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customer/abc", r.URL.Path)
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		json.NewEncoder(w).Encode(customerResponse{
			Success:  true,
			Customer: &Customer{ID: "abc", Name: "Bob"},
		})
	}))
	defer srv.Close()

	customer, err := NewClient(srv.URL).GetCustomer(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Bob", customer.Name)
}

func TestDeactivateCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/customer/abc", r.URL.Path)
		json.NewEncoder(w).Encode(customerResponse{Success: true})
	}))
	defer srv.Close()

	err := NewClient(srv.URL).DeactivateCustomer(context.Background(), "abc")
	assert.NoError(t, err)
}

func TestGrantMembership(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/customer/a/toggle-membership", r.URL.Path)

		var req membershipRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IsMembership)
		assert.Equal(t, "BC123", req.MembershipBarcode)

		json.NewEncoder(w).Encode(customerResponse{
			Success:  true,
			Customer: &Customer{ID: "a", Name: "Alice", IsMembership: true, MembershipBarcode: "BC123"},
		})
	}))
	defer srv.Close()

	customer, err := NewClient(srv.URL).GrantMembership(context.Background(), "a", "BC123")
	require.NoError(t, err)
	assert.True(t, customer.IsMembership)
	assert.Equal(t, "BC123", customer.MembershipBarcode)
}

func TestGrantMembershipServerRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(customerResponse{Success: false, Message: "barcode already assigned"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GrantMembership(context.Background(), "a", "BC123")
	require.Error(t, err)
	assert.Equal(t, "barcode already assigned", UserMessage(err, "Failed to update membership"))
}

func TestCreateAndUpdateCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft CustomerDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/customer":
			json.NewEncoder(w).Encode(customerResponse{Success: true, Customer: &Customer{ID: "new", Name: draft.Name}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/customer/a":
			json.NewEncoder(w).Encode(customerResponse{Success: true, Customer: &Customer{ID: "a", Name: draft.Name}})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	created, err := client.CreateCustomer(context.Background(), CustomerDraft{Name: "Carol"})
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)

	updated, err := client.UpdateCustomer(context.Background(), "a", CustomerDraft{Name: "Alice B."})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
}

func TestUserMessageFallback(t *testing.T) {
	assert.Equal(t, "fallback", UserMessage(context.DeadlineExceeded, "fallback"))
	assert.Equal(t, "from server", UserMessage(&Error{Message: "from server"}, "fallback"))
}
