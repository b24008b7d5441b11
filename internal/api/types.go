package api

// Customer is the client-side projection of a backend customer record.
// The backend owns these; copies held here are transient and refreshed
// on every list or detail fetch.
type Customer struct {
	ID                string `json:"_id"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	IsActive          bool   `json:"isActive"`
	IsMembership      bool   `json:"isMembership"`
	MembershipBarcode string `json:"membershipBarcode,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
}

// Pagination describes the window the backend returned for a list
// fetch. currentPage is 1-based.
type Pagination struct {
	CurrentPage    int `json:"currentPage"`
	TotalPages     int `json:"totalPages"`
	TotalCustomers int `json:"totalCustomers"`
}

// CustomerDraft carries the editable fields for create/update calls.
type CustomerDraft struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// listResponse is the envelope for GET /api/customer.
type listResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
	Customers  []Customer `json:"customers"`
	Pagination Pagination `json:"pagination"`
}

// customerResponse is the envelope for single-customer operations.
type customerResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}

// membershipRequest is the body for POST .../toggle-membership.
type membershipRequest struct {
	IsMembership      bool   `json:"isMembership"`
	MembershipBarcode string `json:"membershipBarcode"`
}
