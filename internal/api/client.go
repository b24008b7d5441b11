package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"custctl/pkg/logging"
)

// Error is a failed backend operation. Message prefers the
// server-supplied message; callers fall back to a per-operation default
// when the server sent none.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Client talks to the CRM backend's customer endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the given base URL, e.g.
// "http://localhost:3000". The http.Client's own timeout is left zero;
// callers bound each request with a context.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ListCustomers fetches one page of the customer list, filtered by the
// search term (empty means no filter).
func (c *Client) ListCustomers(ctx context.Context, page, limit int, search string) ([]Customer, Pagination, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}
	endpoint := c.baseURL + "/api/customer?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("building list request: %w", err)
	}

	var body listResponse
	if err := c.do(req, &body, "Failed to fetch customers"); err != nil {
		return nil, Pagination{}, err
	}
	logging.Debug("api", "listed %d customers (page %d/%d, search %q)",
		len(body.Customers), body.Pagination.CurrentPage, body.Pagination.TotalPages, search)
	return body.Customers, body.Pagination, nil
}

// GetCustomer fetches the full detail record for one customer. The
// request disables caching so the panel always shows fresh data.
func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/customer/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("building detail request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	var body customerResponse
	if err := c.do(req, &body, "Failed to fetch customer details"); err != nil {
		return nil, err
	}
	if body.Customer == nil {
		return nil, &Error{Message: "Failed to fetch customer details"}
	}
	return body.Customer, nil
}

// DeactivateCustomer deactivates the customer with the given id.
func (c *Client) DeactivateCustomer(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/customer/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("building deactivate request: %w", err)
	}

	var body customerResponse
	return c.do(req, &body, "Failed to deactivate customer")
}

// GrantMembership grants loyalty membership to a customer, assigning
// the given barcode. Returns the server's updated entity.
func (c *Client) GrantMembership(ctx context.Context, id, barcode string) (*Customer, error) {
	payload, err := json.Marshal(membershipRequest{IsMembership: true, MembershipBarcode: barcode})
	if err != nil {
		return nil, fmt.Errorf("encoding membership request: %w", err)
	}
	endpoint := c.baseURL + "/api/customer/" + url.PathEscape(id) + "/toggle-membership"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building membership request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body customerResponse
	if err := c.do(req, &body, "Failed to update membership"); err != nil {
		return nil, err
	}
	if body.Customer == nil {
		return nil, &Error{Message: "Failed to update membership"}
	}
	return body.Customer, nil
}

// CreateCustomer creates a new customer record.
func (c *Client) CreateCustomer(ctx context.Context, draft CustomerDraft) (*Customer, error) {
	return c.saveCustomer(ctx, http.MethodPost, c.baseURL+"/api/customer", draft, "Failed to create customer")
}

// UpdateCustomer updates an existing customer record.
func (c *Client) UpdateCustomer(ctx context.Context, id string, draft CustomerDraft) (*Customer, error) {
	endpoint := c.baseURL + "/api/customer/" + url.PathEscape(id)
	return c.saveCustomer(ctx, http.MethodPut, endpoint, draft, "Failed to update customer")
}

func (c *Client) saveCustomer(ctx context.Context, method, endpoint string, draft CustomerDraft, defaultMsg string) (*Customer, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encoding customer: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body customerResponse
	if err := c.do(req, &body, defaultMsg); err != nil {
		return nil, err
	}
	if body.Customer == nil {
		return nil, &Error{Message: defaultMsg}
	}
	return body.Customer, nil
}

// do executes the request and decodes the envelope into out. out must
// expose the envelope's success flag and message; both response shapes
// do. A non-2xx status or success=false becomes an *Error carrying the
// server's message, or defaultMsg when the server sent none.
func (c *Client) do(req *http.Request, out interface{}, defaultMsg string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Error("api", err, "%s %s failed", req.Method, req.URL.Path)
		return &Error{Message: defaultMsg}
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: defaultMsg}
	}

	// Decode even on error statuses; the backend puts its message in
	// the same envelope.
	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &Error{StatusCode: resp.StatusCode, Message: defaultMsg}
		}
		return &Error{Message: defaultMsg}
	}

	success, message := envelopeStatus(out)
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !success {
		if message == "" {
			message = defaultMsg
		}
		logging.Warn("api", "%s %s: %s", req.Method, req.URL.Path, message)
		apiErr := &Error{Message: message}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			apiErr.StatusCode = resp.StatusCode
		}
		return apiErr
	}
	return nil
}

func envelopeStatus(out interface{}) (success bool, message string) {
	switch v := out.(type) {
	case *listResponse:
		return v.Success, v.Message
	case *customerResponse:
		return v.Success, v.Message
	default:
		return false, ""
	}
}

// UserMessage extracts the message a user should see from err: the
// server's own message when err is an *Error, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
