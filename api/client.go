// Package api is the HTTP client for the moolah API. It covers the handful
// of endpoints the terminal client needs: the session, a user's accounts,
// and transaction listing and persistence.
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
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"

	"github.com/aaronlimck/moolah/entry"
)

const defaultBaseURL = "https://moolah.aaronlim.app"

// Client talks to the moolah API with a bearer token.
type Client struct {
	baseURL *url.URL
	token   string

	// HTTP is exported so callers can wrap the transport, e.g. with a
	// logging round tripper.
	HTTP *http.Client
}

// NewClient creates an API client. An empty baseURL selects the hosted
// service.
func NewClient(baseURL, token string) (*Client, error) {
	if token == "" {
		return nil, errors.New("api token is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	return &Client{
		baseURL: u,
		token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Account is a user account as the API reports it. IsDefault marks the
// account preselected for new transactions; at most one account carries it.
type Account struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	IsDefault bool    `json:"isDefault"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
}

// Money returns the account balance as a money value.
func (a Account) Money() *money.Money {
	currency := a.Currency
	if currency == "" {
		currency = "USD"
	}
	return money.NewFromFloat(a.Balance, currency)
}

// Transaction is a persisted transaction.
type Transaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Amount      float64   `json:"amount"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Money returns the transaction amount in the given currency.
func (t Transaction) Money(currency string) *money.Money {
	if currency == "" {
		currency = "USD"
	}
	return money.NewFromFloat(t.Amount, currency)
}

// ParsedDate parses the wire date (YYYY-MM-DD).
func (t Transaction) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", t.Date)
}

// TransactionFilters narrows a transaction listing.
type TransactionFilters struct {
	UserID    string
	StartDate *string
	EndDate   *string
}

type sessionResponse struct {
	UserID string `json:"userId"`
}

// Session returns the identity of the token's user, or "" when the token
// carries no session.
func (c *Client) Session(ctx context.Context) (string, error) {
	var res sessionResponse
	err := c.do(ctx, http.MethodGet, "/api/session", nil, nil, &res)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized {
			return "", nil
		}
		return "", err
	}
	return res.UserID, nil
}

// AccountsForUser fetches all accounts belonging to a user.
func (c *Client) AccountsForUser(ctx context.Context, userID string) ([]Account, error) {
	var accounts []Account
	path := fmt.Sprintf("/api/users/%s/accounts", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &accounts); err != nil {
		return nil, fmt.Errorf("fetching accounts: %w", err)
	}
	return accounts, nil
}

// Transactions lists transactions matching the filters, newest first.
func (c *Client) Transactions(ctx context.Context, filters *TransactionFilters) ([]Transaction, error) {
	query := url.Values{}
	if filters != nil {
		if filters.UserID != "" {
			query.Set("userId", filters.UserID)
		}
		if filters.StartDate != nil {
			query.Set("startDate", *filters.StartDate)
		}
		if filters.EndDate != nil {
			query.Set("endDate", *filters.EndDate)
		}
	}

	var transactions []Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", query, nil, &transactions); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return transactions, nil
}

// CreateTransaction persists a new transaction. A client-generated
// idempotency key lets the server drop an accidental duplicate. The returned
// result distinguishes a domain rejection (Success=false with a message)
// from a transport failure (a Go error).
func (c *Client) CreateTransaction(ctx context.Context, req entry.CreateRequest) (*entry.Result, error) {
	var res entry.Result
	err := c.doWithHeaders(ctx, http.MethodPost, "/api/transactions", nil, req, &res, http.Header{
		"Idempotency-Key": []string{uuid.NewString()},
	})
	if err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}
	return &res, nil
}

// UpdateTransaction replaces the fields of an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req entry.CreateRequest) (*entry.Result, error) {
	var res entry.Result
	path := fmt.Sprintf("/api/transactions/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, nil, req, &res); err != nil {
		return nil, fmt.Errorf("updating transaction: %w", err)
	}
	return &res, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/transactions/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return nil
}

// StatusError reports a non-2xx API reply.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("api: status %d: %s", e.Code, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doWithHeaders(ctx, method, path, query, body, out, nil)
}

func (c *Client) doWithHeaders(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
	headers http.Header,
) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{Code: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
