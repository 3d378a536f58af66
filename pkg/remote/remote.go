// Package remote talks to the sheet-backed availability endpoint. All calls
// are single shot: no retries, no caching, and failures leave the caller in
// local-only operation.
package remote

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
	"time"

	"tableflip.dev/shifthope/pkg/schedule"
)

// ErrNotConfigured reports a call attempted without an endpoint URL.
var ErrNotConfigured = errors.New("remote: no endpoint configured")

// Client issues requests against one configured endpoint.
type Client struct {
	Endpoint string

	// HTTPClient defaults to a client with a 15 second timeout.
	HTTPClient *http.Client
}

// New returns a Client for the endpoint. An empty endpoint is allowed; calls
// then fail with ErrNotConfigured so callers can degrade to local-only.
func New(endpoint string) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an endpoint URL is set.
func (c *Client) Configured() bool {
	return c != nil && c.Endpoint != ""
}

// Submission is what the endpoint returns for a GET: the stored month data
// for one employee, or the employee roster, or both.
type Submission struct {
	MonthNotes *string                              `json:"monthNotes"`
	Days       map[schedule.DateKey]*schedule.Entry `json:"days"`
	Employees  []string                             `json:"employees"`
}

// Payload is the POST body for a submission.
type Payload struct {
	EmployeeName string                               `json:"employeeName"`
	Year         int                                  `json:"year"`
	Month        int                                  `json:"month"` // 1-based on the wire
	MonthNotes   string                               `json:"monthNotes"`
	Days         map[schedule.DateKey]*schedule.Entry `json:"days"`
	SubmittedAt  time.Time                            `json:"submittedAt"`
}

func (c *Client) get(ctx context.Context, params url.Values) (*Submission, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	u := c.Endpoint
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: build request: %w", err)
	}
	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote: get: unexpected status %s", res.Status)
	}
	var sub Submission
	if err := json.NewDecoder(res.Body).Decode(&sub); err != nil {
		return nil, fmt.Errorf("remote: decode response: %w", err)
	}
	return &sub, nil
}

// Employees fetches the selectable employee roster.
func (c *Client) Employees(ctx context.Context) ([]string, error) {
	sub, err := c.get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sub.Employees, nil
}

// Fetch retrieves the stored submission for one employee and month.
func (c *Client) Fetch(ctx context.Context, employee string, year int, month time.Month) (*Submission, error) {
	params := url.Values{}
	params.Set("employeeName", employee)
	params.Set("year", strconv.Itoa(year))
	params.Set("month", strconv.Itoa(int(month)))
	return c.get(ctx, params)
}

// Submit posts the month payload. The body is sent as text/plain so the
// sheet backend accepts it without a preflight exchange, and the response
// body is intentionally not read.
func (c *Client) Submit(ctx context.Context, p Payload) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("remote: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	res, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("remote: submit: %w", err)
	}
	_, _ = io.Copy(io.Discard, res.Body)
	res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("remote: submit: unexpected status %s", res.Status)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
