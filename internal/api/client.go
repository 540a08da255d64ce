// Package api holds the typed REST services the client talks to the backend
// with. Every call goes through the transport chain, so bearer headers,
// 401 handling, and error translation apply uniformly - no service repeats
// any of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/staffihq/staffi-go/internal/session"
	"github.com/staffihq/staffi-go/internal/transport"
)

// Client is the entry point to all backend services.
type Client struct {
	baseURL string
	handler transport.Handler

	Auth           *AuthService
	Employees      *EmployeeService
	Accommodations *AccommodationService
	Contracts      *ContractService
	Advances       *AdvanceService
	Users          *UserService
	Dashboard      *DashboardService
	AuditLogs      *AuditLogService
}

// NewClient creates a client rooted at baseURL (e.g. "http://localhost:8081/api").
// The session is needed by AuthService to persist login results; everything
// else only reads it indirectly through the transport chain.
func NewClient(baseURL string, handler transport.Handler, sess *session.Session) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		handler: handler,
	}
	c.Auth = &AuthService{c: c, sess: sess}
	c.Employees = &EmployeeService{c: c}
	c.Accommodations = &AccommodationService{c: c}
	c.Contracts = &ContractService{c: c}
	c.Advances = &AdvanceService{c: c}
	c.Users = &UserService{c: c}
	c.Dashboard = &DashboardService{c: c}
	c.AuditLogs = &AuditLogService{c: c}
	return c
}

// do issues one JSON request. in is marshaled as the body when non-nil; out
// is filled from the response body when non-nil. A nil out drains and
// discards the body so the connection can be reused.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	resp, err := c.send(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// doRaw issues one request and returns the raw response bytes. Used for the
// contract PDF download and plain-text responses.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	resp, err := c.send(ctx, method, path, query, in)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	return data, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.handler(ctx, req)
}
