// Package gateway is the single point of egress for authenticated
// calls to the platform backend. Every method is a thin mapping from
// typed parameters to one HTTP request; no business logic lives here.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/ahmadalarjah/crypto-admin/internal/httpcall"
	"github.com/ahmadalarjah/crypto-admin/internal/session"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Sessions   session.Store
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = client
	}
}

// WithSessionStore makes the client attach "Authorization: Bearer
// <token>" whenever the store holds a session.
func WithSessionStore(store session.Store) Option {
	return func(c *Client) {
		c.Sessions = store
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	if c == nil || c.BaseURL == "" {
		return nil, fmt.Errorf("gateway client base URL is required")
	}
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.Sessions != nil {
		if sess, err := c.Sessions.Load(ctx); err == nil && sess.Token != "" {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	result, err := httpcall.Exchange(c.HTTPClient, req)
	if err != nil {
		return nil, err
	}
	return result.Normalize()
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// decodeInto maps a decoded JSON value onto a typed struct.
func decodeInto(value any, dst any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Call issues an arbitrary request through the client's auth and
// normalization pipeline. Operator tooling uses it for endpoints that
// have no dedicated method yet.
func (c *Client) Call(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	return c.do(ctx, method, path, query, body)
}

// DashboardStats fetches the aggregate platform overview.
func (c *Client) DashboardStats(ctx context.Context) (any, error) {
	return c.get(ctx, "/api/admin/stats/overview", nil)
}
