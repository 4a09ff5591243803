package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls procedures on a dayboard server.
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithUserID sends X-User-ID on every call.
func WithUserID(id string) ClientOption {
	return func(c *Client) { c.userID = id }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient returns a client for the server at baseURL (e.g. http://localhost:2022).
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query calls a query procedure with GET and decodes the result data into out.
func (c *Client) Query(ctx context.Context, procedure string, input, out any) error {
	endpoint := c.baseURL + "/trpc/" + url.PathEscape(procedure)
	if input != nil {
		data, err := json.Marshal(input)
		if err != nil {
			return fmt.Errorf("failed to encode input: %w", err)
		}
		endpoint += "?input=" + url.QueryEscape(string(data))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, procedure, out)
}

// Mutate calls a mutation procedure with POST and decodes the result data into out.
func (c *Client) Mutate(ctx context.Context, procedure string, input, out any) error {
	body := []byte("{}")
	if input != nil {
		var err error
		if body, err = json.Marshal(input); err != nil {
			return fmt.Errorf("failed to encode input: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/trpc/"+url.PathEscape(procedure), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, procedure, out)
}

// Call dispatches to Query or Mutate by the procedure's registered kind.
func (c *Client) Call(ctx context.Context, procedure string, input, out any) error {
	p, ok := Lookup(procedure)
	if !ok {
		return fmt.Errorf("unknown procedure %q", procedure)
	}
	if p.Kind == KindMutation {
		return c.Mutate(ctx, procedure, input, out)
	}
	return c.Query(ctx, procedure, input, out)
}

func (c *Client) do(req *http.Request, procedure string, out any) error {
	if c.userID != "" {
		req.Header.Set(headerUserID, c.userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", procedure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", procedure, err)
	}

	var envelope struct {
		Result *struct {
			Data json.RawMessage `json:"data"`
		} `json:"result"`
		Error *errorShape `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unexpected %s response (HTTP %d): %w", procedure, resp.StatusCode, err)
	}

	if envelope.Error != nil {
		return &Error{
			Code:    envelope.Error.Data.Code,
			Message: envelope.Error.Message,
			Path:    envelope.Error.Data.Path,
		}
	}
	if envelope.Result == nil {
		return fmt.Errorf("unexpected %s response (HTTP %d): no result", procedure, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", procedure, err)
	}
	return nil
}
