// Package remote is the HTTP client for the authoritative dataset store.
// The sync engine replays queued mutations through Push; initial load and
// cross-device reconciliation read through List, bypassing the queue.
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
	"time"

	"github.com/maxixo/datavista/internal/dataset"
	"github.com/maxixo/datavista/internal/syncqueue"
)

// Client talks to the remote dataset API with a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Config struct {
	// BaseURL is the remote API root, e.g. https://api.example.com/api.
	BaseURL string
	// Token authenticates the caller; supplied by the session provider.
	Token string
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

func (c *Config) validate() error {
	var errGrp []error
	if c.BaseURL == "" {
		errGrp = append(errGrp, errors.New("base URL is required"))
	}
	return errors.Join(errGrp...)
}

// New creates a remote store client.
func New(cfg *Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

// pushRequest mirrors a sync queue entry on the wire.
type pushRequest struct {
	Type   string          `json:"type"`
	Entity string          `json:"entity"`
	Data   json.RawMessage `json:"data"`
}

// Push replays one queued operation against the batched-intent endpoint.
// The remote applies create/update as an upsert keyed by the record id and
// treats delete of a missing id as success, so replaying the same entry
// twice is a no-op.
func (c *Client) Push(ctx context.Context, op *syncqueue.Operation) error {
	body := pushRequest{
		Type:   string(op.Type),
		Entity: op.Entity,
		Data:   op.Payload,
	}
	return c.do(ctx, http.MethodPost, "/sync", body, nil)
}

// record is the remote row shape.
type record struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Name      string        `json:"name"`
	Data      []dataset.Row `json:"data"`
	CreatedAt string        `json:"created_at"`
}

type listResponse struct {
	Datasets []record `json:"datasets"`
}

// List fetches every dataset owned by the authenticated caller, newest
// first.
func (c *Client) List(ctx context.Context) ([]*dataset.Dataset, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/datasets", nil, &resp); err != nil {
		return nil, err
	}

	out := make([]*dataset.Dataset, 0, len(resp.Datasets))
	for _, rec := range resp.Datasets {
		out = append(out, rec.toDataset())
	}
	return out, nil
}

func (r *record) toDataset() *dataset.Dataset {
	createdAt := int64(0)
	if ts, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		createdAt = ts.UnixMilli()
	}
	return &dataset.Dataset{
		ID:        r.ID,
		OwnerID:   r.UserID,
		Name:      r.Name,
		Rows:      r.Data,
		Columns:   dataset.ColumnsOf(r.Data),
		CreatedAt: createdAt,
		RowCount:  len(r.Data),
	}
}

// Create sends a direct create, outside the queue path.
func (c *Client) Create(ctx context.Context, d *dataset.Dataset) error {
	body := map[string]any{"id": d.ID, "name": d.Name, "data": d.Rows}
	return c.do(ctx, http.MethodPost, "/datasets", body, nil)
}

// Update sends a direct whole-record update. An id the caller does not own
// yields "not found" on the remote side.
func (c *Client) Update(ctx context.Context, d *dataset.Dataset) error {
	body := map[string]any{"id": d.ID, "name": d.Name, "data": d.Rows}
	return c.do(ctx, http.MethodPut, "/datasets", body, nil)
}

// Delete removes the record, scoped to the caller's ownership.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/datasets?id="+url.QueryEscape(id), nil, nil)
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(ErrNetwork, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return newError(ErrUnauthorized, "%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = resp.Status
		}
		return newError(ErrRejected, "%s %s: %s", method, path, envelope.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
