// Package store is the data access shim for the hosted table store. It
// translates find/insert/update/delete calls into REST requests against
// the store's /rest/v1 endpoint. No caching, no transactions: consistency
// is whatever the store's per-row update semantics provide.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"campaigniq/internal/metrics"
)

var ErrNotFound = errors.New("store: no matching rows")

type Client struct {
	baseURL string
	key     string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, key string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// Select reads all rows matching the filter into dest, which must be a
// pointer to a slice.
func (c *Client) Select(ctx context.Context, table string, filter *Filter, dest any) error {
	body, err := c.do(ctx, http.MethodGet, table, "select", filter, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

// SelectOne reads the first matching row into dest. ErrNotFound when the
// filter matches nothing.
func (c *Client) SelectOne(ctx context.Context, table string, filter *Filter, dest any) error {
	if filter == nil {
		filter = Where()
	}
	body, err := c.do(ctx, http.MethodGet, table, "select", filter.Limit(1), nil)
	if err != nil {
		return err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("store: decoding %s response: %w", table, err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return json.Unmarshal(rows[0], dest)
}

// Insert writes row into table. Rows are built fully client-side (ids,
// timestamps), so the stored representation is not read back.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("store: encoding %s row: %w", table, err)
	}
	_, err = c.do(ctx, http.MethodPost, table, "insert", nil, payload)
	return err
}

// Update patches every matching row with the fields set in patch.
func (c *Client) Update(ctx context.Context, table string, filter *Filter, patch any) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("store: encoding %s patch: %w", table, err)
	}
	_, err = c.do(ctx, http.MethodPatch, table, "update", filter, payload)
	return err
}

// Delete removes every matching row.
func (c *Client) Delete(ctx context.Context, table string, filter *Filter) error {
	_, err := c.do(ctx, http.MethodDelete, table, "delete", filter, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, table, op string, filter *Filter, payload []byte) ([]byte, error) {
	reqURL := c.baseURL + "/rest/v1/" + table
	if filter != nil {
		if qs := filter.Encode(); qs != "" {
			reqURL += "?" + qs
		}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("store: creating request: %w", err)
	}

	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.StoreRequestDuration.WithLabelValues(table, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreRequestsTotal.WithLabelValues(table, op, "error").Inc()
		return nil, fmt.Errorf("store: %s %s: %w", op, table, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.StoreRequestsTotal.WithLabelValues(table, op, "error").Inc()
		return nil, fmt.Errorf("store: reading %s response: %w", table, err)
	}

	metrics.StoreRequestsTotal.WithLabelValues(table, op, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		c.log.Error("store request failed",
			"table", table, "op", op, "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("store: %s %s returned status %d", op, table, resp.StatusCode)
	}

	return respBody, nil
}
