package graphstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/c360/graphexport/config"
	"github.com/c360/graphexport/errors"
)

// queryMethod is the knowledge base's RPC method for declarative queries.
const queryMethod = "graph.query"

// HTTPClient talks to the knowledge base's local HTTP API. Requests are
// rate-limited and bounded by the configured per-request timeout.
type HTTPClient struct {
	endpoint string
	token    string
	client   *http.Client
	limiter  *rate.Limiter
	closed   bool
}

// NewHTTPClient builds a client from the API section of the run config.
func NewHTTPClient(cfg config.APIConfig) *HTTPClient {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &HTTPClient{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		client:   &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(limit, 1),
	}
}

type queryRequest struct {
	Method string   `json:"method"`
	Args   []string `json:"args"`
}

// Query posts the declarative query and decodes the pulled records.
//
// Pull-style query results arrive as an array of result rows, each row an
// array whose first element is the pulled record object. Rows without an
// object first element are skipped.
func (c *HTTPClient) Query(ctx context.Context, query string) ([]map[string]any, error) {
	if c.closed {
		return nil, errors.ErrStoreClosed
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "graphstore", "Query", "rate limit wait")
	}

	body, err := json.Marshal(queryRequest{Method: queryMethod, Args: []string{query}})
	if err != nil {
		return nil, errors.Wrap(err, "graphstore", "Query", "encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "graphstore", "Query", "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(fmt.Errorf("%w: %v", errors.ErrQueryFailed, err),
			"graphstore", "Query", "calling graph API")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "graphstore", "Query", "reading response")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.Wrap(errors.ErrUnauthorized, "graphstore", "Query",
			fmt.Sprintf("status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Wrap(fmt.Errorf("%w: status %d: %s",
			errors.ErrQueryFailed, resp.StatusCode, truncate(payload, 200)),
			"graphstore", "Query", "graph API error")
	}

	return decodeRecords(payload)
}

// decodeRecords extracts record maps from a pull-query result payload.
func decodeRecords(payload []byte) ([]map[string]any, error) {
	parsed := gjson.ParseBytes(payload)
	if !parsed.IsArray() {
		return nil, errors.Wrap(errors.ErrDecodeFailed, "graphstore", "decodeRecords",
			"result is not an array")
	}

	var records []map[string]any
	for _, row := range parsed.Array() {
		entry := row
		if row.IsArray() {
			arr := row.Array()
			if len(arr) == 0 {
				continue
			}
			entry = arr[0]
		}
		if rec, ok := entry.Value().(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Close marks the client closed; later queries fail with ErrStoreClosed.
func (c *HTTPClient) Close() error {
	c.closed = true
	c.client.CloseIdleConnections()
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
