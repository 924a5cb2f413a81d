// Package sanity implements the HTTP client for the headless content platform
// holding rooms, bookings, reviews and users. Reads go through the GROQ query
// endpoint, writes through the mutation endpoint. Every call is parameterized;
// untrusted values are never interpolated into query bodies.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"hotelhub/internal/pkg/config"
	"hotelhub/internal/pkg/errs"
)

type Client struct {
	httpClient *http.Client
	queryURL   string
	mutateURL  string
	token      string
}

// NewClient builds a content-platform client. The privileged write token is
// taken from config here, once, instead of being read from the environment at
// call sites. The http.Client keeps its default (unbounded) timeout; no retry
// or backoff policy exists at this layer.
func NewClient(cfg config.SanityConfig, httpClient *http.Client) *Client {
	base := cfg.BaseURL()
	return &Client{
		httpClient: httpClient,
		queryURL:   base + "/data/query/" + cfg.Dataset,
		mutateURL:  base + "/data/mutate/" + cfg.Dataset,
		token:      cfg.Token,
	}
}

// APIError is a non-2xx response from the content platform.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content api returned status %d: %s", e.StatusCode, e.Body)
}

// Fetch runs a GROQ query. Parameters are sent as $-prefixed, JSON-encoded
// query-string values. Responses are never cached; callers always observe the
// latest state. A query with no match leaves out untouched (the platform
// returns a null result).
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for k, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return errs.Wrap(err, "failed to encode query param "+k)
		}
		values.Set("$"+k, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL+"?"+values.Encode(), nil)
	if err != nil {
		return errs.Wrap(err, "failed to build query request")
	}
	c.setHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return err
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errs.Wrap(err, "malformed query response")
	}
	if out == nil || len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return errs.Wrap(err, "failed to decode query result")
	}
	return nil
}

// Mutate posts a mutation batch and returns the affected document ids.
func (c *Client) Mutate(ctx context.Context, mutations []Mutation) (*MutateResult, error) {
	payload, err := json.Marshal(map[string]any{"mutations": mutations})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode mutations")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.mutateURL+"?returnIds=true", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build mutate request")
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result MutateResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errs.Wrap(err, "malformed mutate response")
	}
	return &result, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Cache-Control", "no-cache")
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "content api request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read content api response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
