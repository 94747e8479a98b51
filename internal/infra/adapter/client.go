// Package adapter holds the HTTP clients for the external inventory
// gateway and the card payment gateway. Each adapter decodes the raw
// gateway payloads defined in internal/infra/provider and hands them
// to the use case layer untouched; normalization is not its job.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"travel-core/internal/infra/provider"
	"travel-core/internal/pkg/config"
	"travel-core/internal/pkg/errs"
)

// Client is the shared transport for all inventory adapters. Timeouts
// come from the caller's context, not the http.Client, so the per-call
// budget set in the use case layer applies end to end.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build inventory request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "inventory request failed"), provider.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return errs.Mark(errs.Newf("inventory gateway throttled %s", path), provider.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return errs.Mark(errs.Newf("inventory gateway returned %d for %s", resp.StatusCode, path), provider.ErrUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read inventory response"), provider.ErrUnavailable)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.Mark(errs.Wrap(err, fmt.Sprintf("malformed inventory response for %s", path)), provider.ErrUnavailable)
	}
	return nil
}
