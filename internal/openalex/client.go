// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex is a client for the OpenAlex scholarly-metadata API.
// It covers the Works, Authors, and Institutions endpoints used by the
// citation audit, with page-based pagination and 429 retry.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/citation-audit/internal/httputil"
	"github.com/pdiddy/citation-audit/pkg/types"
)

// DefaultBaseURL is the production OpenAlex API base.
const DefaultBaseURL = "https://api.openalex.org"

const (
	defaultPerPage  = 50
	maxPerPage      = 200
	defaultMaxPages = 40
)

// Client queries the OpenAlex API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	userAgent  string
	perPage    int
	maxPages   int
	maxRetries int
}

// NewClient builds a Client from config. BaseURL may point at an httptest
// server in tests; zero-valued limits fall back to defaults.
func NewClient(cfg types.OpenAlexConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    base,
		email:      cfg.Email,
		userAgent:  cfg.UserAgent,
		perPage:    perPage,
		maxPages:   maxPages,
		maxRetries: cfg.MaxRetries,
	}
}

// meta is the pagination envelope OpenAlex wraps around list responses.
type meta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

// getJSON performs one GET against path with params and decodes the
// response body into v.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.email != "" {
		params.Set("mailto", c.email)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OpenAlex API returned HTTP %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing OpenAlex response: %w", err)
	}
	return nil
}

// urlValues builds a url.Values from alternating key/value pairs.
func urlValues(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}

// listWorks fetches every page of a filtered works listing. Pagination
// stops on an empty or short page, or at the maxPages guard.
func (c *Client) listWorks(ctx context.Context, filter string) ([]types.Work, error) {
	var all []types.Work
	for page := 1; page <= c.maxPages; page++ {
		params := url.Values{
			"filter":   {filter},
			"page":     {strconv.Itoa(page)},
			"per-page": {strconv.Itoa(c.perPage)},
		}

		var wr struct {
			Meta    meta         `json:"meta"`
			Results []types.Work `json:"results"`
		}
		if err := c.getJSON(ctx, "/works", params, &wr); err != nil {
			return nil, fmt.Errorf("works page %d: %w", page, err)
		}

		all = append(all, wr.Results...)
		if len(wr.Results) < c.perPage {
			break
		}
	}
	return all, nil
}
