// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citation-audit/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OpenAlexConfig holds settings for the OpenAlex client.
type OpenAlexConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL overrides the API base (default "https://api.openalex.org").
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Email is sent as the mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// PerPage is the page size for list requests (default 50, max 200).
	PerPage int `json:"per_page" yaml:"per_page"`

	// MaxPages caps pagination per list request (default 40). Guards
	// against runaway fetches on very prolific author IDs.
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// MaxRetries is the retry budget for HTTP 429 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HistoryConfig holds settings for the run-history ledger.
type HistoryConfig struct {
	// Dir is the directory holding the history database (default "history").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AuditConfig groups all stage configurations.
type AuditConfig struct {
	OpenAlex OpenAlexConfig `json:"openalex" yaml:"openalex"`
	History  HistoryConfig  `json:"history" yaml:"history"`
}
