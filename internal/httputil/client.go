// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP client construction shared across stages.
package httputil

import (
	"net/http"

	"github.com/marimo-lab/newsync/pkg/types"
)

// NewClient returns an HTTP client with the configured request timeout and
// a transport that stamps the configured User-Agent on every request. Each
// request is attempted exactly once; the tool deliberately carries no retry
// logic.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			userAgent: cfg.UserAgent,
			next:      http.DefaultTransport,
		},
	}
}

type userAgentTransport struct {
	userAgent string
	next      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}
