package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/universal-mcp/youtube/client/transcript"
)

// Option configures a Client during construction in New.
//
// Options must be deterministic and side-effect free; they are applied
// before the underlying HTTP collaborator is assembled.
type Option func(*Client) error

// WithBaseURL overrides the API base URL. Intended for tests and proxies;
// the value must be non-empty.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPTimeout sets the total per-request timeout of the underlying HTTP
// client.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the whole round trip. The value must be
// greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying *http.Client. Transport ownership
// (TLS, proxies, connection reuse) moves to the caller.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithAPIKey attaches a YouTube API key to every request as the standard
// `key` query parameter.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		c.apiKey = key
		return nil
	}
}

// WithAuthToken attaches an OAuth bearer token to every request via the
// Authorization header.
func WithAuthToken(token string) Option {
	return func(c *Client) error {
		c.authToken = token
		return nil
	}
}

// WithDebugLogging enables request/response logging on the HTTP
// collaborator when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithTranscriptFetcher replaces the caption transcript collaborator used
// by Transcript. The default is a watch page fetcher with no language
// preference.
func WithTranscriptFetcher(f transcript.Fetcher) Option {
	return func(c *Client) error {
		if f == nil {
			return fmt.Errorf("transcript fetcher cannot be nil")
		}
		c.fetcher = f
		return nil
	}
}
