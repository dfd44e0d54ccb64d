package client

import (
	"net/http"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", c.BaseURL())
	}
	if c.timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %v", c.timeout)
	}
	if c.fetcher == nil {
		t.Fatal("expected a default transcript fetcher")
	}
}

func TestNew_PanicsOnInvalidOption(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid option")
		}
	}()
	New(WithHTTPTimeout(0))
}

func TestWithBaseURL_RejectsEmpty(t *testing.T) {
	err := WithBaseURL("")(&Client{})
	if err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestWithHTTPClient_RejectsNil(t *testing.T) {
	err := WithHTTPClient(nil)(&Client{})
	if err == nil {
		t.Fatal("expected error for nil http client")
	}
}

func TestWithTranscriptFetcher_RejectsNil(t *testing.T) {
	err := WithTranscriptFetcher(nil)(&Client{})
	if err == nil {
		t.Fatal("expected error for nil fetcher")
	}
}

func TestWithHTTPClient_Applied(t *testing.T) {
	hc := &http.Client{Timeout: 2 * time.Second}
	c := New(WithHTTPClient(hc))
	if c.httpClient != hc {
		t.Fatal("expected custom http client to be retained")
	}
}

func TestNew_EnvEnablesDebug(t *testing.T) {
	t.Setenv("YOUTUBE_DEBUG", "true")
	c := New()
	if !c.debug {
		t.Fatal("expected YOUTUBE_DEBUG=true to enable debug logging")
	}
}
