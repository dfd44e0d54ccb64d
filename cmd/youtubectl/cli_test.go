package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/universal-mcp/youtube/client/catalog"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"part=snippet", "maxResults=5", "q=dogs=cats"})
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if params["part"] != "snippet" {
		t.Fatalf("unexpected part %v", params["part"])
	}
	// Everything after the first '=' belongs to the value.
	if params["q"] != "dogs=cats" {
		t.Fatalf("unexpected q %v", params["q"])
	}
	if len(params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(params))
	}
}

func TestParseParams_Invalid(t *testing.T) {
	if _, err := parseParams([]string{"noequals"}); err == nil {
		t.Fatal("expected error for malformed parameter")
	}
	if _, err := parseParams([]string{"=value"}); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestToolsCommand_JSON(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"tools", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var ops []catalog.Endpoint
	if err := json.Unmarshal(out.Bytes(), &ops); err != nil {
		t.Fatalf("tools --json output is not valid JSON: %v", err)
	}
	if len(ops) != 47 {
		t.Fatalf("expected 47 operations, got %d", len(ops))
	}
}
