package handlers

import (
	"reflect"
	"sort"
	"testing"

	"github.com/mark3labs/mcp-go/server"

	"github.com/universal-mcp/youtube/client"
	"github.com/universal-mcp/youtube/client/catalog"
)

func TestToolCatalogue(t *testing.T) {
	// Build minimal MCP server.
	s := server.NewMCPServer("test", "dev", server.WithToolCapabilities(true))

	stubClient := client.New(client.WithBaseURL("http://stub"))

	// Register all handlers.
	_ = NewAPIHandler(stubClient).RegisterTools(s)
	_ = NewTranscriptHandler(stubClient).RegisterTools(s)

	// Access private field 'tools' via reflection to collect names.
	v := reflect.ValueOf(s).Elem().FieldByName("tools")
	if !v.IsValid() {
		t.Fatalf("failed to access tools map via reflection; server internals changed")
	}
	iter := v.MapRange()
	var got []string
	for iter.Next() {
		got = append(got, iter.Key().String())
	}
	sort.Strings(got)

	want := append(catalog.Names(), "get_video_transcript")
	sort.Strings(want)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tool catalogue mismatch\nwant: %v\n got: %v", want, got)
	}
	if len(got) != 48 {
		t.Fatalf("expected 48 tools, got %d", len(got))
	}
}
