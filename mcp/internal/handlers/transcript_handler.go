package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/universal-mcp/youtube/client"
)

// TranscriptHandler exposes the get_video_transcript tool. Unlike the
// catalog operations it returns plain concatenated caption text, not JSON.
type TranscriptHandler struct {
	client *client.Client
}

func NewTranscriptHandler(c *client.Client) *TranscriptHandler {
	return &TranscriptHandler{client: c}
}

// RegisterTools registers the get_video_transcript tool.
func (th *TranscriptHandler) RegisterTools(s *server.MCPServer) error {
	tool := mcp.NewTool("get_video_transcript",
		mcp.WithDescription("Fetches the caption transcript of a video as plain text, snippets joined by spaces in chronological order."),
		mcp.WithString("videoId", mcp.Required(), mcp.Description("YouTube video ID")),
	)
	s.AddTool(tool, th.handleTranscript)
	return nil
}

func (th *TranscriptHandler) handleTranscript(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	videoID, err := req.RequireString("videoId")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get_video_transcript failed: %v", err)), nil
	}

	log.Debug().Str("tool", "get_video_transcript").Str("video_id", videoID).Msg("fetching transcript")

	start := time.Now()
	text, err := th.client.Transcript(ctx, videoID)
	if err != nil {
		log.Error().
			Err(err).
			Str("tool", "get_video_transcript").
			Str("video_id", videoID).
			Dur("elapsed", time.Since(start)).
			Msg("transcript fetch failed")
		return mcp.NewToolResultError(fmt.Sprintf("get_video_transcript failed: %v", err)), nil
	}

	log.Debug().
		Str("tool", "get_video_transcript").
		Str("video_id", videoID).
		Dur("elapsed", time.Since(start)).
		Int("text_len", len(text)).
		Msg("transcript fetch completed")

	return mcp.NewToolResultText(text), nil
}
