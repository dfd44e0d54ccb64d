// Package handlers registers the YouTube tool surface on an MCP server.
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/universal-mcp/youtube/client"
	"github.com/universal-mcp/youtube/client/catalog"
)

// APIHandler exposes every catalog operation as an MCP tool. One generic
// handler serves all of them; the catalog drives registration.
type APIHandler struct {
	client *client.Client
}

func NewAPIHandler(c *client.Client) *APIHandler {
	return &APIHandler{client: c}
}

// RegisterTools registers one tool per catalog endpoint.
func (h *APIHandler) RegisterTools(s *server.MCPServer) error {
	for _, ep := range h.client.Operations() {
		opts := []mcp.ToolOption{mcp.WithDescription(ep.Doc)}
		for _, p := range ep.Required {
			opts = append(opts, mcp.WithString(p, mcp.Required(), mcp.Description(catalog.ParamDoc(p))))
		}
		for _, p := range ep.Optional {
			opts = append(opts, mcp.WithString(p, mcp.Description(catalog.ParamDoc(p))))
		}
		s.AddTool(mcp.NewTool(ep.Name, opts...), h.handleCall(ep))
	}
	return nil
}

// handleCall builds the tool handler for one endpoint.
func (h *APIHandler) handleCall(ep catalog.Endpoint) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		args := req.GetArguments()

		log.Debug().
			Str("tool", ep.Name).
			Str("call_id", callID).
			Int("arg_count", len(args)).
			Msg("invoking YouTube operation")

		start := time.Now()
		raw, err := h.client.Call(ctx, ep.Name, args)
		if err != nil {
			log.Error().
				Err(err).
				Str("tool", ep.Name).
				Str("call_id", callID).
				Dur("elapsed", time.Since(start)).
				Msg("YouTube operation failed")
			return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", ep.Name, err)), nil
		}

		log.Debug().
			Str("tool", ep.Name).
			Str("call_id", callID).
			Dur("elapsed", time.Since(start)).
			Int("response_len", len(raw)).
			Msg("YouTube operation completed")

		if raw == nil {
			// Deletes and some POSTs return no body.
			return mcp.NewToolResultText("{}"), nil
		}
		return mcp.NewToolResultText(string(raw)), nil
	}
}
