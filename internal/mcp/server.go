package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"blockpad/internal/logger"
	"blockpad/internal/service"
)

// Server is the MCP server for the document workspace.
// It exposes tools and resources so AI agents can list, read, and
// edit documents the same way the editor does.
type Server struct {
	mcp       *server.MCPServer
	documents *service.DocumentService
	assistant *service.AssistantService
}

// Deps holds the dependencies injected into the MCP server.
type Deps struct {
	Documents *service.DocumentService
	Assistant *service.AssistantService
}

// New creates and configures an MCP server with all tools and resources.
func New(deps Deps) *Server {
	s := &Server{
		documents: deps.Documents,
		assistant: deps.Assistant,
	}

	s.mcp = server.NewMCPServer(
		"blockpad-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerDocumentTools()
	s.registerBlockTools()
	s.registerAssistantTools()
	s.registerResources()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	logger.Sugar.Info("starting mcp stdio server")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

// requireString pulls a non-empty string argument out of tool args.
func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func boolPtr(v bool) *bool { return &v }
