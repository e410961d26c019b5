package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerAssistantTools() {
	s.mcp.AddTool(mcp.NewTool("ask_assistant",
		mcp.WithDescription("Ask the writing assistant for a suggestion, either free-form or as a quick action over selected text"),
		mcp.WithString("prompt", mcp.Description("Free-form question (required unless action is given)")),
		mcp.WithString("action", mcp.Description("Quick action: improve, grammar, shorten, explain, continue, summarize (optional)")),
		mcp.WithString("selectedText", mcp.Description("Text the quick action applies to (optional)")),
	), s.handleAskAssistant)
}

func (s *Server) handleAskAssistant(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.assistant == nil {
		return nil, fmt.Errorf("assistant is not configured")
	}
	args := req.GetArguments()

	if action, ok := args["action"].(string); ok && action != "" {
		selected, _ := args["selectedText"].(string)
		return jsonResult(s.assistant.QuickAction(action, selected))
	}

	prompt, err := requireString(args, "prompt")
	if err != nil {
		return nil, err
	}
	return jsonResult(s.assistant.Ask(prompt))
}
