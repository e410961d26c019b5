package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"blockpad/internal/domain"
)

func (s *Server) registerBlockTools() {
	s.mcp.AddTool(mcp.NewTool("insert_block",
		mcp.WithDescription("Insert a block of text into a document. The text is classified by its markdown prefix (#, -, 1., >, ```), the same way typed text is."),
		mcp.WithString("documentId", mcp.Description("Document ID"), mcp.Required()),
		mcp.WithString("text", mcp.Description("Raw text, optionally with a markdown prefix"), mcp.Required()),
		mcp.WithString("afterBlockId", mcp.Description("Insert after this block (optional — appends at the end when omitted or unknown)")),
	), s.handleInsertBlock)

	s.mcp.AddTool(mcp.NewTool("update_block",
		mcp.WithDescription("Update a block's content, type, or heading level. Omitted fields are left unchanged."),
		mcp.WithString("documentId", mcp.Description("Document ID"), mcp.Required()),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithString("content", mcp.Description("New content (optional)")),
		mcp.WithString("type", mcp.Description("New block type: heading, paragraph, bullet-list, numbered-list, quote, code (optional)")),
		mcp.WithNumber("level", mcp.Description("Heading level 1-3 (optional)")),
	), s.handleUpdateBlock)

	s.mcp.AddTool(mcp.NewTool("delete_block",
		mcp.WithDescription("Remove a block from a document"),
		mcp.WithString("documentId", mcp.Description("Document ID"), mcp.Required()),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteBlock)
}

func (s *Server) handleInsertBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	docID, err := requireString(args, "documentId")
	if err != nil {
		return nil, err
	}
	text, err := requireString(args, "text")
	if err != nil {
		return nil, err
	}
	afterID, _ := args["afterBlockId"].(string)

	doc, ok := s.documents.InsertBlock(ctx, docID, afterID, text)
	if !ok {
		return nil, fmt.Errorf("document %s not found", docID)
	}
	return jsonResult(doc)
}

func (s *Server) handleUpdateBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	docID, err := requireString(args, "documentId")
	if err != nil {
		return nil, err
	}
	blockID, err := requireString(args, "blockId")
	if err != nil {
		return nil, err
	}

	var patch domain.BlockPatch
	if content, ok := args["content"].(string); ok {
		patch.Content = &content
	}
	if typ, ok := args["type"].(string); ok && typ != "" {
		bt := domain.BlockType(typ)
		patch.Type = &bt
	}
	if level, ok := args["level"].(float64); ok {
		lv := int(level)
		patch.Level = &lv
	}

	doc, ok := s.documents.UpdateBlock(ctx, docID, blockID, patch)
	if !ok {
		return nil, fmt.Errorf("document %s not found", docID)
	}
	return jsonResult(doc)
}

func (s *Server) handleDeleteBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	docID, err := requireString(args, "documentId")
	if err != nil {
		return nil, err
	}
	blockID, err := requireString(args, "blockId")
	if err != nil {
		return nil, err
	}

	doc, ok := s.documents.DeleteBlock(ctx, docID, blockID)
	if !ok {
		return nil, fmt.Errorf("document %s not found", docID)
	}
	return jsonResult(doc)
}
