package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"blockpad/internal/editor"
	"blockpad/internal/service"
)

func (s *Server) registerDocumentTools() {
	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List all documents with title, word count, and timestamps, most recently updated first"),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleListDocuments)

	s.mcp.AddTool(mcp.NewTool("get_document",
		mcp.WithDescription("Fetch a full document, including all of its blocks"),
		mcp.WithString("documentId", mcp.Description("Document ID"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleGetDocument)

	s.mcp.AddTool(mcp.NewTool("create_document",
		mcp.WithDescription("Create a new document seeded with a title heading and an empty paragraph"),
		mcp.WithString("title", mcp.Description("Document title (optional, defaults to Untitled Document)")),
	), s.handleCreateDocument)

	s.mcp.AddTool(mcp.NewTool("delete_document",
		mcp.WithDescription("Delete a document by ID"),
		mcp.WithString("documentId", mcp.Description("Document ID"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteDocument)

	s.mcp.AddTool(mcp.NewTool("export_markdown",
		mcp.WithDescription("Export a document as markdown text"),
		mcp.WithString("documentId", mcp.Description("Document ID"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleExportMarkdown)

	s.mcp.AddTool(mcp.NewTool("import_markdown",
		mcp.WithDescription("Create a new document from markdown text"),
		mcp.WithString("text", mcp.Description("Markdown source"), mcp.Required()),
	), s.handleImportMarkdown)

	s.mcp.AddTool(mcp.NewTool("search_documents",
		mcp.WithDescription("Search documents by title and block contents, case-insensitively"),
		mcp.WithString("query", mcp.Description("Search text"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: boolPtr(true)}),
	), s.handleSearchDocuments)
}

func (s *Server) handleListDocuments(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs := s.documents.ListDocuments()
	summaries := make([]service.DocumentSummary, len(docs))
	for i, d := range docs {
		summaries[i] = service.Summarize(d)
	}
	return jsonResult(summaries)
}

func (s *Server) handleGetDocument(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req.GetArguments(), "documentId")
	if err != nil {
		return nil, err
	}
	doc, ok := s.documents.GetDocument(id)
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	return jsonResult(doc)
}

func (s *Server) handleCreateDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, _ := req.GetArguments()["title"].(string)
	doc, ok := s.documents.CreateDocument(ctx, title)
	if !ok {
		return nil, fmt.Errorf("create document failed")
	}
	return jsonResult(doc)
}

func (s *Server) handleDeleteDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req.GetArguments(), "documentId")
	if err != nil {
		return nil, err
	}
	if !s.documents.DeleteDocument(ctx, id) {
		return nil, fmt.Errorf("delete document %s failed", id)
	}
	return textResult(fmt.Sprintf("Document %s deleted", id)), nil
}

func (s *Server) handleExportMarkdown(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req.GetArguments(), "documentId")
	if err != nil {
		return nil, err
	}
	doc, ok := s.documents.GetDocument(id)
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	return textResult(editor.ExportMarkdown(doc)), nil
}

func (s *Server) handleImportMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := requireString(req.GetArguments(), "text")
	if err != nil {
		return nil, err
	}
	doc, ok := s.documents.ImportMarkdown(ctx, text)
	if !ok {
		return nil, fmt.Errorf("import failed")
	}
	return jsonResult(doc)
}

func (s *Server) handleSearchDocuments(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := requireString(req.GetArguments(), "query")
	if err != nil {
		return nil, err
	}
	docs := s.documents.SearchDocuments(query)
	summaries := make([]service.DocumentSummary, len(docs))
	for i, d := range docs {
		summaries[i] = service.Summarize(d)
	}
	return jsonResult(summaries)
}
