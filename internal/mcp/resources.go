package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"blockpad/internal/editor"
	"blockpad/internal/service"
)

func (s *Server) registerResources() {
	// ── blockpad://documents ───────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"blockpad://documents",
		"All Documents",
		mcp.WithMIMEType("application/json"),
	), s.handleDocumentsResource)

	// ── blockpad://document/{documentId}/markdown ──────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"blockpad://document/{documentId}/markdown",
			"Document as Markdown",
		),
		s.handleDocumentMarkdownResource,
	)
}

func (s *Server) handleDocumentsResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	docs := s.documents.ListDocuments()
	summaries := make([]service.DocumentSummary, len(docs))
	for i, d := range docs {
		summaries[i] = service.Summarize(d)
	}

	data, _ := json.MarshalIndent(summaries, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "blockpad://documents",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleDocumentMarkdownResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	id := extractDocumentIDFromURI(uri)
	if id == "" {
		return nil, fmt.Errorf("could not extract documentId from URI: %s", uri)
	}

	doc, ok := s.documents.GetDocument(id)
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     editor.ExportMarkdown(doc),
		},
	}, nil
}

// extractDocumentIDFromURI extracts the id from
// "blockpad://document/{id}/markdown".
func extractDocumentIDFromURI(uri string) string {
	const prefix = "blockpad://document/"
	const suffix = "/markdown"
	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return ""
	}
	middle := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	if strings.Contains(middle, "/") {
		return ""
	}
	return middle
}
