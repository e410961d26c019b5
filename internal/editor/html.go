package editor

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"blockpad/internal/domain"
)

// The engine is stateless, one instance serves all renders.
var htmlEngine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML exports the document to markdown and renders it to HTML,
// for preview output.
func RenderHTML(doc domain.Document) (string, error) {
	var buf bytes.Buffer
	if err := htmlEngine.Convert([]byte(ExportMarkdown(doc)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
