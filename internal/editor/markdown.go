package editor

import (
	"strings"

	"blockpad/internal/domain"
)

// ExportMarkdown serializes a document's blocks, in order, to markdown text.
// List blocks render one `- ` (or `1. `) line per newline-separated item;
// numbered items always carry the literal "1. " prefix with no running
// counter, matching the historical export format.
func ExportMarkdown(doc domain.Document) string {
	var sb strings.Builder

	for _, block := range doc.Content {
		switch block.Type {
		case domain.BlockTypeHeading:
			level := block.Level
			if level < domain.MinHeadingLevel {
				level = domain.MinHeadingLevel
			}
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteString(" ")
			sb.WriteString(block.Content)
			sb.WriteString("\n\n")
		case domain.BlockTypeBulletList:
			for _, item := range strings.Split(block.Content, "\n") {
				sb.WriteString("- ")
				sb.WriteString(item)
				sb.WriteString("\n")
			}
		case domain.BlockTypeNumberedList:
			for _, item := range strings.Split(block.Content, "\n") {
				sb.WriteString("1. ")
				sb.WriteString(item)
				sb.WriteString("\n")
			}
		case domain.BlockTypeQuote:
			sb.WriteString("> ")
			sb.WriteString(block.Content)
			sb.WriteString("\n\n")
		case domain.BlockTypeCode:
			sb.WriteString("```\n")
			sb.WriteString(block.Content)
			sb.WriteString("\n```\n\n")
		default:
			// Paragraphs and unrecognized types render as plain text.
			sb.WriteString(block.Content)
			sb.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(sb.String())
}

// WordCount counts words in heading and paragraph blocks only; list, quote
// and code blocks are excluded from the total.
func WordCount(doc domain.Document) int {
	count := 0
	for _, block := range doc.Content {
		if block.Type != domain.BlockTypeHeading && block.Type != domain.BlockTypeParagraph {
			continue
		}
		count += len(strings.Fields(block.Content))
	}
	return count
}
