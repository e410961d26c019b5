package editor

import (
	"strings"

	"blockpad/internal/domain"
)

// ImportBlocks parses markdown-ish text into a block sequence using the line
// classifier. Consecutive bullet (or numbered) lines coalesce into a single
// list block with newline-joined items; fenced code blocks collect every line
// until the closing fence; consecutive plain lines join into one paragraph.
// Blank lines terminate the current block.
func ImportBlocks(text string) []domain.Block {
	var blocks []domain.Block
	open := -1 // index of the block still accepting lines, -1 when none
	inFence := false

	for _, line := range strings.Split(text, "\n") {
		if inFence {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				inFence = false
				open = -1
				continue
			}
			if blocks[open].Content == "" {
				blocks[open].Content = line
			} else {
				blocks[open].Content += "\n" + line
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			open = -1
			continue
		}

		c := Classify(line)
		if c.Type == domain.BlockTypeCode {
			blocks = append(blocks, NewBlock(domain.BlockTypeCode, ""))
			open = len(blocks) - 1
			inFence = true
			continue
		}

		coalescable := c.Type == domain.BlockTypeBulletList ||
			c.Type == domain.BlockTypeNumberedList ||
			c.Type == domain.BlockTypeParagraph
		if open != -1 && coalescable && blocks[open].Type == c.Type {
			blocks[open].Content += "\n" + c.Content
			continue
		}

		blocks = append(blocks, c.Block())
		if coalescable {
			open = len(blocks) - 1
		} else {
			// Headings and quotes are single-line; never coalesce.
			open = -1
		}
	}

	return blocks
}
